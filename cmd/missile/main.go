package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ChristopherRabotin/bmw"
	kitlog "github.com/go-kit/kit/log"
)

// Evaluates a ballistic missile scenario and prints its free-flight report.

const defaultScenario = "~~unset~~"

var (
	scenario string
	samples  int
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "ballistic missile scenario TOML file")
	flag.IntVar(&samples, "samples", 0, "number of Monte Carlo samples of the burnout dispersion")
	flag.BoolVar(&verbose, "verbose", false, "log every step of the evaluation")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	s, err := bmw.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("could not load scenario: %s", err)
	}
	logger := kitlog.NewNopLogger()
	if verbose {
		logger = bmw.NewLogger(os.Stderr, s.Name)
	}
	rpt, err := s.Evaluate(logger)
	if err != nil {
		log.Fatalf("%s: %s", s.Name, err)
	}
	fmt.Print(rpt)

	if samples > 0 {
		cov := s.Covariance()
		if cov == nil {
			log.Fatal("-samples requires a [dispersion] section")
		}
		misses, err := bmw.SampleMisses(rpt.Coefficients, cov, samples)
		if err != nil {
			log.Fatalf("could not sample misses: %s", err)
		}
		mean, std := bmw.MissStatistics(misses)
		fmt.Printf("monte carlo (%d samples): mean %.4f %s, σ %.4f %s\n", samples, s.Distance.Forward(mean), s.Distance.To, s.Distance.Forward(std), s.Distance.To)
	}
}
