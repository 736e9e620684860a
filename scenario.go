package bmw

import (
	"fmt"
	"io"
	"math"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"gonum.org/v1/gonum/floats/scalar"
)

// NewLogger returns a logfmt logger tagged with the scenario name.
func NewLogger(w io.Writer, name string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return kitlog.With(klog, "scenario", name)
}

// Report is the outcome of a scenario evaluation.
type Report struct {
	Scenario     Scenario
	Trajectory   Trajectory
	Coefficients InfluenceCoefficients
	Miss         Miss
	Lateral      Miss // Cross-range miss from the lateral error (never negative)
	Azimuthal    Miss // Cross-range miss from the azimuth error (never negative)
	TargetRangeψ float64
	TargetFPAs   [2]float64 // Low and high burnout flight path angles reaching the reentry site
	RangeStd     Miss       // One sigma down-range dispersion
}

// Evaluate computes the free-flight trajectory, the influence coefficients and the misses of the scenario.
func (s Scenario) Evaluate(logger kitlog.Logger) (Report, error) {
	rpt := Report{Scenario: s}
	var err error
	rbo := s.Radius()
	if rpt.Trajectory, err = NewTrajectory(rbo, s.Velocity, s.FPA, s.System); err != nil {
		logger.Log("level", "critical", "subsys", "trajectory", "err", err)
		return rpt, err
	}
	logger.Log("level", "info", "subsys", "trajectory", "Q", rpt.Trajectory.Q, "ψ(deg)", rpt.Trajectory.Rangeψ, "e", rpt.Trajectory.Ecc, "tff", rpt.Trajectory.FlightTime)

	if rpt.Coefficients, err = NewInfluenceCoefficients(rbo, s.Velocity, s.FPA, s.System); err != nil {
		logger.Log("level", "critical", "subsys", "range", "err", err)
		return rpt, err
	}
	if alt := InfluenceCoefficientBurnoutVelocityAlternative(rbo, s.Velocity, rpt.Coefficients.Height); !scalar.EqualWithinRel(alt, rpt.Coefficients.Velocity, 1e-9) {
		logger.Log("level", "warning", "subsys", "range", "∂ψ/∂v", rpt.Coefficients.Velocity, "alternative", alt)
	}
	rpt.Miss = MissDistance(DownRangeMiss(rpt.Coefficients, s.Errors), s.Distance)
	logger.Log("level", "notice", "subsys", "range", "ic", rpt.Coefficients, "miss", rpt.Miss)

	if cov := s.Covariance(); cov != nil {
		rpt.RangeStd = MissDistance(math.Sqrt(RangeVariance(rpt.Coefficients, cov)), s.Distance)
		logger.Log("level", "info", "subsys", "dispersion", "σ", rpt.RangeStd.Distance, "unit", rpt.RangeStd.Unit)
	}

	if s.Lateral != 0 {
		Δc, err := CrossRangeErrorLateral(rpt.Trajectory.Rangeψ, s.Lateral)
		if err != nil {
			logger.Log("level", "critical", "subsys", "cross-range", "lateral", s.Lateral, "err", err)
			return rpt, err
		}
		rpt.Lateral = MissDistance(Δc*deg2rad, s.Distance)
		logger.Log("level", "info", "subsys", "cross-range", "lateral", rpt.Lateral.Distance, "unit", rpt.Lateral.Unit)
	}
	if s.Azimuth != 0 {
		Δc, err := CrossRangeErrorAzimuthal(rpt.Trajectory.Rangeψ, s.Azimuth)
		if err != nil {
			logger.Log("level", "critical", "subsys", "cross-range", "azimuth", s.Azimuth, "err", err)
			return rpt, err
		}
		rpt.Azimuthal = MissDistance(Δc*deg2rad, s.Distance)
		logger.Log("level", "info", "subsys", "cross-range", "azimuthal", rpt.Azimuthal.Distance, "unit", rpt.Azimuthal.Unit)
	}

	if s.Burnout != nil && s.Reentry != nil {
		if rpt.TargetRangeψ, err = RangeAngle(*s.Burnout, *s.Reentry); err != nil {
			logger.Log("level", "critical", "subsys", "target", "from", s.Burnout, "to", s.Reentry, "err", err)
			return rpt, err
		}
		fpa1, fpa2, err := FlightPathAngles(rpt.TargetRangeψ, rpt.Trajectory.Q)
		if err != nil {
			logger.Log("level", "critical", "subsys", "target", "ψ(deg)", rpt.TargetRangeψ, "err", err)
			return rpt, err
		}
		rpt.TargetFPAs = [2]float64{fpa1, fpa2}
		logger.Log("level", "info", "subsys", "target", "from", s.Burnout, "to", s.Reentry, "ψ(deg)", rpt.TargetRangeψ, "γ1", fpa1, "γ2", fpa2)
	}
	return rpt, nil
}

// String returns a human readable report.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	fmt.Fprintf(&b, "trajectory: %s\n", r.Trajectory)
	fmt.Fprintf(&b, "free-flight range: %.4f %s\n", r.Scenario.Distance.Forward(r.Trajectory.Rangeψ*deg2rad), r.Scenario.Distance.To)
	fmt.Fprintf(&b, "free-flight time: %.1f, apogee altitude: %.1f\n", r.Scenario.System.Time(r.Trajectory.FlightTime), r.Scenario.System.Length(r.Trajectory.Apogee-r.Scenario.System.Radius()))
	fmt.Fprintf(&b, "influence: %s\n", r.Coefficients)
	fmt.Fprintf(&b, "down-range miss: %s\n", r.Miss)
	if r.RangeStd.Canonical != 0 {
		fmt.Fprintf(&b, "down-range dispersion (1σ): %.4f %s\n", r.RangeStd.Distance, r.RangeStd.Unit)
	}
	if r.Scenario.Lateral != 0 || r.Scenario.Azimuth != 0 {
		fmt.Fprintf(&b, "cross-range miss: lateral %.4f %s, azimuthal %.4f %s\n", r.Lateral.Distance, r.Lateral.Unit, r.Azimuthal.Distance, r.Azimuthal.Unit)
	}
	if r.Scenario.Burnout != nil && r.Scenario.Reentry != nil {
		fmt.Fprintf(&b, "target: %s -> %s ψ=%.3f γ=(%.3f, %.3f)\n", r.Scenario.Burnout, r.Scenario.Reentry, r.TargetRangeψ, r.TargetFPAs[0], r.TargetFPAs[1])
	}
	return b.String()
}
