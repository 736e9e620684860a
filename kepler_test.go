package bmw

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEccentricAnomaly(t *testing.T) {
	for ν := 10.0; ν < 180; ν += 10 {
		E, err := EccentricAnomaly(0, ν)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(E, ν, 1e-9) {
			t.Fatalf("circular orbit E=%f != ν=%f", E, ν)
		}
	}
	for _, e := range []float64{0.1, 0.5, 0.9} {
		for ψ := 10.0; ψ < 180; ψ += 10 {
			E1, err := EccentricAnomalyFromMaxRange(e, ψ)
			if err != nil {
				t.Fatal(err)
			}
			E2, err := EccentricAnomaly(e, AnomalyAtBurnout(ψ))
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(E1, E2, 1e-9) {
				t.Fatalf("e=%f ψ=%f: E from range %f != E from anomaly %f", e, ψ, E1, E2)
			}
		}
	}
}

func TestFreeFlightTime(t *testing.T) {
	for _, sys := range []UnitSystem{English, Metric, Canonical} {
		r := 1.1 * sys.Radius()
		// A burnout at E=0 on a circle flies all the way around.
		if !scalar.EqualWithinRel(FreeFlightTime(0, 0, r, sys), FreeFlightTimeCircular(r, sys), 1e-12) {
			t.Fatalf("[%s] full circle time invalid", sys)
		}
	}
	if !scalar.EqualWithinAbs(FreeFlightTimeCircular(1, Canonical)*CanonicalSeconds.Factor/60, 84.49, 1e-2) {
		t.Fatal("surface orbit period should be about 84.5 minutes")
	}
	if !scalar.EqualWithinAbs(FreeFlightTime(180, 0.5, 1, Canonical), 0, 1e-12) {
		t.Fatal("burnout at apogee has no free-flight time")
	}
}

func TestTrajectory(t *testing.T) {
	// Symmetrical trajectory with apogee altitude at 0.5 DU (BMW pg. 290)
	tr, err := NewTrajectory(1.2, 2.0/3, 51.31781255, Canonical)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("%s", tr)
	for _, exp := range []struct {
		name     string
		got, exp float64
	}{
		{"Q", tr.Q, 0.5333333},
		{"ψ", tr.Rangeψ, 36.3897447},
		{"a", tr.SMA, 0.8181818},
		{"e", tr.Ecc, 0.8333333},
		{"p", tr.SemiParam, 0.25},
		{"ra", tr.Apogee, 1.5},
		{"ν", tr.Anomalyν, 161.8051277},
		{"E", tr.AnomalyE, 124.0557977},
		{"tff", tr.FlightTime, 2.4671395},
	} {
		if !scalar.EqualWithinAbs(exp.got, exp.exp, 1e-6) {
			t.Fatalf("%s=%.9f expected %.9f", exp.name, exp.got, exp.exp)
		}
	}
	if r := EllipseRadius(tr.SemiParam, tr.Ecc, tr.Anomalyν); !scalar.EqualWithinAbs(r, tr.Rbo, 1e-6) {
		t.Fatalf("burnout point is not on the ellipse: r=%f", r)
	}
}

func TestTrajectoryInvalid(t *testing.T) {
	if _, err := NewTrajectory(1, 1.5, 10, Canonical); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("escape speed should be invalid, got %v", err)
	}
	if _, err := NewTrajectory(1, 0.5, 10, UnitSystem(9)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown unit system should be invalid, got %v", err)
	}
}
