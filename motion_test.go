package bmw

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSpecificEnergyRoundTrip(t *testing.T) {
	for _, sys := range []UnitSystem{English, Metric, Canonical} {
		r0 := sys.Radius()
		vcs := CircularOrbitSpeed(r0, sys)
		for _, ratio := range []float64{0.3, 0.8, 1, 1.2, 1.4} {
			v := ratio * vcs
			r := 1.1 * r0
			ξ := SpecificMechanicalEnergy(v, r, sys)
			got, err := VelocityFromSpecificEnergy(ξ, r, sys)
			if err != nil {
				t.Fatalf("[%s] %s", sys, err)
			}
			if !scalar.EqualWithinRel(got, v, 1e-9) {
				t.Fatalf("[%s] v=%f got %f", sys, v, got)
			}
		}
	}
}

func TestVelocityFromSpecificEnergyDomain(t *testing.T) {
	// Too little energy to ever reach 2 DU.
	_, err := VelocityFromSpecificEnergy(-0.9, 2, Canonical)
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("expected a domain error, got %v", err)
	}
}

func TestCircularOrbitSpeed(t *testing.T) {
	if CircularOrbitSpeed(1, Canonical) != 1 {
		t.Fatal("circular speed at 1 DU must be 1 DU/TU")
	}
	// 7.905 km/s at the surface
	if !scalar.EqualWithinAbs(CircularOrbitSpeed(Metric.Radius(), Metric), CanonicalKmPerSec.Factor, 1e-6) {
		t.Fatalf("surface circular speed %f km/s", CircularOrbitSpeed(Metric.Radius(), Metric))
	}
	// Circular orbit energy is -μ/2r
	r := 1.5
	if !scalar.EqualWithinAbs(SpecificMechanicalEnergy(CircularOrbitSpeed(r, Canonical), r, Canonical), -1/(2*r), 1e-12) {
		t.Fatal("circular orbit energy invalid")
	}
}

func TestAngularMomentum(t *testing.T) {
	if AngularMomentum(0.5, 2) != 1 {
		t.Fatal("h = vr at apsides")
	}
	if AngularMomentumAt(0.5, 2, 0) != AngularMomentum(0.5, 2) {
		t.Fatal("horizontal flight path angle should match apsis form")
	}
	if !scalar.EqualWithinAbs(AngularMomentumAt(0.5, 2, 60), 0.5, 1e-12) {
		t.Fatal("h at 60 deg invalid")
	}
	for fpa := -80.0; fpa <= 80; fpa += 10 {
		h := AngularMomentumAt(0.8, 1.3, fpa)
		got, err := FlightPathAngleFromAngularMomentum(h, 0.8, 1.3)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(got, math.Abs(fpa), 1e-9) {
			t.Fatalf("fpa=%f got %f", fpa, got)
		}
	}
}

func TestFlightPathAngleDomain(t *testing.T) {
	// No clamping: even a tiny excess is not a real trajectory.
	for _, h := range []float64{1.0000001, 2, -1.5} {
		if _, err := FlightPathAngleFromAngularMomentum(h, 1, 1); !errors.Is(err, ErrDomain) {
			t.Fatalf("h=%f: expected a domain error, got %v", h, err)
		}
	}
	if fpa, err := FlightPathAngleFromAngularMomentum(1, 1, 1); err != nil || fpa != 0 {
		t.Fatalf("horizontal flight expected, got %f (%v)", fpa, err)
	}
}

func TestEccentricity(t *testing.T) {
	r := 1.2
	v := CircularOrbitSpeed(r, Canonical)
	h := AngularMomentum(v, r)
	e, err := Eccentricity(SpecificMechanicalEnergy(v, r, Canonical), h, Canonical)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(e, 0, 1e-6) {
		t.Fatalf("circular orbit e=%f", e)
	}
	if !scalar.EqualWithinAbs(SemiLatusRectum(h, Canonical), r, 1e-12) {
		t.Fatal("circular orbit p != r")
	}
	if _, err = Eccentricity(-1, 2, Canonical); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected a domain error, got %v", err)
	}
}
