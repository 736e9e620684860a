package bmw

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestR2R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r2 := R2(x)
	r3 := R3(x)
	if r2.At(1, 1) != 1 || r3.At(2, 2) != 1 {
		t.Fatal("expected R2.At(1, 1) = R3.At(2, 2) = 1")
	}
	if r2.At(0, 0) != r2.At(2, 2) || r2.At(2, 2) != c {
		t.Fatal("expected R2 cosines misplaced")
	}
	if r2.At(2, 0) != -r2.At(0, 2) || r2.At(2, 0) != s {
		t.Fatal("expected R2 sines misplaced")
	}
	if r3.At(0, 0) != r3.At(1, 1) || r3.At(1, 1) != c {
		t.Fatal("expected R3 cosines misplaced")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced")
	}
}

func TestSiteImpact(t *testing.T) {
	for _, tc := range []struct {
		site           Site
		β, ψ           float64
		expLat, expLon float64
	}{
		{NewSite(0, 0), 90, 90, 0, 90},
		{NewSite(0, 0), 0, 30, 30, 0},
		{NewSite(0, 0), 180, 45, -45, 0},
		{NewSite(30, 60), 123, 0, 30, 60},
		{NewSite(10, -20), 0, 80, 90, 0},
	} {
		impact := tc.site.Impact(tc.β, tc.ψ)
		if !scalar.EqualWithinAbs(impact.Lat.Deg(), tc.expLat, 1e-9) {
			t.Fatalf("%s β=%f ψ=%f: lat %f != %f", tc.site, tc.β, tc.ψ, impact.Lat.Deg(), tc.expLat)
		}
		if tc.expLat != 90 && !scalar.EqualWithinAbs(impact.Lon.Deg(), tc.expLon, 1e-9) {
			t.Fatalf("%s β=%f ψ=%f: lon %f != %f", tc.site, tc.β, tc.ψ, impact.Lon.Deg(), tc.expLon)
		}
	}
}

func TestSiteImpactRange(t *testing.T) {
	bo := NewSite(30, 60)
	for _, β := range []float64{0, 45, 135, 200, 310} {
		for _, ψ := range []float64{1, 36.4, 90, 128.68, 175} {
			got, err := RangeAngle(bo, bo.Impact(β, ψ))
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(got, ψ, 1e-6) {
				t.Fatalf("β=%f: range angle %f != %f", β, got, ψ)
			}
		}
	}
}

func TestSiteImpactAzimuthalCrossRange(t *testing.T) {
	bo := NewSite(-12, 145)
	for _, ψ := range []float64{20, 60, 100.526, 150} {
		for _, Δβ := range []float64{0.1, 1, 5} {
			exp, err := CrossRangeErrorAzimuthal(ψ, Δβ)
			if err != nil {
				t.Fatal(err)
			}
			got, err := RangeAngle(bo.Impact(70, ψ), bo.Impact(70+Δβ, ψ))
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(got, exp, 1e-6) {
				t.Fatalf("ψ=%f Δβ=%f: impacts %f apart instead of %f", ψ, Δβ, got, exp)
			}
		}
	}
}
