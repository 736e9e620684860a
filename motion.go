package bmw

import (
	"math"
)

// SpecificMechanicalEnergy returns the specific mechanical energy ξ = v²/2 - μ/r.
// A zero radius yields an infinite energy; that is the caller's problem.
func SpecificMechanicalEnergy(v, r float64, sys UnitSystem) float64 {
	return v*v/2 - sys.Mu()/r
}

// VelocityFromSpecificEnergy returns the speed at radius r on a trajectory of energy ξ.
// Returns a DomainError if the energy is too negative to ever reach r.
func VelocityFromSpecificEnergy(ξ, r float64, sys UnitSystem) (float64, error) {
	toRoot := 2 * (sys.Mu()/r + ξ)
	if toRoot < 0 {
		return 0, &DomainError{Op: "velocity from specific energy", Value: toRoot}
	}
	return math.Sqrt(toRoot), nil
}

// AngularMomentum returns the angular momentum where the velocity is horizontal (apsides).
func AngularMomentum(v, r float64) float64 {
	return v * r
}

// AngularMomentumAt returns the angular momentum at a point of flight path angle fpa (degrees).
func AngularMomentumAt(v, r, fpa float64) float64 {
	return v * r * math.Cos(fpa*deg2rad)
}

// FlightPathAngleFromAngularMomentum returns the flight path angle in degrees.
// No clamping is done here: |h/rv| > 1 is not a real trajectory.
func FlightPathAngleFromAngularMomentum(h, v, r float64) (float64, error) {
	hOverRV := h / (r * v)
	if math.Abs(hOverRV) > 1 {
		return 0, &DomainError{Op: "flight path angle from angular momentum", Value: hOverRV}
	}
	return math.Acos(hOverRV) * rad2deg, nil
}

// CircularOrbitSpeed returns the speed of a circular orbit of radius r.
func CircularOrbitSpeed(r float64, sys UnitSystem) float64 {
	return math.Sqrt(sys.Mu() / r)
}

// SemiLatusRectum returns p = h²/μ.
func SemiLatusRectum(h float64, sys UnitSystem) float64 {
	return h * h / sys.Mu()
}

// Eccentricity returns e = sqrt(1 + 2ξh²/μ²).
func Eccentricity(ξ, h float64, sys UnitSystem) (float64, error) {
	μ := sys.Mu()
	e2 := 1 + 2*ξ*h*h/(μ*μ)
	if e2 < 0 {
		if e2 < -clampε {
			return 0, &DomainError{Op: "eccentricity", Value: e2}
		}
		e2 = 0 // Circular up to rounding
	}
	return math.Sqrt(e2), nil
}
