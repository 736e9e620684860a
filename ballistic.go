package bmw

import (
	"math"
)

// Q returns the nondimensional parameter Q = v²r/μ.
func Q(v, r float64, sys UnitSystem) float64 {
	return v * v * r / sys.Mu()
}

// VelocityForQ returns the speed at radius r which yields q.
func VelocityForQ(q, r float64, sys UnitSystem) float64 {
	return math.Sqrt(sys.Mu() * q / r)
}

// QFromVelocityRatio returns Q as the square of the ratio of v to the circular speed at r.
// This is algebraically identical to Q.
func QFromVelocityRatio(v, r float64, sys UnitSystem) float64 {
	return math.Pow(v/CircularOrbitSpeed(r, sys), 2)
}

// SemiMajorAxis returns the semi-major axis of the ballistic ellipse from r and Q at the same point.
func SemiMajorAxis(r, q float64) float64 {
	return r / (2 - q)
}

// QFromSemiMajorAxis returns Q at radius r on an orbit of semi-major axis a.
func QFromSemiMajorAxis(r, a float64) float64 {
	return 2 - r/a
}

// EllipseRadius returns the radius at true anomaly ν (degrees) of a conic of semi-latus rectum p
// and eccentricity e.
func EllipseRadius(p, e, ν float64) float64 {
	return p / (1 + e*math.Cos(ν*deg2rad))
}

// AnomalyOfEllipse returns the true anomaly (degrees, in [0, 180]) at which the conic reaches r.
func AnomalyOfEllipse(p, e, r float64) (float64, error) {
	return acosDeg("anomaly of ellipse", (p-r)/(e*r))
}

// FreeFlightAngleFromAnomaly returns the free-flight range angle ψ (degrees) of a
// symmetrical trajectory from the true anomaly at burnout (degrees).
func FreeFlightAngleFromAnomaly(νbo float64) float64 {
	halfψ := math.Acos(-math.Cos(νbo * deg2rad))
	return 2 * halfψ * rad2deg
}

// AnomalyAtBurnout returns the true anomaly at burnout (degrees) of a symmetrical
// trajectory of free-flight range angle ψ (degrees).
func AnomalyAtBurnout(ψ float64) float64 {
	return math.Acos(-math.Cos(ψ/2*deg2rad)) * rad2deg
}

// FreeFlightAngleFromQAndFPA solves the free-flight range equation for ψ (degrees)
// from Q and the flight path angle (degrees) at burnout.
// A cos(ψ/2) beyond rounding noise of ±1 returns a DomainError. If cos(ψ/2) is not a
// number, e.g. Q = 1 with a horizontal burnout (circular orbit), then the range is
// reported as zero and no error is returned.
func FreeFlightAngleFromQAndFPA(qbo, fpabo float64) (float64, error) {
	cosFPA := math.Cos(fpabo * deg2rad)
	cosFPA2 := cosFPA * cosFPA

	num := 1 - qbo*cosFPA2
	den := math.Sqrt(1 + qbo*(qbo-2)*cosFPA2)
	if math.IsNaN(num / den) {
		return 0, nil
	}
	cosHalfψ, err := clampUnit("free-flight range angle", num/den)
	if err != nil {
		return 0, err
	}
	return 2 * math.Acos(cosHalfψ) * rad2deg, nil
}

// FreeFlightAngleFromState returns ψ (degrees) from the burnout radius, speed and flight
// path angle (degrees).
func FreeFlightAngleFromState(rbo, vbo, fpabo float64, sys UnitSystem) (float64, error) {
	return FreeFlightAngleFromQAndFPA(Q(vbo, rbo, sys), fpabo)
}

// FlightPathAngles returns both burnout flight path angles (degrees) which reach a
// free-flight range angle ψ (degrees) with the provided Q at burnout: the first is the
// low trajectory and the second the high one. Note that when Q > 1 only the second
// is physically meaningful.
func FlightPathAngles(ψ, qbo float64) (fpa1, fpa2 float64, err error) {
	halfψ := ψ * deg2rad / 2
	rightSide := (2 - qbo) / qbo * math.Sin(halfψ)
	a0, err := asinRad("burnout flight path angles", rightSide)
	if err != nil {
		return 0, 0, err
	}
	a1 := math.Pi - a0
	fpa1 = (a0 - halfψ) * rad2deg / 2
	fpa2 = (a1 - halfψ) * rad2deg / 2
	return
}

// MaxRangeBurnoutFPA returns the burnout flight path angle (degrees) which maximizes
// the range for a free-flight range angle ψ (degrees).
func MaxRangeBurnoutFPA(ψ float64) float64 {
	return 0.25 * (180 - ψ)
}

// MaxRangeAngle returns the maximum free-flight range angle (degrees) achievable with
// the provided Q at burnout. Q > 1 has no finite maximum and returns a DomainError.
func MaxRangeAngle(qbo float64) (float64, error) {
	halfψ, err := asinRad("maximum range angle", qbo/(2-qbo))
	if err != nil {
		return 0, err
	}
	return 2 * halfψ * rad2deg, nil
}

// RequiredQForRange returns the smallest Q at burnout which can reach a free-flight
// range angle ψ (degrees).
func RequiredQForRange(ψ float64) float64 {
	sinHalfψ := math.Sin(ψ / 2 * deg2rad)
	return 2 * sinHalfψ / (1 + sinHalfψ)
}
