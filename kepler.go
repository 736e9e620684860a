package bmw

import (
	"fmt"
	"math"
)

// EccentricAnomaly returns the eccentric anomaly (degrees, in [0, 180]) at true anomaly ν (degrees).
func EccentricAnomaly(e, ν float64) (float64, error) {
	cosν := math.Cos(ν * deg2rad)
	return acosDeg("eccentric anomaly", (e+cosν)/(1+e*cosν))
}

// EccentricAnomalyFromMaxRange returns the eccentric anomaly (degrees) at the burnout point of a
// symmetrical trajectory of eccentricity e and free-flight range angle ψ (degrees).
func EccentricAnomalyFromMaxRange(e, ψ float64) (float64, error) {
	cosHalfψ := math.Cos(ψ / 2 * deg2rad)
	return acosDeg("eccentric anomaly at burnout", (e-cosHalfψ)/(1-e*cosHalfψ))
}

// FreeFlightTime returns the free-flight time of a symmetrical trajectory from the eccentric
// anomaly at burnout E (degrees), the eccentricity and the semi-major axis.
func FreeFlightTime(E, e, a float64, sys UnitSystem) float64 {
	Erad := E * deg2rad
	return 2 * math.Sqrt(math.Pow(a, 3)/sys.Mu()) * (math.Pi - Erad + e*math.Sin(Erad))
}

// FreeFlightTimeCircular returns the period of a circular orbit of radius r, which is the
// free-flight time limit of a burnout at that radius.
func FreeFlightTimeCircular(r float64, sys UnitSystem) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(r, 3)/sys.Mu())
}

// Trajectory is the free-flight ellipse of a ballistic missile, computed from its burnout state.
// Reentry is assumed to happen at the burnout radius (symmetrical trajectory).
type Trajectory struct {
	System              UnitSystem
	Rbo, Vbo, FPAbo     float64 // Burnout state, FPA in degrees
	Q                   float64
	Rangeψ              float64 // Free-flight range angle in degrees
	SMA, Ecc, SemiParam float64
	Apogee              float64 // Apogee radius
	Anomalyν            float64 // True anomaly at burnout in degrees
	AnomalyE            float64 // Eccentric anomaly at burnout in degrees
	FlightTime          float64
}

// NewTrajectory returns the trajectory from the burnout radius, speed and flight path angle (degrees).
func NewTrajectory(rbo, vbo, fpabo float64, sys UnitSystem) (Trajectory, error) {
	if _, err := MuOf(sys); err != nil {
		return Trajectory{}, err
	}
	t := Trajectory{System: sys, Rbo: rbo, Vbo: vbo, FPAbo: fpabo}
	t.Q = Q(vbo, rbo, sys)
	if t.Q >= 2 {
		return Trajectory{}, fmt.Errorf("%w: Q=%f at burnout is not a ballistic ellipse", ErrInvalidArgument, t.Q)
	}
	var err error
	if t.Rangeψ, err = FreeFlightAngleFromQAndFPA(t.Q, fpabo); err != nil {
		return Trajectory{}, err
	}
	t.SMA = SemiMajorAxis(rbo, t.Q)
	h := AngularMomentumAt(vbo, rbo, fpabo)
	t.SemiParam = SemiLatusRectum(h, sys)
	if t.Ecc, err = Eccentricity(SpecificMechanicalEnergy(vbo, rbo, sys), h, sys); err != nil {
		return Trajectory{}, err
	}
	t.Apogee = t.SMA * (1 + t.Ecc)
	t.Anomalyν = AnomalyAtBurnout(t.Rangeψ)
	if t.AnomalyE, err = EccentricAnomalyFromMaxRange(t.Ecc, t.Rangeψ); err != nil {
		return Trajectory{}, err
	}
	t.FlightTime = FreeFlightTime(t.AnomalyE, t.Ecc, t.SMA, sys)
	return t, nil
}

// String implements the stringer interface.
func (t Trajectory) String() string {
	return fmt.Sprintf("[%s] Q=%.4f ψ=%.3f a=%.4f e=%.4f ra=%.4f tff=%.4f", t.System, t.Q, t.Rangeψ, t.SMA, t.Ecc, t.Apogee, t.FlightTime)
}
