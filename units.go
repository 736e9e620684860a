package bmw

import (
	"fmt"
	"strings"
)

// UnitSystem defines the unit convention of every physical quantity passed to
// or returned from the formulas of this package.
type UnitSystem uint8

const (
	// English units: feet and seconds.
	English UnitSystem = iota + 1
	// Metric units: kilometers and seconds.
	Metric
	// Canonical units: the Earth's radius and gravitational parameter are both one (DU and TU).
	Canonical
)

const (
	// mean equatorial radius
	radiusEnglish   = 2.092567257e7 // ft
	radiusMetric    = 6378.145      // km
	radiusCanonical = 1.0           // DU

	// gravitational parameter
	μEnglish   = 1.407654e16 // ft^3/s^2
	μMetric    = 3.986012e5  // km^3/s^2
	μCanonical = 1.0         // DU^3/TU^2
)

// Mu returns the gravitational parameter μ of the Earth in this unit system.
// Panics on an unknown unit system, use MuOf to get an error instead.
func (s UnitSystem) Mu() float64 {
	μ, err := MuOf(s)
	if err != nil {
		panic(err)
	}
	return μ
}

// Radius returns the mean equatorial radius of the Earth in this unit system.
// Panics on an unknown unit system, use RadiusOf to get an error instead.
func (s UnitSystem) Radius() float64 {
	r, err := RadiusOf(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (s UnitSystem) String() string {
	switch s {
	case English:
		return "english"
	case Metric:
		return "metric"
	case Canonical:
		return "canonical"
	default:
		return fmt.Sprintf("UnitSystem(%d)", uint8(s))
	}
}

// MuOf returns the gravitational parameter for the provided unit system.
func MuOf(s UnitSystem) (float64, error) {
	switch s {
	case English:
		return μEnglish, nil
	case Metric:
		return μMetric, nil
	case Canonical:
		return μCanonical, nil
	default:
		return 0, fmt.Errorf("%w: %s is not a unit system", ErrInvalidArgument, s)
	}
}

// RadiusOf returns the mean equatorial radius for the provided unit system.
func RadiusOf(s UnitSystem) (float64, error) {
	switch s {
	case English:
		return radiusEnglish, nil
	case Metric:
		return radiusMetric, nil
	case Canonical:
		return radiusCanonical, nil
	default:
		return 0, fmt.Errorf("%w: %s is not a unit system", ErrInvalidArgument, s)
	}
}

// UnitSystemFromString returns the unit system from its name.
func UnitSystemFromString(name string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "english":
		return English, nil
	case "metric":
		return Metric, nil
	case "canonical":
		return Canonical, nil
	default:
		return 0, fmt.Errorf("%w: undefined unit system '%s'", ErrInvalidArgument, name)
	}
}
