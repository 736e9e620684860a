package bmw

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// Reference lengths and times in SI, from which the canonical scale factors derive.
var (
	foot         = unit.Length(0.3048)
	statuteMile  = unit.Length(1609.344)
	nauticalMile = unit.Length(1852)
	kilometer    = unit.Length(1e3)

	// One distance unit is the mean equatorial radius.
	distanceUnit = unit.Length(radiusMetric * 1e3)
	// One time unit is the time for a satellite at one DU to travel one radian.
	timeUnit     = unit.Time(math.Sqrt(math.Pow(radiusMetric, 3) / μMetric))
	velocityUnit = unit.Velocity(float64(distanceUnit) / float64(timeUnit))
)

// Conversion is a linear scale factor between two units.
type Conversion struct {
	From, To string
	Factor   float64 // multiply a From quantity by Factor to get a To quantity
	Inverse  float64 // 1/Factor
}

func newConversion(from, to string, factor float64) Conversion {
	return Conversion{From: from, To: to, Factor: factor, Inverse: 1 / factor}
}

// Forward converts x from the From unit to the To unit.
func (c Conversion) Forward(x float64) float64 {
	return x * c.Factor
}

// Backward converts x from the To unit back to the From unit.
func (c Conversion) Backward(x float64) float64 {
	return x * c.Inverse
}

func (c Conversion) String() string {
	return fmt.Sprintf("%s->%s (x%.10g)", c.From, c.To, c.Factor)
}

// lengthConversion returns the conversion from canonical distance units to a reference length.
func lengthConversion(to string, ref unit.Length) Conversion {
	return newConversion("DU", to, float64(CanonicalLength(1)/ref))
}

// Conversions from canonical units.
var (
	CanonicalFeet          = lengthConversion("ft", foot)
	CanonicalMiles         = lengthConversion("mi", statuteMile)
	CanonicalNauticalMiles = lengthConversion("nm", nauticalMile)
	CanonicalKm            = lengthConversion("km", kilometer)
	CanonicalSeconds       = newConversion("TU", "s", float64(CanonicalTime(1)))
	CanonicalFtPerSec      = newConversion("DU/TU", "ft/s", float64(CanonicalVelocity(1))/float64(foot))
	CanonicalKmPerSec      = newConversion("DU/TU", "km/s", float64(CanonicalVelocity(1))/float64(kilometer))
)

// CanonicalLength returns a distance in DU as an SI length.
func CanonicalLength(du float64) unit.Length {
	return unit.Length(du) * distanceUnit
}

// CanonicalTime returns a duration in TU as an SI time.
func CanonicalTime(tu float64) unit.Time {
	return unit.Time(tu) * timeUnit
}

// CanonicalVelocity returns a speed in DU/TU as an SI velocity.
func CanonicalVelocity(v float64) unit.Velocity {
	return unit.Velocity(v) * velocityUnit
}

// Length returns a distance expressed in this unit system as an SI length.
func (s UnitSystem) Length(x float64) unit.Length {
	switch s {
	case English:
		return unit.Length(x) * foot
	case Metric:
		return unit.Length(x) * kilometer
	case Canonical:
		return CanonicalLength(x)
	default:
		panic(fmt.Errorf("%w: %s is not a unit system", ErrInvalidArgument, s))
	}
}

// Time returns a duration expressed in this unit system as an SI time.
func (s UnitSystem) Time(x float64) unit.Time {
	switch s {
	case English, Metric:
		return unit.Time(x)
	case Canonical:
		return CanonicalTime(x)
	default:
		panic(fmt.Errorf("%w: %s is not a unit system", ErrInvalidArgument, s))
	}
}

// Arc length conversions on the Earth's surface, and nautical miles to kilometers.
var (
	DegreesNauticalMiles = newConversion("deg", "nm", 60)
	NauticalMilesKm      = newConversion("nm", "km", float64(nauticalMile/kilometer))
	DegreesKm            = newConversion("deg", "km", 111.12)
)

// Conversions returns the whole conversion table.
func Conversions() []Conversion {
	return []Conversion{CanonicalFeet, CanonicalMiles, CanonicalNauticalMiles, CanonicalKm,
		CanonicalSeconds, CanonicalFtPerSec, CanonicalKmPerSec,
		DegreesNauticalMiles, NauticalMilesKm, DegreesKm}
}

// DistanceConversion returns the conversion from canonical distance units to the provided unit.
func DistanceConversion(to string) (Conversion, error) {
	switch strings.ToLower(strings.TrimSpace(to)) {
	case "ft", "feet":
		return CanonicalFeet, nil
	case "mi", "miles":
		return CanonicalMiles, nil
	case "nm", "nautical miles":
		return CanonicalNauticalMiles, nil
	case "km", "kilometers":
		return CanonicalKm, nil
	case "du", "canonical":
		return newConversion("DU", "DU", 1), nil
	default:
		return Conversion{}, fmt.Errorf("%w: unknown distance unit '%s'", ErrInvalidArgument, to)
	}
}
