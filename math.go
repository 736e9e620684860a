package bmw

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
	// clampε is how far outside of [-1, 1] a cosine or sine may drift before
	// it is considered out of domain instead of rounding noise.
	clampε = 1e-9
)

// csc returns the cosecant of θ (in radians).
func csc(θ float64) float64 {
	return 1 / math.Sin(θ)
}

// cot returns the cotangent of θ (in radians).
func cot(θ float64) float64 {
	return math.Cos(θ) / math.Sin(θ)
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if scalar.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// clampUnit returns x snapped onto ±1 when it only exceeds [-1, 1] by rounding
// noise, and a DomainError when it is further out or not a number.
func clampUnit(op string, x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, &DomainError{Op: op, Value: x}
	}
	if abs := math.Abs(x); abs > 1 {
		if !scalar.EqualWithinAbs(abs, 1, clampε) {
			return 0, &DomainError{Op: op, Value: x}
		}
		x = sign(x)
	}
	return x, nil
}

// acosDeg returns the arc cosine of x in degrees, following the clamp policy.
func acosDeg(op string, x float64) (float64, error) {
	x, err := clampUnit(op, x)
	if err != nil {
		return 0, err
	}
	return math.Acos(x) * rad2deg, nil
}

// asinRad returns the arc sine of x in radians, following the clamp policy.
func asinRad(op string, x float64) (float64, error) {
	x, err := clampUnit(op, x)
	if err != nil {
		return 0, err
	}
	return math.Asin(x), nil
}

// unitVec returns the unit vector of a given vector, or a zero vector for a zero norm.
func unitVec(a *mat.VecDense) (b *mat.VecDense) {
	b = mat.NewVecDense(a.Len(), nil)
	n := mat.Norm(a, 2)
	if scalar.EqualWithinAbs(n, 0, 1e-12) {
		return
	}
	b.ScaleVec(1/n, a)
	return
}

// Deg2rad converts degrees to radians. Unlike an orbital element conversion,
// the sign is kept since flight path angles may be negative.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a * rad2deg
}
