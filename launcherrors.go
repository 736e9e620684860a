package bmw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CrossRangeErrorLateral returns the cross-range error (degrees) caused by a lateral
// displacement Δx (degrees) of the burnout point, for a free-flight range angle ψ (degrees).
func CrossRangeErrorLateral(ψ, Δx float64) (float64, error) {
	sinψ, cosψ := math.Sincos(ψ * deg2rad)
	cosΔc := sinψ*sinψ + cosψ*cosψ*math.Cos(Δx*deg2rad)
	return acosDeg("lateral cross-range error", cosΔc)
}

// CrossRangeErrorLateralSmallAngle is the small angle approximation of CrossRangeErrorLateral.
func CrossRangeErrorLateralSmallAngle(ψ, Δx float64) float64 {
	return Δx * math.Cos(ψ*deg2rad)
}

// CrossRangeErrorAzimuthal returns the cross-range error (degrees) caused by an error Δβ
// (degrees) in the burnout azimuth, for a free-flight range angle ψ (degrees).
func CrossRangeErrorAzimuthal(ψ, Δβ float64) (float64, error) {
	sinψ, cosψ := math.Sincos(ψ * deg2rad)
	cosΔc := cosψ*cosψ + sinψ*sinψ*math.Cos(Δβ*deg2rad)
	return acosDeg("azimuthal cross-range error", cosΔc)
}

// CrossRangeErrorAzimuthalSmallAngle is the small angle approximation of CrossRangeErrorAzimuthal.
func CrossRangeErrorAzimuthalSmallAngle(ψ, Δβ float64) float64 {
	return Δβ * math.Sin(ψ*deg2rad)
}

// DownRangeError returns the free-flight range angle ψ (degrees) from the cotangent form of the
// range equation, ψ = 2 arccot(2/Q csc 2γ - cot γ), which is the form differentiated to get
// the influence coefficients.
func DownRangeError(qbo, fpabo float64) float64 {
	γ := fpabo * deg2rad
	cotHalfψ := 2/qbo*csc(2*γ) - cot(γ)
	return 2 * math.Atan2(1, cotHalfψ) * rad2deg
}

// InfluenceCoefficientFPA returns ∂ψ/∂γ (dimensionless) for ψ and γ in degrees.
func InfluenceCoefficientFPA(ψ, fpabo float64) float64 {
	twoγ := 2 * fpabo * deg2rad
	return 2*math.Sin(ψ*deg2rad+twoγ)/math.Sin(twoγ) - 2
}

// InfluenceCoefficientBurnoutHeight returns ∂ψ/∂r in radians per unit of length.
func InfluenceCoefficientBurnoutHeight(rbo, vbo, fpabo, ψ float64, sys UnitSystem) float64 {
	sinHalfψ := math.Sin(ψ * deg2rad / 2)
	return 4 * sys.Mu() / (vbo * vbo * rbo * rbo) * sinHalfψ * sinHalfψ / math.Sin(2*fpabo*deg2rad)
}

// InfluenceCoefficientBurnoutVelocity returns ∂ψ/∂v in radians per unit of speed.
func InfluenceCoefficientBurnoutVelocity(rbo, vbo, fpabo, ψ float64, sys UnitSystem) float64 {
	sinHalfψ := math.Sin(ψ * deg2rad / 2)
	return 8 * sys.Mu() / (math.Pow(vbo, 3) * rbo) * sinHalfψ * sinHalfψ / math.Sin(2*fpabo*deg2rad)
}

// InfluenceCoefficientBurnoutVelocityAlternative returns ∂ψ/∂v from ∂ψ/∂r, since Q only
// depends on v²r.
func InfluenceCoefficientBurnoutVelocityAlternative(rbo, vbo, icHeight float64) float64 {
	return 2 * rbo / vbo * icHeight
}

// InfluenceCoefficients are the partial derivatives of the free-flight range angle (radians)
// with respect to each burnout condition, around a nominal trajectory.
type InfluenceCoefficients struct {
	Rangeψ   float64 // Nominal free-flight range angle in degrees
	FPA      float64 // ∂ψ/∂γ
	Height   float64 // ∂ψ/∂r
	Velocity float64 // ∂ψ/∂v
}

// NewInfluenceCoefficients returns the influence coefficients of the provided burnout state
// (flight path angle in degrees).
func NewInfluenceCoefficients(rbo, vbo, fpabo float64, sys UnitSystem) (InfluenceCoefficients, error) {
	ψ, err := FreeFlightAngleFromState(rbo, vbo, fpabo, sys)
	if err != nil {
		return InfluenceCoefficients{}, err
	}
	return InfluenceCoefficients{
		Rangeψ:   ψ,
		FPA:      InfluenceCoefficientFPA(ψ, fpabo),
		Height:   InfluenceCoefficientBurnoutHeight(rbo, vbo, fpabo, ψ, sys),
		Velocity: InfluenceCoefficientBurnoutVelocity(rbo, vbo, fpabo, ψ, sys),
	}, nil
}

// Vector returns the coefficients as [FPA, Height, Velocity].
func (ic InfluenceCoefficients) Vector() *mat.VecDense {
	return mat.NewVecDense(3, []float64{ic.FPA, ic.Height, ic.Velocity})
}

func (ic InfluenceCoefficients) String() string {
	return fmt.Sprintf("ψ=%.3f ∂ψ/∂γ=%.4f ∂ψ/∂r=%.4f ∂ψ/∂v=%.4f", ic.Rangeψ, ic.FPA, ic.Height, ic.Velocity)
}

// BurnoutErrors are small deviations from the nominal burnout conditions.
type BurnoutErrors struct {
	FPA      float64 // Radians
	Height   float64
	Velocity float64
}

// Vector returns the errors as [FPA, Height, Velocity].
func (b BurnoutErrors) Vector() *mat.VecDense {
	return mat.NewVecDense(3, []float64{b.FPA, b.Height, b.Velocity})
}

// DownRangeMiss returns the first order down-range miss ΔΨ (radians of central angle, hence
// DU) caused by the burnout errors.
func DownRangeMiss(ic InfluenceCoefficients, Δ BurnoutErrors) float64 {
	return mat.Dot(ic.Vector(), Δ.Vector())
}

// ExactDownRangeMiss returns the down-range miss (radians) by solving the range equation for
// both the nominal and the perturbed burnout states. Used to check the linearization.
func ExactDownRangeMiss(rbo, vbo, fpabo float64, Δ BurnoutErrors, sys UnitSystem) (float64, error) {
	ψ0, err := FreeFlightAngleFromState(rbo, vbo, fpabo, sys)
	if err != nil {
		return 0, err
	}
	ψ1, err := FreeFlightAngleFromState(rbo+Δ.Height, vbo+Δ.Velocity, fpabo+Δ.FPA*rad2deg, sys)
	if err != nil {
		return 0, err
	}
	return (ψ1 - ψ0) * deg2rad, nil
}

// Miss is a down-range miss. A positive miss is an overshoot, a negative one an undershoot.
type Miss struct {
	Canonical float64 // DU
	Distance  float64 // in Unit
	Unit      string
}

// MissDistance converts a down-range miss in radians (i.e. DU) with the provided conversion
// from canonical distance units.
func MissDistance(ΔΨ float64, c Conversion) Miss {
	return Miss{Canonical: ΔΨ, Distance: c.Forward(ΔΨ), Unit: c.To}
}

// Overshoot returns whether the missile lands beyond the target.
func (m Miss) Overshoot() bool {
	return m.Canonical > 0
}

func (m Miss) String() string {
	dir := "undershoot"
	if m.Overshoot() {
		dir = "overshoot"
	}
	return fmt.Sprintf("%.4f %s - %s", math.Abs(m.Distance), m.Unit, dir)
}
