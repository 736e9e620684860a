package bmw

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// NewBurnoutCovariance returns the covariance of independent burnout errors, ordered like
// BurnoutErrors.Vector: flight path angle (radians), height and velocity standard deviations.
func NewBurnoutCovariance(σfpa, σheight, σvelocity float64) *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		σfpa * σfpa, 0, 0,
		0, σheight * σheight, 0,
		0, 0, σvelocity * σvelocity})
}

// RangeVariance returns the variance of the first order down-range miss (radians²).
func RangeVariance(ic InfluenceCoefficients, cov mat.Symmetric) float64 {
	icVec := ic.Vector()
	return mat.Inner(icVec, cov, icVec)
}

// SampleMisses draws n zero-mean burnout errors from the covariance and returns the
// corresponding first order down-range misses (radians).
func SampleMisses(ic InfluenceCoefficients, cov mat.Symmetric, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot draw %d samples", ErrInvalidArgument, n)
	}
	normal, ok := distmv.NewNormal(make([]float64, 3), cov, nil)
	if !ok {
		return nil, fmt.Errorf("%w: burnout covariance is not positive definite", ErrInvalidArgument)
	}
	misses := make([]float64, n)
	sample := make([]float64, 3)
	for i := range misses {
		normal.Rand(sample)
		misses[i] = DownRangeMiss(ic, BurnoutErrors{FPA: sample[0], Height: sample[1], Velocity: sample[2]})
	}
	return misses, nil
}

// MissStatistics returns the mean and standard deviation of sampled misses.
func MissStatistics(misses []float64) (mean, std float64) {
	return stat.MeanStdDev(misses, nil)
}
