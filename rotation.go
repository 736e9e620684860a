package bmw

import (
	"math"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// Impact returns the point reached after a free-flight range angle ψ (degrees) flown from
// this site along the azimuth β (degrees clockwise from north). The Earth does not rotate
// under the missile.
func (s Site) Impact(β, ψ float64) Site {
	sβ, cβ := math.Sincos(β * deg2rad)
	sψ, cψ := math.Sincos(ψ * deg2rad)
	// Local frame: site on the 1st axis, east on the 2nd, north on the 3rd.
	local := mat.NewVecDense(3, []float64{cψ, sψ * sβ, sψ * cβ})
	var meridian, ecef mat.VecDense
	meridian.MulVec(R2(s.Lat.Rad()), local)
	ecef.MulVec(R3(-s.Lon.Rad()), &meridian)
	x, y, z := ecef.AtVec(0), ecef.AtVec(1), ecef.AtVec(2)
	return Site{globe.Coord{
		Lat: unit.Angle(math.Atan2(z, math.Hypot(x, y))),
		Lon: unit.Angle(math.Atan2(y, x)),
	}}
}
