package bmw

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

// Site is a burnout or reentry point on a spherical Earth.
// Only longitude differences are used, so the sign convention of longitude does not matter
// as long as both sites share it.
type Site struct {
	globe.Coord
}

// NewSite returns a site from its latitude and longitude in degrees.
func NewSite(lat, lon float64) Site {
	return Site{globe.Coord{Lat: unit.AngleFromDeg(lat), Lon: unit.AngleFromDeg(lon)}}
}

// Unit returns the unit vector from the center of the Earth to this site.
func (s Site) Unit() *mat.VecDense {
	sLat, cLat := math.Sincos(s.Lat.Rad())
	sLon, cLon := math.Sincos(s.Lon.Rad())
	return unitVec(mat.NewVecDense(3, []float64{cLat * cLon, cLat * sLon, sLat}))
}

func (s Site) String() string {
	return fmt.Sprintf("(%.4f°, %.4f°)", s.Lat.Deg(), s.Lon.Deg())
}

// CosRangeAngle returns the cosine of the central angle between two sites (spherical law of cosines).
func CosRangeAngle(burnout, reentry Site) float64 {
	sφ1, cφ1 := math.Sincos(burnout.Lat.Rad())
	sφ2, cφ2 := math.Sincos(reentry.Lat.Rad())
	return sφ1*sφ2 + cφ1*cφ2*math.Cos((burnout.Lon - reentry.Lon).Rad())
}

// RangeAngle returns the free-flight range angle (degrees, at most 180) between two sites.
func RangeAngle(burnout, reentry Site) (float64, error) {
	return acosDeg("site range angle", CosRangeAngle(burnout, reentry))
}

// RangeAngleVec is RangeAngle computed from the dot product of the site unit vectors.
func RangeAngleVec(burnout, reentry Site) (float64, error) {
	return acosDeg("site range angle", mat.Dot(burnout.Unit(), reentry.Unit()))
}
