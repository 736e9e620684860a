package bmw

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"
)

// Scenario is a ballistic missile analysis read from a TOML file.
type Scenario struct {
	Name     string
	System   UnitSystem
	Altitude float64 // Burnout altitude above the mean equatorial radius
	Velocity float64 // Burnout speed
	FPA      float64 // Burnout flight path angle in degrees
	Errors   BurnoutErrors
	Sigma    BurnoutErrors // One sigma burnout dispersions, all positive or all zero when unset
	Lateral  float64 // Lateral displacement of the burnout point in degrees
	Azimuth  float64 // Burnout azimuth error in degrees
	Distance Conversion
	Burnout  *Site // Optional, both sites are needed to compute the required flight path angles
	Reentry  *Site
}

// Covariance returns the burnout covariance, or nil if no dispersion is set.
func (s Scenario) Covariance() *mat.SymDense {
	if s.Sigma == (BurnoutErrors{}) {
		return nil
	}
	return NewBurnoutCovariance(s.Sigma.FPA, s.Sigma.Height, s.Sigma.Velocity)
}

// Radius returns the burnout radius.
func (s Scenario) Radius() float64 {
	return s.System.Radius() + s.Altitude
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s [%s] h=%g v=%g γ=%g", s.Name, s.System, s.Altitude, s.Velocity, s.FPA)
}

// LoadScenario reads the scenario from the provided TOML file.
// Angles are in degrees except the flight path angle error which is in radians.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %s", path, err)
	}
	for _, key := range []string{"burnout.units", "burnout.altitude", "burnout.velocity", "burnout.fpa"} {
		if !v.IsSet(key) {
			return Scenario{}, fmt.Errorf("%w: %s: `%s` is missing", ErrInvalidArgument, path, key)
		}
	}
	var err error
	s := Scenario{}
	s.Name = v.GetString("general.name")
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if s.System, err = UnitSystemFromString(v.GetString("burnout.units")); err != nil {
		return Scenario{}, err
	}
	s.Altitude = v.GetFloat64("burnout.altitude")
	s.Velocity = v.GetFloat64("burnout.velocity")
	s.FPA = v.GetFloat64("burnout.fpa")
	s.Errors = BurnoutErrors{
		FPA:      v.GetFloat64("errors.fpa"),
		Height:   v.GetFloat64("errors.height"),
		Velocity: v.GetFloat64("errors.velocity"),
	}
	dispersionKeys := []string{"dispersion.fpa", "dispersion.height", "dispersion.velocity"}
	if v.IsSet(dispersionKeys[0]) || v.IsSet(dispersionKeys[1]) || v.IsSet(dispersionKeys[2]) {
		// The covariance must be positive definite to be sampled.
		for _, key := range dispersionKeys {
			if !v.IsSet(key) {
				return Scenario{}, fmt.Errorf("%w: %s: `%s` is missing", ErrInvalidArgument, path, key)
			}
			if v.GetFloat64(key) <= 0 {
				return Scenario{}, fmt.Errorf("%w: %s: `%s` must be positive", ErrInvalidArgument, path, key)
			}
		}
		s.Sigma = BurnoutErrors{
			FPA:      v.GetFloat64("dispersion.fpa"),
			Height:   v.GetFloat64("dispersion.height"),
			Velocity: v.GetFloat64("dispersion.velocity"),
		}
	}
	s.Lateral = v.GetFloat64("errors.lateral")
	s.Azimuth = v.GetFloat64("errors.azimuth")

	v.SetDefault("report.distance", "nm")
	if s.Distance, err = DistanceConversion(v.GetString("report.distance")); err != nil {
		return Scenario{}, err
	}

	if v.IsSet("sites.burnout_lat") || v.IsSet("sites.reentry_lat") {
		for _, key := range []string{"sites.burnout_lat", "sites.burnout_lon", "sites.reentry_lat", "sites.reentry_lon"} {
			if !v.IsSet(key) {
				return Scenario{}, fmt.Errorf("%w: %s: `%s` is missing", ErrInvalidArgument, path, key)
			}
		}
		bo := NewSite(v.GetFloat64("sites.burnout_lat"), v.GetFloat64("sites.burnout_lon"))
		re := NewSite(v.GetFloat64("sites.reentry_lat"), v.GetFloat64("sites.reentry_lon"))
		s.Burnout, s.Reentry = &bo, &re
	}
	return s, nil
}
