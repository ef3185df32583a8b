package filters

import (
	"time"

	"github.com/jonathanmnovak/neo-capstone/model"
)

// Parameter names shared by the HTTP query string and the CLI flags.
const (
	ParamDate        = "date"
	ParamStartDate   = "start_date"
	ParamEndDate     = "end_date"
	ParamMinDistance = "min_distance"
	ParamMaxDistance = "max_distance"
	ParamMinVelocity = "min_velocity"
	ParamMaxVelocity = "max_velocity"
	ParamMinDiameter = "min_diameter"
	ParamMaxDiameter = "max_diameter"
	ParamHazardous   = "hazardous"
)

// ParseOptions builds Options from raw string parameters. get returns ""
// for an unset parameter. The first invalid parameter aborts parsing.
func ParseOptions(get func(name string) string) (Options, error) {
	var opts Options

	for _, d := range []struct {
		name string
		dst  **time.Time
	}{
		{ParamDate, &opts.Date},
		{ParamStartDate, &opts.StartDate},
		{ParamEndDate, &opts.EndDate},
	} {
		bound, err := model.NewDateBound(d.name, get(d.name))
		if err != nil {
			return Options{}, err
		}
		*d.dst = bound.Ptr()
	}

	for _, f := range []struct {
		name string
		dst  **float64
	}{
		{ParamMinDistance, &opts.DistanceMin},
		{ParamMaxDistance, &opts.DistanceMax},
		{ParamMinVelocity, &opts.VelocityMin},
		{ParamMaxVelocity, &opts.VelocityMax},
		{ParamMinDiameter, &opts.DiameterMin},
		{ParamMaxDiameter, &opts.DiameterMax},
	} {
		bound, err := model.NewFloatBound(f.name, get(f.name))
		if err != nil {
			return Options{}, err
		}
		*f.dst = bound.Ptr()
	}

	hazardous, err := model.NewHazardFlag(get(ParamHazardous))
	if err != nil {
		return Options{}, err
	}
	opts.Hazardous = hazardous.Ptr()

	return opts, nil
}
