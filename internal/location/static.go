package location

import "context"

// DefaultLabel is the report title when fixed coordinates are used and no
// label was configured.
const DefaultLabel = "Overview"

// Static serves fixed coordinates configured at startup. It ignores the
// query and never fails after construction.
type Static struct {
	name string
	loc  Location
}

func NewStatic(lat, lon float64, label string) (*Static, error) {
	if label == "" {
		label = DefaultLabel
	}

	loc := Location{Lat: lat, Lon: lon, Name: label}
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	return &Static{name: "static", loc: loc}, nil
}

func (s *Static) Name() string {
	return s.name
}

func (s *Static) Resolve(context.Context, string) (Location, error) {
	return s.loc, nil
}
