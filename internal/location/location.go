package location

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrNoMatch is returned when a query could not be resolved to a location.
// Every resolver failure mode (no candidates, transport error, malformed
// response) collapses to this error.
var ErrNoMatch = errors.New("no matching location")

// Location is a resolved geographic position plus a short display name.
type Location struct {
	Lat  float64 `validate:"latitude"`
	Lon  float64 `validate:"longitude"`
	Name string
}

// Validate checks that the coordinates are on the globe.
func (l Location) Validate() error {
	return validate.Struct(l)
}

// Source abstracts how the program obtains its location: geocoding a
// free-text query, or fixed coordinates configured at startup.
type Source interface {
	Name() string
	Resolve(ctx context.Context, query string) (Location, error)
}

// displayName shortens a full address to its first comma-separated segment.
func displayName(full string) string {
	segment, _, _ := strings.Cut(full, ",")
	return strings.TrimSpace(segment)
}
