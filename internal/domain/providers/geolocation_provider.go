package providers

import (
	"context"
	"errors"

	"github.com/samasante/backend/internal/domain/entities"
)

// ErrNoGeocodeResult is returned when an address cannot be resolved
var ErrNoGeocodeResult = errors.New("no geocode result")

// GeolocationProvider defines the interface for geocoding services
type GeolocationProvider interface {
	// Geocode converts an address to coordinates
	Geocode(ctx context.Context, address string) (*entities.Coordinates, error)
}

// ClinicLocator finds clinics that can receive emergency alerts
type ClinicLocator interface {
	GetNearbyClinics(ctx context.Context, at entities.Coordinates) ([]entities.Clinic, error)
}

// LocationResolver turns what the client reported into a position, or a
// *entities.LocationError
type LocationResolver interface {
	Resolve(ctx context.Context, input entities.LocationInput) (entities.Coordinates, error)
}
