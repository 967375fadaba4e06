package geolocation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/observability"
)

// DefaultLocationTimeout bounds location acquisition
const DefaultLocationTimeout = 10 * time.Second

// LocationResolver turns client-reported location data into coordinates
type LocationResolver struct {
	geocoder providers.GeolocationProvider
	timeout  time.Duration
}

// NewLocationResolver creates a resolver. geocoder may be nil, in which case
// address input is unsupported.
func NewLocationResolver(geocoder providers.GeolocationProvider, timeout time.Duration) *LocationResolver {
	if timeout <= 0 {
		timeout = DefaultLocationTimeout
	}
	return &LocationResolver{geocoder: geocoder, timeout: timeout}
}

var _ providers.LocationResolver = (*LocationResolver)(nil)

// Resolve returns coordinates or a *entities.LocationError
func (r *LocationResolver) Resolve(ctx context.Context, input entities.LocationInput) (entities.Coordinates, error) {
	if input.ErrorCode != 0 {
		return entities.Coordinates{}, &entities.LocationError{Reason: reasonForBrowserCode(input.ErrorCode)}
	}

	if input.Coordinates != nil {
		if !input.Coordinates.Valid() {
			return entities.Coordinates{}, &entities.LocationError{
				Reason: entities.LocationPositionUnavailable,
				Err:    errors.New("coordinates out of range"),
			}
		}
		return *input.Coordinates, nil
	}

	address := strings.TrimSpace(input.Address)
	if address == "" || r.geocoder == nil {
		return entities.Coordinates{}, &entities.LocationError{Reason: entities.LocationUnsupported}
	}

	geoCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	coords, err := r.geocoder.Geocode(geoCtx, address)
	if err != nil {
		reason := entities.LocationPositionUnavailable
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(geoCtx.Err(), context.DeadlineExceeded) {
			reason = entities.LocationTimeout
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("reason", string(reason)).Msg("Address geocoding failed")
		return entities.Coordinates{}, &entities.LocationError{Reason: reason, Err: err}
	}
	if coords == nil || !coords.Valid() {
		return entities.Coordinates{}, &entities.LocationError{Reason: entities.LocationPositionUnavailable}
	}
	return *coords, nil
}

func reasonForBrowserCode(code int) entities.LocationFailureReason {
	switch code {
	case entities.GeoCodePermissionDenied:
		return entities.LocationPermissionDenied
	case entities.GeoCodePositionUnavailable:
		return entities.LocationPositionUnavailable
	case entities.GeoCodeTimeout:
		return entities.LocationTimeout
	default:
		return entities.LocationUnsupported
	}
}
