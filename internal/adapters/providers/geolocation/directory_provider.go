package geolocation

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
)

// DefaultClinicRadiusKm bounds which directory clinics count as nearby
const DefaultClinicRadiusKm = 50.0

var defaultClinics = []entities.Clinic{
	{Name: "Dakar Medical Center", Coordinate: entities.Coordinates{Latitude: 14.7167, Longitude: -17.4677}, Phone: "+221338230000"},
	{Name: "Hopital Principal de Dakar", Coordinate: entities.Coordinates{Latitude: 14.6928, Longitude: -17.4467}, Phone: "+221338395050"},
	{Name: "Centre Hospitalier National de Fann", Coordinate: entities.Coordinates{Latitude: 14.6899, Longitude: -17.4636}, Phone: "+221338691818"},
	{Name: "Hopital Regional de Thies", Coordinate: entities.Coordinates{Latitude: 14.7886, Longitude: -16.9260}, Phone: "+221339511470"},
	{Name: "Hopital Regional de Saint-Louis", Coordinate: entities.Coordinates{Latitude: 16.0244, Longitude: -16.5015}, Phone: "+221339611027"},
	{Name: "Hopital Matlaboul Fawzaini de Touba", Coordinate: entities.Coordinates{Latitude: 14.8628, Longitude: -15.8761}, Phone: "+221339785171"},
	{Name: "Hopital Regional de Ziguinchor", Coordinate: entities.Coordinates{Latitude: 12.5681, Longitude: -16.2733}, Phone: "+221339911154"},
}

var cityCoordinates = map[string]entities.Coordinates{
	"dakar":       {Latitude: 14.7167, Longitude: -17.4677},
	"pikine":      {Latitude: 14.7550, Longitude: -17.3900},
	"rufisque":    {Latitude: 14.7158, Longitude: -17.2736},
	"thies":       {Latitude: 14.7910, Longitude: -16.9359},
	"saint-louis": {Latitude: 16.0179, Longitude: -16.4896},
	"touba":       {Latitude: 14.8500, Longitude: -15.8833},
	"kaolack":     {Latitude: 14.1652, Longitude: -16.0758},
	"ziguinchor":  {Latitude: 12.5833, Longitude: -16.2719},
	"mbour":       {Latitude: 14.4200, Longitude: -16.9700},
}

// DirectoryProvider is the built-in clinic directory. It also geocodes
// Senegalese city names without a network call.
type DirectoryProvider struct {
	clinics  []entities.Clinic
	radiusKm float64
}

// NewDirectoryProvider creates a directory over the seeded Senegal clinics
func NewDirectoryProvider() *DirectoryProvider {
	return NewDirectoryProviderWithClinics(defaultClinics, DefaultClinicRadiusKm)
}

// NewDirectoryProviderWithClinics creates a directory over the given clinics
func NewDirectoryProviderWithClinics(clinics []entities.Clinic, radiusKm float64) *DirectoryProvider {
	if radiusKm <= 0 {
		radiusKm = DefaultClinicRadiusKm
	}
	return &DirectoryProvider{clinics: clinics, radiusKm: radiusKm}
}

var (
	_ providers.GeolocationProvider = (*DirectoryProvider)(nil)
	_ providers.ClinicLocator       = (*DirectoryProvider)(nil)
)

// Geocode matches a known city name inside the address
func (d *DirectoryProvider) Geocode(ctx context.Context, address string) (*entities.Coordinates, error) {
	normalized := strings.ToLower(foldAccents(address))

	// Longest names first so "saint-louis" wins over shorter substrings.
	names := make([]string, 0, len(cityCoordinates))
	for name := range cityCoordinates {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		if strings.Contains(normalized, name) {
			coords := cityCoordinates[name]
			return &coords, nil
		}
	}
	return nil, providers.ErrNoGeocodeResult
}

// GetNearbyClinics returns clinics within the directory radius, nearest first
func (d *DirectoryProvider) GetNearbyClinics(ctx context.Context, at entities.Coordinates) ([]entities.Clinic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type ranked struct {
		clinic   entities.Clinic
		distance float64
	}
	var candidates []ranked
	for _, clinic := range d.clinics {
		dist := CalculateDistance(at, clinic.Coordinate)
		if dist <= d.radiusKm {
			candidates = append(candidates, ranked{clinic: clinic, distance: dist})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	clinics := make([]entities.Clinic, 0, len(candidates))
	for _, c := range candidates {
		clinics = append(clinics, c.clinic)
	}
	return clinics, nil
}

// CalculateDistance calculates the distance in km between two points using the Haversine formula
func CalculateDistance(from, to entities.Coordinates) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := toRadians(from.Latitude)
	lat2Rad := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

var accentReplacer = strings.NewReplacer(
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"È", "E", "É", "E",
	"à", "a", "â", "a", "î", "i", "ï", "i", "ô", "o", "ù", "u", "û", "u", "ç", "c",
)

func foldAccents(s string) string {
	return accentReplacer.Replace(s)
}
