package entities

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are within WGS84 bounds
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Clinic is a physical care facility that can receive emergency SMS alerts
type Clinic struct {
	Coordinate Coordinates `json:"coordinate"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone,omitempty"`
}
