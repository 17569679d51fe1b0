package domain

// Coordinate is a WGS84 point in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"` // -90..90
	Lng float64 `json:"lng" validate:"lng"` // -180..180
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Location is a named point: a warehouse, a shelter, a village.
type Location struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"lat"`
	Lng  float64 `json:"lng" validate:"lng"`
}

func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lng: l.Lng}
}

// LocationInput is a location as received from a client. Coordinates are
// pointers so that an omitted lat or lng is rejected instead of read as 0.
type LocationInput struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required,lat"`
	Lng  *float64 `json:"lng" validate:"required,lng"`
}

func NewLocationInput(name string, lat, lng float64) LocationInput {
	return LocationInput{Name: name, Lat: &lat, Lng: &lng}
}

// Location must only be called on validated input.
func (l LocationInput) Location() Location {
	var loc Location
	loc.Name = l.Name
	if l.Lat != nil {
		loc.Lat = *l.Lat
	}
	if l.Lng != nil {
		loc.Lng = *l.Lng
	}
	return loc
}
