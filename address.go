package logiflow

// Coordinates is an optional lat/lng pair on an address.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is an embedded value object; it has no identity of its own.
type Address struct {
	Street       string       `json:"street"`
	Number       string       `json:"number"`
	Complement   string       `json:"complement,omitempty"`
	Neighborhood string       `json:"neighborhood"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zipCode"`
	Country      string       `json:"country"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}
