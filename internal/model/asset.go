package model

// Asset represents a building tracked by the system.
type Asset struct {
	ID           string `json:"id" yaml:"id"`
	BuildingName string `json:"building_name" yaml:"building_name"`
	Region       string `json:"region" yaml:"region"`
	City         string `json:"city" yaml:"city"`
	Condition    string `json:"condition" yaml:"condition"`
	Status       string `json:"status" yaml:"status"`
	Area         string `json:"area" yaml:"area"`
	Coordinates  string `json:"coordinates" yaml:"coordinates"`
	Created      string `json:"created" yaml:"created"`
}

// AssetInput is the request body for creating or updating an asset.
// Latitude and Longitude are only read on creation.
type AssetInput struct {
	BuildingName OptionalString `json:"building_name"`
	Region       OptionalString `json:"region"`
	City         OptionalString `json:"city"`
	Condition    OptionalString `json:"condition"`
	Status       OptionalString `json:"status"`
	Area         OptionalString `json:"area"`
	Latitude     OptionalString `json:"latitude"`
	Longitude    OptionalString `json:"longitude"`
}

// FormatCoordinates renders a latitude/longitude pair the way assets store it.
func FormatCoordinates(lat, lon string) string {
	return lat + ", " + lon
}
