package models

// ============================================================
// Outlet Models
// ============================================================

type Outlet struct {
	ID              int64  `json:"id"`
	OutletType      string `json:"outlet_type"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	CountryCode     string `json:"country_code"`
	Voltage         string `json:"voltage"`
	CurrentRating   string `json:"current_rating"`
	Frequency       string `json:"frequency"`
	PlugType        string `json:"plug_type"`
	NaturalImageURL string `json:"natural_image_url"`
	ProductImageURL string `json:"product_image_url"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type Hole struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Diameter float64 `json:"diameter"`
}

type Connector struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// GeometryData: содержимое колонки geometry_data (JSON).
type GeometryData struct {
	Holes     []Hole     `json:"holes,omitempty"`
	Connector *Connector `json:"connector,omitempty"`
	GFCI      bool       `json:"gfci,omitempty"`
}

type Specification struct {
	OutletType     string       `json:"outlet_type"`
	Dimensions     Dimensions   `json:"dimensions"`
	HoleDiameter   *float64     `json:"hole_diameter"`
	HoleSpacing    *float64     `json:"hole_spacing"`
	MountingScrews string       `json:"mounting_screws"`
	GeometryData   GeometryData `json:"geometry_data"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
}

type OutletTypeSummary struct {
	Type string `json:"type"`
	Name string `json:"name"`
}
