package repository

import "outlet-forge/internal/catalog/models"

// ============================================================
// Seed data
// ============================================================

func placeholder(bg, fg, text string) string {
	return "https://via.placeholder.com/400x300/" + bg + "/" + fg + "?text=" + text
}

func ptr(v float64) *float64 { return &v }

var seedOutlets = []models.Outlet{
	{OutletType: "NEMA_5-15R", Name: "NEMA 5-15R Standard Socket", Description: "Standard US household wall socket", CountryCode: "US", Voltage: "120V", CurrentRating: "15A", Frequency: "60Hz", PlugType: "Type A/B",
		NaturalImageURL: placeholder("ffffff", "333333", "US+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "NEMA+5-15R+Socket")},
	{OutletType: "BS_1363", Name: "BS 1363 UK Socket", Description: "Standard UK three-pin wall socket", CountryCode: "UK", Voltage: "230V", CurrentRating: "13A", Frequency: "50Hz", PlugType: "Type G",
		NaturalImageURL: placeholder("ffffff", "333333", "UK+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "BS+1363+Socket")},
	{OutletType: "CEE_7/4", Name: "CEE 7/4 Schuko Socket", Description: "European Schuko wall socket", CountryCode: "EU", Voltage: "230V", CurrentRating: "16A", Frequency: "50Hz", PlugType: "Type F",
		NaturalImageURL: placeholder("ffffff", "333333", "EU+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "Schuko+Socket")},
	{OutletType: "AS_3112", Name: "AS 3112 Australian Socket", Description: "Standard Australian wall socket", CountryCode: "AU", Voltage: "230V", CurrentRating: "10A", Frequency: "50Hz", PlugType: "Type I",
		NaturalImageURL: placeholder("ffffff", "333333", "AU+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "AS+3112+Socket")},
	{OutletType: "JIS_C_8303", Name: "JIS C 8303 Japanese Socket", Description: "Standard Japanese wall socket", CountryCode: "JP", Voltage: "100V", CurrentRating: "15A", Frequency: "50/60Hz", PlugType: "Type A/B",
		NaturalImageURL: placeholder("ffffff", "333333", "JP+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "JIS+C+8303+Socket")},
	{OutletType: "GFCI", Name: "GFCI Protected Socket", Description: "US GFCI safety wall socket", CountryCode: "US", Voltage: "120V", CurrentRating: "15A", Frequency: "60Hz", PlugType: "Type A/B",
		NaturalImageURL: placeholder("ffffff", "333333", "GFCI+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "GFCI+Socket")},
	{OutletType: "USB_A", Name: "USB-A Socket", Description: "USB Type-A charging wall socket", CountryCode: "Universal", Voltage: "5V", CurrentRating: "2.4A", Frequency: "DC", PlugType: "USB-A",
		NaturalImageURL: placeholder("ffffff", "333333", "USB-A+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "USB-A+Socket")},
	{OutletType: "USB_C", Name: "USB-C Socket", Description: "USB Type-C charging wall socket", CountryCode: "Universal", Voltage: "5V", CurrentRating: "3A", Frequency: "DC", PlugType: "USB-C",
		NaturalImageURL: placeholder("ffffff", "333333", "USB-C+Socket+Installation"), ProductImageURL: placeholder("f8f9fa", "495057", "USB-C+Socket")},
}

var seedSpecs = []models.Specification{
	{OutletType: "NEMA_5-15R", Dimensions: models.Dimensions{Width: 114.3, Height: 69.9, Depth: 44.5}, HoleDiameter: ptr(6.35), HoleSpacing: ptr(12.7), MountingScrews: "M3.5x32mm",
		GeometryData: models.GeometryData{Holes: []models.Hole{{X: 0, Y: 10, Diameter: 6.35}, {X: 0, Y: -10, Diameter: 6.35}}}},
	{OutletType: "BS_1363", Dimensions: models.Dimensions{Width: 86, Height: 86, Depth: 47}, HoleDiameter: ptr(8), HoleSpacing: ptr(22), MountingScrews: "M4x35mm",
		GeometryData: models.GeometryData{Holes: []models.Hole{{X: -11, Y: 11, Diameter: 8}, {X: 11, Y: 11, Diameter: 8}}}},
	{OutletType: "CEE_7/4", Dimensions: models.Dimensions{Width: 84, Height: 84, Depth: 55}, HoleDiameter: ptr(4.8), HoleSpacing: ptr(19), MountingScrews: "M4x40mm",
		GeometryData: models.GeometryData{Holes: []models.Hole{{X: -9.5, Y: 0, Diameter: 4.8}, {X: 9.5, Y: 0, Diameter: 4.8}}}},
	{OutletType: "AS_3112", Dimensions: models.Dimensions{Width: 80, Height: 110, Depth: 55}, HoleDiameter: ptr(8), HoleSpacing: ptr(32), MountingScrews: "M4x40mm",
		GeometryData: models.GeometryData{Holes: []models.Hole{{X: 0, Y: 16, Diameter: 8}, {X: -16, Y: -16, Diameter: 8}, {X: 16, Y: -16, Diameter: 8}}}},
	{OutletType: "JIS_C_8303", Dimensions: models.Dimensions{Width: 77, Height: 52, Depth: 42}, HoleDiameter: ptr(6.35), HoleSpacing: ptr(12.7), MountingScrews: "M3.5x32mm",
		GeometryData: models.GeometryData{Holes: []models.Hole{{X: 0, Y: 6.35, Diameter: 6.35}, {X: 0, Y: -6.35, Diameter: 6.35}}}},
	{OutletType: "GFCI", Dimensions: models.Dimensions{Width: 114.3, Height: 95, Depth: 55}, HoleDiameter: ptr(6.35), HoleSpacing: ptr(12.7), MountingScrews: "M3.5x40mm",
		GeometryData: models.GeometryData{Holes: []models.Hole{{X: 0, Y: 10, Diameter: 6.35}, {X: 0, Y: -10, Diameter: 6.35}}, GFCI: true}},
	{OutletType: "USB_A", Dimensions: models.Dimensions{Width: 69, Height: 15, Depth: 12}, MountingScrews: "M2.5x20mm",
		GeometryData: models.GeometryData{Connector: &models.Connector{Width: 12, Height: 4.5, Depth: 14}}},
	{OutletType: "USB_C", Dimensions: models.Dimensions{Width: 69, Height: 15, Depth: 12}, MountingScrews: "M2.5x20mm",
		GeometryData: models.GeometryData{Connector: &models.Connector{Width: 8.5, Height: 2.6, Depth: 14}}},
}
