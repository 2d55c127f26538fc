package mapscene

type Basemap struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	TileURL     string `json:"tileUrl"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"maxZoom"`
}

const (
	BasemapStreets   = "streets"
	BasemapSatellite = "satellite"
)

func DefaultBasemaps() []Basemap {
	return []Basemap{
		{
			Key:         BasemapStreets,
			Name:        "Plan",
			TileURL:     "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: "&copy; OpenStreetMap",
			MaxZoom:     19,
		},
		{
			Key:         BasemapSatellite,
			Name:        "Satellite",
			TileURL:     "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
			Attribution: "Tiles &copy; Esri",
			MaxZoom:     18,
		},
	}
}

// ToggleBasemap switches between the two basemaps. Unknown keys go to streets.
func ToggleBasemap(current string) string {
	if current == BasemapStreets {
		return BasemapSatellite
	}

	return BasemapStreets
}
