package viewmodels

import (
	"github.com/weissgruber/website/pkg/mapscene"
)

type MapPage struct {
	BaseViewModel
	Decades      string
	Legend       []LegendChip
	IsEmpty      bool
	HasFilter    bool
	VisibleCount int
	TotalCount   int
	Basemaps     []mapscene.Basemap
	SceneURL     string
	ClustersURL  string
	ClearURL     string
}

type LegendChip struct {
	Decade    int
	Label     string
	Color     string
	Active    bool
	ToggleURL string
}

type MapPopup struct {
	BaseViewModel
	mapscene.Popup
	ImagePosition    int
	PreviousImageURL string
	NextImageURL     string
}
