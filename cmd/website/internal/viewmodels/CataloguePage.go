package viewmodels

import (
	internalmodels "github.com/weissgruber/website/cmd/website/internal/models"
)

type CataloguePage struct {
	BaseViewModel
	Query     string
	Sort      string
	Artworks  []internalmodels.ArtworkCard
	Total     int
	SortLinks []SortLink
}

type SortLink struct {
	Label    string
	URL      string
	IsActive bool
}
