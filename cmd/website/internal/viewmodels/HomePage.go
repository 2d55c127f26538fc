package viewmodels

import (
	internalmodels "github.com/weissgruber/website/cmd/website/internal/models"
)

type HomePage struct {
	BaseViewModel
	ArtworkCount int
	CityCount    int
	Featured     []internalmodels.ArtworkCard
}
