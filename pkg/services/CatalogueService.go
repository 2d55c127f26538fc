package services

import (
	"fmt"
	"slices"

	"github.com/weissgruber/website/pkg/models"
)

type CatalogueServicer interface {
	All() []models.Artwork
	ByID(id string) (models.Artwork, error)
	Count() int
	Neighbors(id string) (models.Neighbors, error)
	NeighborArtworks(id string) (previous *models.Artwork, next *models.Artwork, err error)
}

type CatalogueServiceConfig struct {
	Artworks []models.Artwork
}

/*
CatalogueService is a read-only view over the loaded artworks in source
row order. It is built once before any route is served.
*/
type CatalogueService struct {
	artworks []models.Artwork
	index    map[string]int
}

func NewCatalogueService(config CatalogueServiceConfig) CatalogueService {
	artworks := slices.Clone(config.Artworks)
	index := make(map[string]int, len(artworks))

	for position, artwork := range artworks {
		if _, ok := index[artwork.ID]; !ok {
			index[artwork.ID] = position
		}
	}

	return CatalogueService{
		artworks: artworks,
		index:    index,
	}
}

// All returns a new slice in source row order.
func (s CatalogueService) All() []models.Artwork {
	return slices.Clone(s.artworks)
}

func (s CatalogueService) Count() int {
	return len(s.artworks)
}

func (s CatalogueService) ByID(id string) (models.Artwork, error) {
	position, ok := s.index[id]

	if !ok {
		return models.Artwork{}, fmt.Errorf("%w: '%s'", models.ErrArtworkNotFound, id)
	}

	return s.artworks[position], nil
}

func (s CatalogueService) Neighbors(id string) (models.Neighbors, error) {
	result := models.Neighbors{}
	position, ok := s.index[id]

	if !ok {
		return result, fmt.Errorf("%w: '%s'", models.ErrArtworkNotFound, id)
	}

	if position > 0 {
		result.PreviousID = s.artworks[position-1].ID
	}

	if position < len(s.artworks)-1 {
		result.NextID = s.artworks[position+1].ID
	}

	return result, nil
}

func (s CatalogueService) NeighborArtworks(id string) (*models.Artwork, *models.Artwork, error) {
	var (
		previous *models.Artwork
		next     *models.Artwork
	)

	position, ok := s.index[id]

	if !ok {
		return nil, nil, fmt.Errorf("%w: '%s'", models.ErrArtworkNotFound, id)
	}

	if position > 0 {
		p := s.artworks[position-1]
		previous = &p
	}

	if position < len(s.artworks)-1 {
		n := s.artworks[position+1]
		next = &n
	}

	return previous, next, nil
}
