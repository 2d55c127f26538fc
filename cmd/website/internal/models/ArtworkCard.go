package models

import (
	"net/url"

	"github.com/adampresley/adamgokit/slices"
	"github.com/weissgruber/website/pkg/models"
)

/*
ArtworkCard is the short form of an artwork used by the catalogue grid,
the home page and the previous/next links.
*/
type ArtworkCard struct {
	ID         string
	Title      string
	Location   string
	Department string
	YearText   string
	ImageURL   string
	PhotoCount int
	DetailURL  string
}

func NewArtworkCard(artwork models.Artwork) ArtworkCard {
	return ArtworkCard{
		ID:         artwork.ID,
		Title:      artwork.TitleFr,
		Location:   artwork.Location(),
		Department: artwork.Department,
		YearText:   artwork.YearText,
		ImageURL:   artwork.MainImageURL,
		PhotoCount: artwork.PhotoCount(),
		DetailURL:  DetailURL(artwork.ID),
	}
}

func NewArtworkCards(artworks []models.Artwork) []ArtworkCard {
	return slices.Map(artworks, func(input models.Artwork, index int) ArtworkCard {
		return NewArtworkCard(input)
	})
}

func DetailURL(id string) string {
	return "/catalogue/" + url.PathEscape(id)
}
