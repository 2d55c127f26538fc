package home

import (
	"strings"

	"github.com/weissgruber/website/pkg/models"
)

func countCities(artworks []models.Artwork) int {
	cities := map[string]struct{}{}

	for _, artwork := range artworks {
		if city := strings.ToLower(strings.TrimSpace(artwork.City)); city != "" {
			cities[city] = struct{}{}
		}
	}

	return len(cities)
}
