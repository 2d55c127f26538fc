// Package filters holds the pure search, sort, and decade transformations
// applied to the catalogue. Every function returns a new slice and leaves
// its input untouched.
package filters

import (
	"cmp"
	"slices"
	"strings"

	"github.com/weissgruber/website/pkg/models"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection defaults to Descending for anything but "asc".
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), string(Ascending)) {
		return Ascending
	}

	return Descending
}

/*
Search keeps artworks whose title, city, building name or year text
contains the lower-cased query. An empty query returns the input as is.
*/
func Search(query string, artworks []models.Artwork) []models.Artwork {
	q := strings.ToLower(strings.TrimSpace(query))

	if q == "" {
		return slices.Clone(artworks)
	}

	result := []models.Artwork{}

	for _, artwork := range artworks {
		if matches(q, artwork) {
			result = append(result, artwork)
		}
	}

	return result
}

func matches(q string, artwork models.Artwork) bool {
	fields := []string{
		artwork.TitleFr,
		artwork.City,
		artwork.BuildingName,
		artwork.YearText,
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	return false
}

/*
SortByYear is a stable sort on year. Unknown years compare as 0, so they
come first ascending and last descending.
*/
func SortByYear(artworks []models.Artwork, direction SortDirection) []models.Artwork {
	result := slices.Clone(artworks)

	slices.SortStableFunc(result, func(a, b models.Artwork) int {
		if direction == Ascending {
			return cmp.Compare(a.Year, b.Year)
		}

		return cmp.Compare(b.Year, a.Year)
	})

	return result
}

// DecadeOf is floor(year / 10) * 10.
func DecadeOf(year int) int {
	if year < 0 && year%10 != 0 {
		return (year/10 - 1) * 10
	}

	return (year / 10) * 10
}

// ArtworkDecade returns false when the artwork has no known year.
func ArtworkDecade(artwork models.Artwork) (int, bool) {
	if !artwork.HasYear() {
		return 0, false
	}

	return DecadeOf(artwork.Year), true
}

// DecadesPresent lists the distinct decades of artworks with a known year, ascending.
func DecadesPresent(artworks []models.Artwork) []int {
	set := NewDecadeSet()

	for _, artwork := range artworks {
		if decade, ok := ArtworkDecade(artwork); ok {
			set[decade] = struct{}{}
		}
	}

	return set.Sorted()
}

/*
FilterByDecades keeps artworks whose decade is selected. An empty
selection means no filter.
*/
func FilterByDecades(selected DecadeSet, artworks []models.Artwork) []models.Artwork {
	if selected.IsEmpty() {
		return slices.Clone(artworks)
	}

	result := []models.Artwork{}

	for _, artwork := range artworks {
		if selected.Admits(artwork) {
			result = append(result, artwork)
		}
	}

	return result
}
