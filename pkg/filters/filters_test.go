package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weissgruber/website/pkg/models"
)

func sampleArtworks() []models.Artwork {
	return []models.Artwork{
		{ID: "a", Year: 1965, YearText: "1965", TitleFr: "Vitrail nord", City: "Lyon", BuildingName: "Église Saint-Jean"},
		{ID: "b", YearText: "", TitleFr: "Sans date", City: "Paris", BuildingName: "Chapelle"},
		{ID: "c", Year: 1958, YearText: "1958", TitleFr: "Rosace", City: "Lyon", BuildingName: "Cathédrale"},
		{ID: "d", Year: 1965, YearText: "1965", TitleFr: "Baie sud", City: "Nancy", BuildingName: "Temple"},
	}
}

func ids(artworks []models.Artwork) []string {
	result := make([]string, 0, len(artworks))

	for _, artwork := range artworks {
		result = append(result, artwork.ID)
	}

	return result
}

func TestSearch(t *testing.T) {
	artworks := sampleArtworks()

	assert.Equal(t, []string{"a", "c"}, ids(Search("lyon", artworks)))
	assert.Equal(t, []string{"a", "c"}, ids(Search("  LYON ", artworks)))
	assert.Equal(t, []string{"c"}, ids(Search("1958", artworks)))
	assert.Equal(t, []string{"b"}, ids(Search("chapelle", artworks)))
	assert.Empty(t, Search("strasbourg", artworks))
}

func TestSearchEmptyQueryIsIdentity(t *testing.T) {
	artworks := sampleArtworks()

	assert.Equal(t, artworks, Search("", artworks))
	assert.Equal(t, artworks, Search("   ", artworks))
}

func TestSearchResultIsSubsetInOrder(t *testing.T) {
	artworks := sampleArtworks()
	result := Search("e", artworks)

	last := -1

	for _, artwork := range result {
		position := -1

		for index, candidate := range artworks {
			if candidate.ID == artwork.ID {
				position = index
			}
		}

		assert.Greater(t, position, last)
		last = position
	}
}

func TestSortByYearDescending(t *testing.T) {
	result := SortByYear(sampleArtworks(), Descending)
	assert.Equal(t, []string{"a", "d", "c", "b"}, ids(result))
}

func TestSortByYearAscending(t *testing.T) {
	result := SortByYear(sampleArtworks(), Ascending)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(result))
}

func TestSortByYearDoesNotModifyInput(t *testing.T) {
	artworks := sampleArtworks()
	_ = SortByYear(artworks, Ascending)

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(artworks))
}

func TestSearchThenSort(t *testing.T) {
	artworks := []models.Artwork{
		{ID: "1", Year: 1965, YearText: "1965", City: "Lyon"},
		{ID: "2", YearText: "", City: "Paris"},
		{ID: "3", Year: 1958, YearText: "1958", City: "Lyon"},
	}

	result := SortByYear(Search("lyon", artworks), Descending)
	assert.Equal(t, []string{"1", "3"}, ids(result))
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, Ascending, ParseSortDirection("asc"))
	assert.Equal(t, Ascending, ParseSortDirection(" ASC "))
	assert.Equal(t, Descending, ParseSortDirection("desc"))
	assert.Equal(t, Descending, ParseSortDirection(""))
	assert.Equal(t, Descending, ParseSortDirection("sideways"))
}

func TestDecadeOf(t *testing.T) {
	assert.Equal(t, 1960, DecadeOf(1965))
	assert.Equal(t, 1960, DecadeOf(1960))
	assert.Equal(t, 1950, DecadeOf(1959))
	assert.Equal(t, 2000, DecadeOf(2009))
}

func TestDecadesPresent(t *testing.T) {
	assert.Equal(t, []int{1950, 1960}, DecadesPresent(sampleArtworks()))
	assert.Empty(t, DecadesPresent(nil))
}

func TestFilterByDecades(t *testing.T) {
	artworks := sampleArtworks()

	assert.Equal(t, artworks, FilterByDecades(NewDecadeSet(), artworks))
	assert.Equal(t, []string{"a", "d"}, ids(FilterByDecades(NewDecadeSet(1960), artworks)))
	assert.Equal(t, []string{"a", "c", "d"}, ids(FilterByDecades(NewDecadeSet(1950, 1960), artworks)))
	assert.Empty(t, FilterByDecades(NewDecadeSet(1990), artworks))
}
