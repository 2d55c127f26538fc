// Package mapscene turns a list of artworks into everything the map page
// draws: projected points, the chronological path, decade colors, the
// fitted viewport, marker clusters, and popup content.
package mapscene

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/weissgruber/website/pkg/filters"
	"github.com/weissgruber/website/pkg/models"
)

/*
Point is an artwork with usable coordinates. Artworks that cannot be
placed on the map never become a Point.
*/
type Point struct {
	Artwork   models.Artwork
	Location  orb.Point
	Decade    int
	HasDecade bool
	Color     string
}

func (p Point) ID() string {
	return p.Artwork.ID
}

func (p Point) Lat() float64 {
	return p.Location.Lat()
}

func (p Point) Lng() float64 {
	return p.Location.Lon()
}

/*
ParseCoordinates parses decimal latitude and longitude strings. Empty,
non-numeric, non-finite and out of range values are rejected.
*/
func ParseCoordinates(lat, lng string) (orb.Point, bool) {
	var (
		err       error
		latitude  float64
		longitude float64
	)

	lat = strings.TrimSpace(lat)
	lng = strings.TrimSpace(lng)

	if lat == "" || lng == "" {
		return orb.Point{}, false
	}

	if latitude, err = strconv.ParseFloat(lat, 64); err != nil {
		return orb.Point{}, false
	}

	if longitude, err = strconv.ParseFloat(lng, 64); err != nil {
		return orb.Point{}, false
	}

	if !isFinite(latitude) || !isFinite(longitude) {
		return orb.Point{}, false
	}

	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return orb.Point{}, false
	}

	return orb.Point{longitude, latitude}, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Project keeps the artworks that can be placed, in input order.
func Project(artworks []models.Artwork) []Point {
	result := []Point{}

	for _, artwork := range artworks {
		location, ok := ParseCoordinates(artwork.Lat, artwork.Lng)

		if !ok {
			continue
		}

		decade, hasDecade := filters.ArtworkDecade(artwork)

		result = append(result, Point{
			Artwork:   artwork,
			Location:  location,
			Decade:    decade,
			HasDecade: hasDecade,
			Color:     ColorForDecade(decade, hasDecade),
		})
	}

	return result
}

/*
ChronologicalPath connects the points ordered by year ascending, unknown
years first. Ties keep their input order. A path needs two vertices, so
fewer than two points yields nil.
*/
func ChronologicalPath(points []Point) orb.LineString {
	if len(points) < 2 {
		return nil
	}

	ordered := slices.Clone(points)

	slices.SortStableFunc(ordered, func(a, b Point) int {
		return cmp.Compare(a.Artwork.Year, b.Artwork.Year)
	})

	result := make(orb.LineString, 0, len(ordered))

	for _, point := range ordered {
		result = append(result, point.Location)
	}

	return result
}

// FilterPoints applies a decade selection to already projected points.
func FilterPoints(selected filters.DecadeSet, points []Point) []Point {
	if selected.IsEmpty() {
		return slices.Clone(points)
	}

	result := []Point{}

	for _, point := range points {
		if point.HasDecade && selected.Contains(point.Decade) {
			result = append(result, point)
		}
	}

	return result
}
