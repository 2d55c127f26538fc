package filters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/weissgruber/website/pkg/models"
)

/*
DecadeSet is the active decade selection of the map. Its string form is
the value of the "decades" query parameter.
*/
type DecadeSet map[int]struct{}

func NewDecadeSet(decades ...int) DecadeSet {
	result := DecadeSet{}

	for _, decade := range decades {
		result[DecadeOf(decade)] = struct{}{}
	}

	return result
}

/*
ParseDecadeSet reads a comma separated list such as "1960,1980". Blank
and non-numeric tokens are ignored and values are bucketed, so "1965"
selects 1960.
*/
func ParseDecadeSet(raw string) DecadeSet {
	result := DecadeSet{}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)

		if token == "" {
			continue
		}

		value, err := strconv.Atoi(token)

		if err != nil {
			continue
		}

		result[DecadeOf(value)] = struct{}{}
	}

	return result
}

// String is the sorted, comma joined form. An empty set is "".
func (s DecadeSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, 0, len(sorted))

	for _, decade := range sorted {
		parts = append(parts, strconv.Itoa(decade))
	}

	return strings.Join(parts, ",")
}

func (s DecadeSet) Sorted() []int {
	result := make([]int, 0, len(s))

	for decade := range s {
		result = append(result, decade)
	}

	slices.Sort(result)
	return result
}

func (s DecadeSet) IsEmpty() bool {
	return len(s) == 0
}

func (s DecadeSet) Contains(decade int) bool {
	_, ok := s[decade]
	return ok
}

// Toggle returns a new set with the membership of decade flipped.
func (s DecadeSet) Toggle(decade int) DecadeSet {
	decade = DecadeOf(decade)
	result := make(DecadeSet, len(s)+1)

	for d := range s {
		result[d] = struct{}{}
	}

	if result.Contains(decade) {
		delete(result, decade)
	} else {
		result[decade] = struct{}{}
	}

	return result
}

/*
Admits reports whether the artwork passes the selection. Everything
passes an empty selection; artworks without a year pass nothing else.
*/
func (s DecadeSet) Admits(artwork models.Artwork) bool {
	if s.IsEmpty() {
		return true
	}

	decade, ok := ArtworkDecade(artwork)

	if !ok {
		return false
	}

	return s.Contains(decade)
}
