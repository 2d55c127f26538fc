package mapscene

import (
	"slices"
	"strconv"
)

const (
	FallbackColor = "#ef4444"
	PathColor     = "#3b82f6"
)

var decadePalette = map[int]string{
	1950: "#2563eb",
	1960: "#059669",
	1970: "#a855f7",
	1980: "#f59e0b",
	1990: "#dc2626",
	2000: "#0ea5e9",
}

type LegendEntry struct {
	Decade int    `json:"decade"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// ColorForDecade returns FallbackColor for unknown decades and decades outside the palette.
func ColorForDecade(decade int, ok bool) string {
	if !ok {
		return FallbackColor
	}

	if color, found := decadePalette[decade]; found {
		return color
	}

	return FallbackColor
}

func DecadeLabel(decade int) string {
	return strconv.Itoa(decade) + "s"
}

/*
Legend lists the decades present in points, ascending. Points without a
decade are left out.
*/
func Legend(points []Point) []LegendEntry {
	seen := map[int]struct{}{}
	decades := []int{}

	for _, point := range points {
		if !point.HasDecade {
			continue
		}

		if _, ok := seen[point.Decade]; ok {
			continue
		}

		seen[point.Decade] = struct{}{}
		decades = append(decades, point.Decade)
	}

	slices.Sort(decades)
	result := make([]LegendEntry, 0, len(decades))

	for _, decade := range decades {
		result = append(result, LegendEntry{
			Decade: decade,
			Label:  DecadeLabel(decade),
			Color:  ColorForDecade(decade, true),
		})
	}

	return result
}
