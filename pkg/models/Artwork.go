package models

import (
	"fmt"
	"strings"
)

var (
	ErrArtworkNotFound = fmt.Errorf("artwork not found")
)

/*
Artwork is one stained-glass installation as described by a single row
of the catalogue source. Records are built once by the loader and never
modified afterwards.
*/
type Artwork struct {
	ID                 string
	Year               int
	YearText           string
	BuildingName       string
	BuildingType       string
	City               string
	Department         string
	LocationInBuilding string
	TitleFr            string
	MainImageRef       string
	MainImageURL       string
	CaptionFr          string
	DescriptionFr      string
	TextFr             string
	GalleryImages      []GalleryImage
	MapsURL            string
	Lat                string
	Lng                string
}

// HasYear reports whether the source year could be parsed.
func (a Artwork) HasYear() bool {
	return a.Year != 0
}

/*
Text returns the narrative text for the artwork. The consolidated text_fr
column wins; older rows fall back to caption_fr followed by description_fr.
*/
func (a Artwork) Text() string {
	if text := strings.TrimSpace(a.TextFr); text != "" {
		return text
	}

	parts := []string{}

	for _, s := range []string{a.CaptionFr, a.DescriptionFr} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, " ")
}

// PhotoCount is the primary image plus every gallery image.
func (a Artwork) PhotoCount() int {
	return 1 + len(a.GalleryImages)
}

// Location is "building, city" with whichever parts are present.
func (a Artwork) Location() string {
	parts := []string{}

	if a.BuildingName != "" {
		parts = append(parts, a.BuildingName)
	}

	if a.City != "" {
		parts = append(parts, a.City)
	}

	return strings.Join(parts, ", ")
}
