// Package gallery drives the image lightbox of an artwork page and its
// hand-off to the neighboring artworks at either end.
package gallery

import (
	"unicode/utf8"

	"github.com/weissgruber/website/pkg/models"
)

const (
	LongTextThreshold = 80
	CollapsedLines    = 2
	ThumbnailsAfter   = 4
)

/*
Slide is one image of the lightbox. The main slide carries the artwork
narrative in Text; gallery slides carry their own alt text and credit.
*/
type Slide struct {
	URL         string
	Alt         string
	Title       string
	Name        string
	Text        string
	Credit      string
	IsMain      bool
	HasLongText bool
	HasLongAlt  bool
}

func BuildSlides(artwork models.Artwork) []Slide {
	text := artwork.Text()

	result := []Slide{
		{
			URL:         artwork.MainImageURL,
			Alt:         artwork.TitleFr,
			Title:       artwork.TitleFr,
			Text:        text,
			IsMain:      true,
			HasLongText: IsLongText(text),
		},
	}

	for _, image := range artwork.GalleryImages {
		alt := image.AltText

		if alt == "" {
			alt = image.Name
		}

		if alt == "" {
			alt = artwork.TitleFr
		}

		result = append(result, Slide{
			URL:        image.URL,
			Alt:        alt,
			Name:       image.Name,
			Text:       image.AltText,
			Credit:     image.Credit,
			HasLongAlt: IsLongText(image.AltText),
		})
	}

	return result
}

// IsLongText counts characters, not bytes.
func IsLongText(text string) bool {
	return utf8.RuneCountInString(text) > LongTextThreshold
}

func ShowThumbnails(slides []Slide) bool {
	return len(slides) > ThumbnailsAfter
}
