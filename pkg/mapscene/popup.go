package mapscene

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/weissgruber/website/pkg/models"
)

type PopupImage struct {
	URL string
	Alt string
}

/*
Popup is the content shown when a marker is clicked. Images holds the
main image then the gallery images. PrevIndex and NextIndex wrap.
*/
type Popup struct {
	ArtworkID    string
	BuildingName string
	City         string
	Department   string
	YearText     string
	Title        string
	Images       []PopupImage
	ImageIndex   int
	PrevIndex    int
	NextIndex    int
	DetailURL    string
	MapsURL      string
}

func (p Popup) HasImages() bool {
	return len(p.Images) > 0
}

func (p Popup) HasCarousel() bool {
	return len(p.Images) > 1
}

func (p Popup) CurrentImage() PopupImage {
	if len(p.Images) == 0 {
		return PopupImage{}
	}

	return p.Images[p.ImageIndex]
}

func NewPopup(point Point, imageIndex int) Popup {
	artwork := point.Artwork
	images := PopupImages(artwork)
	index := CarouselStep(imageIndex, 0, len(images))

	return Popup{
		ArtworkID:    artwork.ID,
		BuildingName: artwork.BuildingName,
		City:         artwork.City,
		Department:   artwork.Department,
		YearText:     artwork.YearText,
		Title:        artwork.TitleFr,
		Images:       images,
		ImageIndex:   index,
		PrevIndex:    CarouselStep(index, -1, len(images)),
		NextIndex:    CarouselStep(index, 1, len(images)),
		DetailURL:    DetailURL(artwork.ID),
		MapsURL:      MapsLink(point),
	}
}

func PopupImages(artwork models.Artwork) []PopupImage {
	result := []PopupImage{}

	if artwork.MainImageURL != "" {
		result = append(result, PopupImage{URL: artwork.MainImageURL, Alt: artwork.TitleFr})
	}

	for _, image := range artwork.GalleryImages {
		if image.URL == "" {
			continue
		}

		alt := image.AltText

		if alt == "" {
			alt = image.Name
		}

		result = append(result, PopupImage{URL: image.URL, Alt: alt})
	}

	return result
}

/*
CarouselStep moves index by delta, wrapping at both ends. Out of range
starting indexes are wrapped the same way. With no images it is 0.
*/
func CarouselStep(index, delta, count int) int {
	if count <= 0 {
		return 0
	}

	result := (index + delta) % count

	if result < 0 {
		result += count
	}

	return result
}

func DetailURL(id string) string {
	return "/catalogue/" + url.PathEscape(id)
}

// MapsLink prefers the stored link and falls back to a coordinate search.
func MapsLink(point Point) string {
	if point.Artwork.MapsURL != "" {
		return point.Artwork.MapsURL
	}

	return fmt.Sprintf(
		"https://www.google.com/maps/search/?api=1&query=%s,%s",
		strconv.FormatFloat(point.Lat(), 'f', -1, 64),
		strconv.FormatFloat(point.Lng(), 'f', -1, 64),
	)
}
