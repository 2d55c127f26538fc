package models

// GalleryImage is a secondary photo attached to an Artwork.
type GalleryImage struct {
	Ref     string
	URL     string
	Name    string
	AltText string
	Credit  string
}
