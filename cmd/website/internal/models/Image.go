package models

type Image struct {
	URL         string
	Alt         string
	Name        string
	Credit      string
	Index       int
	IsCurrent   bool
	GalleryURL  string
	IsMainImage bool
}
