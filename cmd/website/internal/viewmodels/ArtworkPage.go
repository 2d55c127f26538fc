package viewmodels

import (
	"html/template"

	internalmodels "github.com/weissgruber/website/cmd/website/internal/models"
	"github.com/weissgruber/website/pkg/gallery"
	"github.com/weissgruber/website/pkg/models"
)

type ArtworkPage struct {
	BaseViewModel
	Artwork         models.Artwork
	Text            template.HTML
	HasLongText     bool
	Images          []internalmodels.Image
	Previous        *internalmodels.ArtworkCard
	Next            *internalmodels.ArtworkCard
	PreviousURL     string
	NextURL         string
	NavigatePrevURL string
	NavigateNextURL string
	PrefetchURL     string
	MapsURL         string
	Lightbox        Lightbox
}

/*
Lightbox is the state of the image gallery overlay. When Open is false
only the trigger markup is rendered.
*/
type Lightbox struct {
	Open           bool
	ArtworkID      string
	Index          int
	Position       int
	Count          int
	Slide          gallery.Slide
	SlideText      template.HTML
	Captions       gallery.CaptionState
	CollapsedLines int
	ShowThumbnails bool
	Thumbnails     []internalmodels.Image
	PreviousURL    string
	NextURL        string
	CloseURL       string
	ToggleMainURL  string
	ToggleAltURL   string
}
