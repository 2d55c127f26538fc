package catalogue

import (
	internalmodels "github.com/weissgruber/website/cmd/website/internal/models"
	"github.com/weissgruber/website/cmd/website/internal/viewmodels"
	"github.com/weissgruber/website/pkg/gallery"
)

func buildLightbox(id string, slides []gallery.Slide, state gallery.State) viewmodels.Lightbox {
	result := viewmodels.Lightbox{
		Open:           state.Open,
		ArtworkID:      id,
		Count:          len(slides),
		CollapsedLines: gallery.CollapsedLines,
		ShowThumbnails: gallery.ShowThumbnails(slides),
		CloseURL:       internalmodels.DetailURL(id),
	}

	if !state.Open || len(slides) == 0 {
		return result
	}

	slide := slides[state.Index]

	result.Index = state.Index
	result.Position = state.Index + 1
	result.Slide = slide
	result.SlideText = viewmodels.RichText(slide.Text)
	result.Captions = state.Captions
	result.PreviousURL = GalleryStepURL(id, gallery.Previous, state.Index)
	result.NextURL = GalleryStepURL(id, gallery.Next, state.Index)
	result.ToggleMainURL = GalleryURL(id, gallery.State{Open: true, Index: state.Index, Captions: state.Captions.ToggleMain()})
	result.ToggleAltURL = GalleryURL(id, gallery.State{Open: true, Index: state.Index, Captions: state.Captions.ToggleAlt()})

	if result.ShowThumbnails {
		result.Thumbnails = imageList(id, slides, state)
	}

	return result
}

/*
imageList links every slide to the gallery opened on it. Switching
slides leaves both captions collapsed.
*/
func imageList(id string, slides []gallery.Slide, state gallery.State) []internalmodels.Image {
	result := make([]internalmodels.Image, 0, len(slides))

	for index, slide := range slides {
		result = append(result, internalmodels.Image{
			URL:         slide.URL,
			Alt:         slide.Alt,
			Name:        slide.Name,
			Credit:      slide.Credit,
			Index:       index,
			IsCurrent:   state.Open && state.Index == index,
			GalleryURL:  GalleryURL(id, gallery.State{Open: true, Index: index}),
			IsMainImage: slide.IsMain,
		})
	}

	return result
}
