package catalogue

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weissgruber/website/pkg/gallery"
	"github.com/weissgruber/website/pkg/models"
	"github.com/weissgruber/website/pkg/services"
)

func newTestController() CatalogueController {
	catalogue := services.NewCatalogueService(services.CatalogueServiceConfig{
		Artworks: []models.Artwork{
			{ID: "A", MainImageURL: "a.jpg", GalleryImages: []models.GalleryImage{{URL: "a1.jpg"}}},
			{ID: "B", MainImageURL: "b.jpg"},
		},
	})

	return NewCatalogueController(CatalogueControllerConfig{
		CatalogueService: catalogue,
		NotFound: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	})
}

func stepRequest(handler http.HandlerFunc, id, direction, query string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/catalogue/"+id+"/step?"+query, nil)
	req.SetPathValue("id", id)
	req.SetPathValue("direction", direction)

	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestGalleryStepWithinGallery(t *testing.T) {
	c := newTestController()
	w := stepRequest(c.GalleryStep, "A", "next", "index=0", false)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalogue/A?index=1", w.Header().Get("Location"))
}

func TestGalleryStepPastLastImageGoesToNextArtwork(t *testing.T) {
	c := newTestController()

	w := stepRequest(c.GalleryStep, "A", "next", "index=1", false)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalogue/B", w.Header().Get("Location"))

	w = stepRequest(c.GalleryStep, "A", "next", "index=1", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/catalogue/B", w.Header().Get("HX-Redirect"))
}

func TestGalleryStepAtCatalogueBoundaryIsNoop(t *testing.T) {
	c := newTestController()

	w := stepRequest(c.GalleryStep, "A", "prev", "index=0", true)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("HX-Redirect"))

	w = stepRequest(c.GalleryStep, "B", "next", "index=0", false)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalogue/B?index=0", w.Header().Get("Location"))
}

func TestGalleryStepErrors(t *testing.T) {
	c := newTestController()

	assert.Equal(t, http.StatusNotFound, stepRequest(c.GalleryStep, "Z", "next", "index=0", false).Code)
	assert.Equal(t, http.StatusBadRequest, stepRequest(c.GalleryStep, "A", "sideways", "", false).Code)
}

func TestNavigateStep(t *testing.T) {
	c := newTestController()

	w := stepRequest(c.NavigateStep, "A", "next", "", false)
	assert.Equal(t, "/catalogue/B", w.Header().Get("Location"))

	w = stepRequest(c.NavigateStep, "A", "prev", "", false)
	assert.Equal(t, "/catalogue/A", w.Header().Get("Location"))

	w = stepRequest(c.NavigateStep, "B", "prev", "", true)
	assert.Equal(t, "/catalogue/A", w.Header().Get("HX-Redirect"))
}

func TestGalleryURL(t *testing.T) {
	assert.Equal(t, "/catalogue/A?index=2", GalleryURL("A", gallery.State{Open: true, Index: 2}))
	assert.Equal(t, "/catalogue/A?alt=1&index=0&main=1", GalleryURL("A", gallery.State{
		Open:     true,
		Captions: gallery.CaptionState{MainExpanded: true, AltExpanded: true},
	}))
	assert.Equal(t, "/catalogue/A%2FB?index=0", GalleryURL("A/B", gallery.State{Open: true}))
}

func TestNavigateURL(t *testing.T) {
	assert.Equal(t, "/catalogue/A/navigate/prev", NavigateURL("A", gallery.Previous))
	assert.Equal(t, "/catalogue/A/navigate/next", NavigateURL("A", gallery.Next))
	assert.Equal(t, "/catalogue/A%2FB%3F1/navigate/next", NavigateURL("A/B?1", gallery.Next))
}

func TestBuildLightbox(t *testing.T) {
	slides := gallery.BuildSlides(models.Artwork{
		ID:            "A",
		MainImageURL:  "a.jpg",
		GalleryImages: []models.GalleryImage{{URL: "a1.jpg"}, {URL: "a2.jpg"}, {URL: "a3.jpg"}, {URL: "a4.jpg"}},
	})

	closed := buildLightbox("A", slides, gallery.State{})
	assert.False(t, closed.Open)
	assert.True(t, closed.ShowThumbnails)
	assert.Empty(t, closed.Thumbnails)

	open := buildLightbox("A", slides, gallery.State{Open: true, Index: 1, Captions: gallery.CaptionState{MainExpanded: true}})
	assert.Equal(t, 2, open.Position)
	assert.Equal(t, 5, open.Count)
	assert.Equal(t, "a1.jpg", open.Slide.URL)
	assert.Equal(t, "/catalogue/A/gallery/prev?index=1", open.PreviousURL)
	assert.Equal(t, "/catalogue/A/gallery/next?index=1", open.NextURL)
	assert.Equal(t, "/catalogue/A?index=1", open.ToggleMainURL)
	assert.Equal(t, "/catalogue/A?alt=1&index=1&main=1", open.ToggleAltURL)
	assert.Len(t, open.Thumbnails, 5)
	assert.True(t, open.Thumbnails[1].IsCurrent)
}

func TestArtworkPageUnknownID(t *testing.T) {
	c := newTestController()

	req := httptest.NewRequest(http.MethodGet, "/catalogue/Z", nil)
	req.SetPathValue("id", "Z")
	w := httptest.NewRecorder()
	c.ArtworkPage(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
