package catalogue

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	internalmodels "github.com/weissgruber/website/cmd/website/internal/models"
	"github.com/weissgruber/website/cmd/website/internal/viewmodels"
	"github.com/weissgruber/website/pkg/filters"
	"github.com/weissgruber/website/pkg/gallery"
	"github.com/weissgruber/website/pkg/mapscene"
	"github.com/weissgruber/website/pkg/models"
	"github.com/weissgruber/website/pkg/services"
)

type CatalogueHandlers interface {
	CataloguePage(w http.ResponseWriter, r *http.Request)
	ArtworkPage(w http.ResponseWriter, r *http.Request)
	GalleryPartial(w http.ResponseWriter, r *http.Request)
	GalleryStep(w http.ResponseWriter, r *http.Request)
	NavigateStep(w http.ResponseWriter, r *http.Request)
}

type CatalogueControllerConfig struct {
	CatalogueService services.CatalogueServicer
	NotFound         http.HandlerFunc
	Renderer         rendering.TemplateRenderer
}

type CatalogueController struct {
	catalogueService services.CatalogueServicer
	notFound         http.HandlerFunc
	renderer         rendering.TemplateRenderer
}

func NewCatalogueController(config CatalogueControllerConfig) CatalogueController {
	return CatalogueController{
		catalogueService: config.CatalogueService,
		notFound:         config.NotFound,
		renderer:         config.Renderer,
	}
}

/*
GET /catalogue
*/
func (c CatalogueController) CataloguePage(w http.ResponseWriter, r *http.Request) {
	query := httphelpers.GetFromRequest[string](r, "q")
	direction := filters.ParseSortDirection(httphelpers.GetFromRequest[string](r, "sort"))

	all := c.catalogueService.All()
	artworks := filters.SortByYear(filters.Search(query, all), direction)

	viewData := viewmodels.CataloguePage{
		BaseViewModel: viewmodels.BaseViewModel{
			PageTitle: "Catalogue raisonné",
			IsHtmx:    httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/catalogue.js"},
			},
		},
		Query:     query,
		Sort:      string(direction),
		Artworks:  internalmodels.NewArtworkCards(artworks),
		Total:     len(all),
		SortLinks: sortLinks(query, direction),
	}

	if len(artworks) == 0 {
		viewData.IsWarning = true
		viewData.Message = "Aucune œuvre ne correspond à votre recherche."
	}

	c.renderer.Render("pages/catalogue", viewData, w)
}

/*
GET /catalogue/{id}
*/
func (c CatalogueController) ArtworkPage(w http.ResponseWriter, r *http.Request) {
	state, _ := galleryState(r)
	c.renderArtwork(w, r, state)
}

/*
GET /catalogue/{id}/gallery
*/
func (c CatalogueController) GalleryPartial(w http.ResponseWriter, r *http.Request) {
	state, _ := galleryState(r)
	state.Open = true

	c.renderArtwork(w, r, state)
}

/*
GET /catalogue/{id}/gallery/{direction}
*/
func (c CatalogueController) GalleryStep(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		artwork   models.Artwork
		neighbors models.Neighbors
	)

	id := httphelpers.GetFromRequest[string](r, "id")
	direction, ok := gallery.ParseDirection(httphelpers.GetFromRequest[string](r, "direction"))

	if !ok {
		httphelpers.WriteText(w, http.StatusBadRequest, "invalid direction")
		return
	}

	if artwork, neighbors, err = c.lookup(id); err != nil {
		c.handleLookupError(w, r, id, err)
		return
	}

	requested, _ := galleryState(r)

	navigator := gallery.NewNavigator(len(gallery.BuildSlides(artwork)), neighbors)
	state := navigator.OpenAt(requested.Index)
	outcome := navigator.Step(state, direction)

	respondToOutcome(w, r, artwork.ID, outcome)
}

/*
GET /catalogue/{id}/navigate/{direction}
*/
func (c CatalogueController) NavigateStep(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		artwork   models.Artwork
		neighbors models.Neighbors
	)

	id := httphelpers.GetFromRequest[string](r, "id")
	direction, ok := gallery.ParseDirection(httphelpers.GetFromRequest[string](r, "direction"))

	if !ok {
		httphelpers.WriteText(w, http.StatusBadRequest, "invalid direction")
		return
	}

	if artwork, neighbors, err = c.lookup(id); err != nil {
		c.handleLookupError(w, r, id, err)
		return
	}

	navigator := gallery.NewNavigator(len(gallery.BuildSlides(artwork)), neighbors)
	respondToOutcome(w, r, artwork.ID, navigator.Step(navigator.Close(), direction))
}

func (c CatalogueController) renderArtwork(w http.ResponseWriter, r *http.Request, state gallery.State) {
	var (
		err       error
		artwork   models.Artwork
		neighbors models.Neighbors
		previous  *models.Artwork
		next      *models.Artwork
	)

	id := httphelpers.GetFromRequest[string](r, "id")

	if artwork, neighbors, err = c.lookup(id); err != nil {
		c.handleLookupError(w, r, id, err)
		return
	}

	if previous, next, err = c.catalogueService.NeighborArtworks(id); err != nil {
		c.handleLookupError(w, r, id, err)
		return
	}

	slides := gallery.BuildSlides(artwork)
	navigator := gallery.NewNavigator(len(slides), neighbors)

	if state.Open {
		captions := state.Captions
		state = navigator.OpenAt(state.Index)
		state.Captions = captions
	}

	viewData := viewmodels.ArtworkPage{
		BaseViewModel: viewmodels.BaseViewModel{
			PageTitle: artwork.TitleFr,
			IsHtmx:    httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/artwork.js"},
			},
		},
		Artwork:         artwork,
		Text:            viewmodels.RichText(artwork.Text()),
		HasLongText:     gallery.IsLongText(artwork.Text()),
		Images:          imageList(artwork.ID, slides, state),
		Lightbox:        buildLightbox(artwork.ID, slides, state),
		NavigatePrevURL: NavigateURL(artwork.ID, gallery.Previous),
		NavigateNextURL: NavigateURL(artwork.ID, gallery.Next),
	}

	if location, ok := mapscene.ParseCoordinates(artwork.Lat, artwork.Lng); ok {
		viewData.MapsURL = mapscene.MapsLink(mapscene.Point{Artwork: artwork, Location: location})
	} else if artwork.MapsURL != "" {
		viewData.MapsURL = artwork.MapsURL
	}

	if previous != nil {
		card := internalmodels.NewArtworkCard(*previous)
		viewData.Previous = &card
		viewData.PreviousURL = card.DetailURL
	}

	if next != nil {
		card := internalmodels.NewArtworkCard(*next)
		viewData.Next = &card
		viewData.NextURL = card.DetailURL
		viewData.PrefetchURL = next.MainImageURL
	}

	c.renderer.Render("pages/artwork", viewData, w)
}

func (c CatalogueController) lookup(id string) (models.Artwork, models.Neighbors, error) {
	var (
		err       error
		artwork   models.Artwork
		neighbors models.Neighbors
	)

	if artwork, err = c.catalogueService.ByID(id); err != nil {
		return artwork, neighbors, err
	}

	if neighbors, err = c.catalogueService.Neighbors(id); err != nil {
		return artwork, neighbors, err
	}

	return artwork, neighbors, nil
}

func (c CatalogueController) handleLookupError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, models.ErrArtworkNotFound) {
		if c.notFound != nil {
			c.notFound(w, r)
			return
		}

		http.NotFound(w, r)
		return
	}

	slog.Error("error looking up artwork", "id", id, "error", err)
	httphelpers.TextInternalServerError(w, "unexpected error")
}

/*
respondToOutcome turns a navigator transition into an HTTP response. A
hand-off to another artwork is a full page navigation, a step inside the
gallery redirects to the gallery at the new index, and a no-op answers
204 to htmx and returns to the current page otherwise.
*/
func respondToOutcome(w http.ResponseWriter, r *http.Request, id string, outcome gallery.Outcome) {
	htmx := httphelpers.IsHtmx(r)

	if outcome.NavigateTo != "" {
		target := internalmodels.DetailURL(outcome.NavigateTo)

		if htmx {
			w.Header().Set("HX-Redirect", target)
			w.WriteHeader(http.StatusOK)
			return
		}

		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if !outcome.Changed {
		if htmx {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		target := internalmodels.DetailURL(id)

		if outcome.State.Open {
			target = GalleryURL(id, outcome.State)
		}

		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, GalleryURL(id, outcome.State), http.StatusSeeOther)
}

/*
galleryState reads ?index, ?main and ?alt. The gallery is open when an
index is given.
*/
func galleryState(r *http.Request) (gallery.State, bool) {
	state := gallery.State{}
	rawIndex := httphelpers.GetFromRequest[string](r, "index")

	if rawIndex != "" {
		index, err := strconv.Atoi(rawIndex)

		if err != nil {
			return state, false
		}

		state.Open = true
		state.Index = index
	}

	state.Captions.MainExpanded = isTruthy(httphelpers.GetFromRequest[string](r, "main"))
	state.Captions.AltExpanded = isTruthy(httphelpers.GetFromRequest[string](r, "alt"))

	return state, true
}

func isTruthy(value string) bool {
	return value == "1" || value == "true"
}

// GalleryURL is the artwork page with its gallery open at state.
func GalleryURL(id string, state gallery.State) string {
	values := url.Values{}
	values.Set("index", strconv.Itoa(state.Index))

	if state.Captions.MainExpanded {
		values.Set("main", "1")
	}

	if state.Captions.AltExpanded {
		values.Set("alt", "1")
	}

	return internalmodels.DetailURL(id) + "?" + values.Encode()
}

func GalleryStepURL(id string, direction gallery.Direction, index int) string {
	return fmt.Sprintf("%s/gallery/%s?index=%d", internalmodels.DetailURL(id), direction, index)
}

func NavigateURL(id string, direction gallery.Direction) string {
	return fmt.Sprintf("%s/navigate/%s", internalmodels.DetailURL(id), direction)
}

func sortLinks(query string, active filters.SortDirection) []viewmodels.SortLink {
	link := func(label string, direction filters.SortDirection) viewmodels.SortLink {
		values := url.Values{}
		values.Set("sort", string(direction))

		if query != "" {
			values.Set("q", query)
		}

		return viewmodels.SortLink{
			Label:    label,
			URL:      "/catalogue?" + values.Encode(),
			IsActive: direction == active,
		}
	}

	return []viewmodels.SortLink{
		link("Plus récentes", filters.Descending),
		link("Plus anciennes", filters.Ascending),
	}
}
