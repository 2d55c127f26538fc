package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	internalmodels "github.com/weissgruber/website/cmd/website/internal/models"
	"github.com/weissgruber/website/cmd/website/internal/viewmodels"
	"github.com/weissgruber/website/pkg/filters"
	"github.com/weissgruber/website/pkg/services"
)

const featuredCount = 6

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	BiographyPage(w http.ResponseWriter, r *http.Request)
	PublicationsPage(w http.ResponseWriter, r *http.Request)
	ExhibitionsPage(w http.ResponseWriter, r *http.Request)
	NotFoundPage(w http.ResponseWriter, r *http.Request)
	ErrorPage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	CatalogueService services.CatalogueServicer
	Renderer         rendering.TemplateRenderer
}

type HomeController struct {
	catalogueService services.CatalogueServicer
	renderer         rendering.TemplateRenderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		catalogueService: config.CatalogueService,
		renderer:         config.Renderer,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	pageName := "pages/home"
	artworks := c.catalogueService.All()

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			PageTitle:          "Jeannette Weiss Gruber",
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		ArtworkCount: len(artworks),
		CityCount:    countCities(artworks),
		Featured:     []internalmodels.ArtworkCard{},
	}

	recent := filters.SortByYear(artworks, filters.Descending)

	if len(recent) > featuredCount {
		recent = recent[:featuredCount]
	}

	viewData.Featured = internalmodels.NewArtworkCards(recent)
	c.renderer.Render(pageName, viewData, w)
}

/*
GET /biography
*/
func (c HomeController) BiographyPage(w http.ResponseWriter, r *http.Request) {
	c.renderStatic("pages/biography", "Biographie", w, r)
}

/*
GET /publications
*/
func (c HomeController) PublicationsPage(w http.ResponseWriter, r *http.Request) {
	c.renderStatic("pages/publications", "Publications", w, r)
}

/*
GET /exhibitions
*/
func (c HomeController) ExhibitionsPage(w http.ResponseWriter, r *http.Request) {
	c.renderStatic("pages/exhibitions", "Expositions", w, r)
}

/*
NotFoundPage answers unknown routes and unknown artwork ids.
*/
func (c HomeController) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	slog.Info("page not found", "method", r.Method, "path", r.URL.Path)

	c.renderError(w, r, viewmodels.ErrorPage{
		BaseViewModel: viewmodels.BaseViewModel{
			PageTitle: "Page introuvable",
			Message:   "La page que vous cherchez n'existe pas ou a été déplacée.",
			IsWarning: true,
			IsHtmx:    httphelpers.IsHtmx(r),
		},
		StatusCode: http.StatusNotFound,
		Heading:    "Page introuvable",
	})
}

/*
ErrorPage is rendered by the recovery middleware after a handler panics.
*/
func (c HomeController) ErrorPage(w http.ResponseWriter, r *http.Request) {
	c.renderError(w, r, viewmodels.ErrorPage{
		BaseViewModel: viewmodels.BaseViewModel{
			PageTitle: "Erreur",
			Message:   "Une erreur inattendue s'est produite. Veuillez réessayer plus tard.",
			IsError:   true,
			IsHtmx:    httphelpers.IsHtmx(r),
		},
		StatusCode: http.StatusInternalServerError,
		Heading:    "Quelque chose s'est mal passé",
	})
}

func (c HomeController) renderStatic(pageName, title string, w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.BaseViewModel{
		PageTitle: title,
		IsHtmx:    httphelpers.IsHtmx(r),
	}

	c.renderer.Render(pageName, viewData, w)
}

func (c HomeController) renderError(w http.ResponseWriter, r *http.Request, viewData viewmodels.ErrorPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(viewData.StatusCode)

	c.renderer.Render("pages/error", viewData, w)
}
