package mapview

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/paulmach/orb/geojson"
	"github.com/weissgruber/website/cmd/website/internal/viewmodels"
	"github.com/weissgruber/website/pkg/filters"
	"github.com/weissgruber/website/pkg/mapscene"
	"github.com/weissgruber/website/pkg/models"
	"github.com/weissgruber/website/pkg/services"
)

type MapHandlers interface {
	MapPage(w http.ResponseWriter, r *http.Request)
	ToggleDecade(w http.ResponseWriter, r *http.Request)
	Popup(w http.ResponseWriter, r *http.Request)
	SceneAPI(w http.ResponseWriter, r *http.Request)
	ClustersAPI(w http.ResponseWriter, r *http.Request)
	SpiderfyAPI(w http.ResponseWriter, r *http.Request)
}

type MapControllerConfig struct {
	CatalogueService services.CatalogueServicer
	ClusterOptions   mapscene.ClusterOptions
	NotFound         http.HandlerFunc
	Renderer         rendering.TemplateRenderer
	ViewportOptions  mapscene.ViewportOptions
}

type MapController struct {
	catalogueService services.CatalogueServicer
	clusterOptions   mapscene.ClusterOptions
	notFound         http.HandlerFunc
	renderer         rendering.TemplateRenderer
	viewportOptions  mapscene.ViewportOptions
}

func NewMapController(config MapControllerConfig) MapController {
	return MapController{
		catalogueService: config.CatalogueService,
		clusterOptions:   config.ClusterOptions,
		notFound:         config.NotFound,
		renderer:         config.Renderer,
		viewportOptions:  config.ViewportOptions,
	}
}

/*
GET /map
*/
func (c MapController) MapPage(w http.ResponseWriter, r *http.Request) {
	selected := filters.ParseDecadeSet(httphelpers.GetFromRequest[string](r, "decades"))
	c.renderMap(w, r, selected)
}

/*
GET /map/decades/{decade}/toggle
*/
func (c MapController) ToggleDecade(w http.ResponseWriter, r *http.Request) {
	decade, err := strconv.Atoi(httphelpers.GetFromRequest[string](r, "decade"))

	if err != nil {
		httphelpers.WriteText(w, http.StatusBadRequest, "invalid decade")
		return
	}

	selected := CurrentDecades(r).Toggle(decade)
	target := MapURL(selected)

	if !httphelpers.IsHtmx(r) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	w.Header().Set("HX-Replace-Url", target)
	c.renderMap(w, r, selected)
}

/*
GET /map/popup/{id}
*/
func (c MapController) Popup(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		artwork models.Artwork
	)

	id := httphelpers.GetFromRequest[string](r, "id")

	if artwork, err = c.catalogueService.ByID(id); err != nil {
		c.handleLookupError(w, r, id, err)
		return
	}

	points := mapscene.Project([]models.Artwork{artwork})

	if len(points) == 0 {
		c.handleLookupError(w, r, id, models.ErrArtworkNotFound)
		return
	}

	imageIndex, _ := strconv.Atoi(httphelpers.GetFromRequest[string](r, "image"))
	popup := mapscene.NewPopup(points[0], imageIndex)

	viewData := viewmodels.MapPopup{
		BaseViewModel: viewmodels.BaseViewModel{
			PageTitle: artwork.BuildingName,
			IsHtmx:    httphelpers.IsHtmx(r),
		},
		Popup:            popup,
		ImagePosition:    popup.ImageIndex + 1,
		PreviousImageURL: PopupURL(artwork.ID, popup.PrevIndex),
		NextImageURL:     PopupURL(artwork.ID, popup.NextIndex),
	}

	c.renderer.Render("pages/map-popup", viewData, w)
}

/*
GET /api/map/scene
*/
func (c MapController) SceneAPI(w http.ResponseWriter, r *http.Request) {
	scene := c.scene(r)
	body, err := mapscene.SceneJSON(scene)

	if err != nil {
		slog.Error("error encoding map scene", "error", err)
		httphelpers.TextInternalServerError(w, "error encoding map scene")
		return
	}

	writeJSON(w, http.StatusOK, body)
}

/*
GET /api/map/clusters
*/
func (c MapController) ClustersAPI(w http.ResponseWriter, r *http.Request) {
	scene := c.scene(r)
	zoom := c.zoom(r, scene)
	clusters := mapscene.ClusterPoints(scene.Points, zoom, c.clusterOptions)

	writeFeatureCollection(w, mapscene.ClusterFeatureCollection(clusters))
}

/*
GET /api/map/clusters/{clusterID}/spiderfy
*/
func (c MapController) SpiderfyAPI(w http.ResponseWriter, r *http.Request) {
	scene := c.scene(r)
	zoom := c.zoom(r, scene)
	clusterID := httphelpers.GetFromRequest[string](r, "clusterID")

	clusters := mapscene.ClusterPoints(scene.Points, zoom, c.clusterOptions)
	cluster, ok := mapscene.FindCluster(clusters, clusterID)

	if !ok {
		writeJSON(w, http.StatusNotFound, []byte(`{"error":"cluster not found"}`))
		return
	}

	writeFeatureCollection(w, mapscene.SpiderFeatureCollection(cluster, mapscene.Spiderfy(cluster, zoom)))
}

func (c MapController) scene(r *http.Request) mapscene.Scene {
	selected := filters.ParseDecadeSet(httphelpers.GetFromRequest[string](r, "decades"))
	return mapscene.BuildScene(c.catalogueService.All(), selected, c.viewportOptions)
}

/*
zoom falls back to the fitted zoom of the scene when ?zoom is missing or
invalid, and is clamped to the cluster max zoom otherwise.
*/
func (c MapController) zoom(r *http.Request, scene mapscene.Scene) int {
	zoom, err := strconv.Atoi(httphelpers.GetFromRequest[string](r, "zoom"))

	if err != nil || zoom < 0 {
		if scene.HasViewport {
			return scene.Viewport.Zoom
		}

		return mapscene.DefaultZoom
	}

	return c.clusterOptions.ClampZoom(zoom)
}

func (c MapController) renderMap(w http.ResponseWriter, r *http.Request, selected filters.DecadeSet) {
	scene := mapscene.BuildScene(c.catalogueService.All(), selected, c.viewportOptions)

	viewData := viewmodels.MapPage{
		BaseViewModel: viewmodels.BaseViewModel{
			PageTitle: "Carte des vitraux",
			IsHtmx:    httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/map.js"},
			},
		},
		Decades:      selected.String(),
		Legend:       LegendChips(scene.Legend, selected),
		IsEmpty:      scene.IsEmpty(),
		HasFilter:    !selected.IsEmpty(),
		VisibleCount: len(scene.Points),
		TotalCount:   scene.TotalPoints,
		Basemaps:     mapscene.DefaultBasemaps(),
		SceneURL:     APIURL("/api/map/scene", selected),
		ClustersURL:  APIURL("/api/map/clusters", selected),
		ClearURL:     MapURL(filters.NewDecadeSet()),
	}

	if scene.IsEmpty() {
		viewData.IsWarning = true
		viewData.Message = "Aucune œuvre à afficher pour les décennies sélectionnées."
	}

	c.renderer.Render("pages/map", viewData, w)
}

func (c MapController) handleLookupError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, models.ErrArtworkNotFound) {
		if c.notFound != nil {
			c.notFound(w, r)
			return
		}

		http.NotFound(w, r)
		return
	}

	slog.Error("error looking up artwork for map", "id", id, "error", err)
	httphelpers.TextInternalServerError(w, "unexpected error")
}

func writeFeatureCollection(w http.ResponseWriter, fc *geojson.FeatureCollection) {
	body, err := fc.MarshalJSON()

	if err != nil {
		slog.Error("error encoding feature collection", "error", err)
		httphelpers.TextInternalServerError(w, "error encoding features")
		return
	}

	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
