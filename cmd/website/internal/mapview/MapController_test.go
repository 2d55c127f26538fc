package mapview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/weissgruber/website/cmd/website/internal/viewmodels"
	"github.com/weissgruber/website/pkg/filters"
	"github.com/weissgruber/website/pkg/mapscene"
	"github.com/weissgruber/website/pkg/models"
	"github.com/weissgruber/website/pkg/services"
)

type recordingRenderer struct {
	name string
	data any
}

func (r *recordingRenderer) Render(templateName string, data any, w io.Writer) error {
	r.name = templateName
	r.data = data
	_, err := io.WriteString(w, templateName)
	return err
}

func (r *recordingRenderer) RenderString(templateString string, data any, w io.Writer) error {
	return r.Render(templateString, data, w)
}

func newTestController() MapController {
	return newTestControllerWith(nil, []models.Artwork{
		{ID: "A", Year: 1965, Lat: "45.76", Lng: "4.83"},
		{ID: "B", Year: 1972, Lat: "45.7601", Lng: "4.8301"},
		{ID: "C", Year: 1985, Lat: "48.85", Lng: "2.35"},
		{ID: "D", Year: 1990, Lat: "abc", Lng: "2.35"},
	})
}

func newTestControllerWith(renderer *recordingRenderer, artworks []models.Artwork) MapController {
	catalogue := services.NewCatalogueService(services.CatalogueServiceConfig{
		Artworks: artworks,
	})

	config := MapControllerConfig{
		CatalogueService: catalogue,
		ClusterOptions:   mapscene.DefaultClusterOptions(),
		NotFound: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
		ViewportOptions: mapscene.DefaultViewportOptions(),
	}

	if renderer != nil {
		config.Renderer = renderer
	}

	return NewMapController(config)
}

func TestCurrentDecadesPrefersHtmxCurrentURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/map/decades/1960/toggle?decades=1990", nil)
	req.Header.Set("HX-Current-URL", "https://example.com/map?decades=1970,1980")

	assert.Equal(t, []int{1970, 1980}, CurrentDecades(req).Sorted())

	req = httptest.NewRequest(http.MethodGet, "/map/decades/1960/toggle?decades=1990", nil)
	assert.Equal(t, []int{1990}, CurrentDecades(req).Sorted())
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "/map", MapURL(filters.NewDecadeSet()))
	assert.Equal(t, "/map?decades=1960,1980", MapURL(filters.NewDecadeSet(1980, 1960)))
	assert.Equal(t, "/map/decades/1970/toggle?decades=1960", ToggleURL(1970, filters.NewDecadeSet(1960)))
	assert.Equal(t, "/map/popup/A?image=2", PopupURL("A", 2))
}

func TestLegendChips(t *testing.T) {
	legend := []mapscene.LegendEntry{
		{Decade: 1960, Label: "1960s", Color: "#059669"},
		{Decade: 1970, Label: "1970s", Color: "#a855f7"},
	}

	chips := LegendChips(legend, filters.NewDecadeSet(1960))

	require.Len(t, chips, 2)
	assert.True(t, chips[0].Active)
	assert.False(t, chips[1].Active)
	assert.Equal(t, "/map/decades/1970/toggle?decades=1960", chips[1].ToggleURL)
}

func TestToggleDecadeRedirects(t *testing.T) {
	c := newTestController()

	req := httptest.NewRequest(http.MethodGet, "/map/decades/1980/toggle?decades=1960", nil)
	req.SetPathValue("decade", "1980")
	w := httptest.NewRecorder()
	c.ToggleDecade(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/map?decades=1960,1980", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/map/decades/1960/toggle?decades=1960", nil)
	req.SetPathValue("decade", "1960")
	w = httptest.NewRecorder()
	c.ToggleDecade(w, req)

	assert.Equal(t, "/map", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/map/decades/abc/toggle", nil)
	req.SetPathValue("decade", "abc")
	w = httptest.NewRecorder()
	c.ToggleDecade(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleDecadeHtmxUsesCurrentURL(t *testing.T) {
	renderer := &recordingRenderer{}
	c := newTestControllerWith(renderer, []models.Artwork{
		{ID: "A", Year: 1965, Lat: "45.76", Lng: "4.83"},
		{ID: "C", Year: 1985, Lat: "48.85", Lng: "2.35"},
	})

	req := httptest.NewRequest(http.MethodGet, "/map/decades/1980/toggle?decades=1990", nil)
	req.SetPathValue("decade", "1980")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Current-URL", "https://example.com/map?decades=1960")
	w := httptest.NewRecorder()
	c.ToggleDecade(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/map?decades=1960,1980", w.Header().Get("HX-Replace-Url"))
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, "pages/map", renderer.name)

	viewData, ok := renderer.data.(viewmodels.MapPage)
	require.True(t, ok)
	assert.Equal(t, "1960,1980", viewData.Decades)
	assert.True(t, viewData.IsHtmx)
	assert.Equal(t, 2, viewData.VisibleCount)
	assert.Equal(t, "/api/map/clusters?decades=1960,1980", viewData.ClustersURL)
}

func TestSceneAPI(t *testing.T) {
	c := newTestController()

	req := httptest.NewRequest(http.MethodGet, "/api/map/scene?decades=1960,1970", nil)
	w := httptest.NewRecorder()
	c.SceneAPI(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := w.Body.Bytes()
	assert.Equal(t, int64(3), gjson.GetBytes(body, "features.#").Int())
	assert.Equal(t, "A", gjson.GetBytes(body, "features.0.id").String())
	assert.Equal(t, int64(3), gjson.GetBytes(body, "legend.#").Int())
	assert.Equal(t, int64(3), gjson.GetBytes(body, "total").Int())
}

func TestClustersAndSpiderfyAPI(t *testing.T) {
	c := newTestController()

	req := httptest.NewRequest(http.MethodGet, "/api/map/clusters?zoom=6", nil)
	w := httptest.NewRecorder()
	c.ClustersAPI(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.Bytes()
	assert.Equal(t, int64(2), gjson.GetBytes(body, "features.#").Int())
	assert.Equal(t, "cluster:A", gjson.GetBytes(body, "features.0.id").String())
	assert.True(t, gjson.GetBytes(body, "features.0.properties.spiderfy").Bool())

	req = httptest.NewRequest(http.MethodGet, "/api/map/clusters/cluster:A/spiderfy?zoom=6", nil)
	req.SetPathValue("clusterID", "cluster:A")
	w = httptest.NewRecorder()
	c.SpiderfyAPI(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), gjson.GetBytes(w.Body.Bytes(), "features.#").Int())

	req = httptest.NewRequest(http.MethodGet, "/api/map/clusters/cluster:Z/spiderfy?zoom=6", nil)
	req.SetPathValue("clusterID", "cluster:Z")
	w = httptest.NewRecorder()
	c.SpiderfyAPI(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClustersAPIClampsHugeZoom(t *testing.T) {
	c := newTestControllerWith(nil, []models.Artwork{
		{ID: "lyon", Year: 1965, Lat: "45.76", Lng: "4.83"},
		{ID: "brest", Year: 1972, Lat: "48.39", Lng: "-4.49"},
	})

	for _, zoom := range []string{"5", "18", "64", "70"} {
		req := httptest.NewRequest(http.MethodGet, "/api/map/clusters?zoom="+zoom, nil)
		w := httptest.NewRecorder()
		c.ClustersAPI(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.Bytes()
		assert.Equal(t, int64(2), gjson.GetBytes(body, "features.#").Int(), "zoom %s", zoom)
		assert.InDelta(t, 4.83, gjson.GetBytes(body, "features.0.geometry.coordinates.0").Float(), 0.001, "zoom %s", zoom)
	}
}

func TestPopupForUnplaceableArtwork(t *testing.T) {
	c := newTestController()

	for _, id := range []string{"D", "Z"} {
		req := httptest.NewRequest(http.MethodGet, "/map/popup/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		c.Popup(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, id)
	}
}
