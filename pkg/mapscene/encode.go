package mapscene

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/tidwall/sjson"
)

type viewportPayload struct {
	Bounds    [2][2]float64 `json:"bounds"`
	Padded    [2][2]float64 `json:"paddedBounds"`
	Center    [2]float64    `json:"center"`
	Zoom      int           `json:"zoom"`
	PaddingPx int           `json:"padding"`
}

/*
SceneJSON is the GeoJSON feature collection of the scene with the
viewport, legend, selection and path color added as foreign members.
Bounds and centers are [lat, lng] pairs, the order map clients expect.
When nothing is visible the viewport is null.
*/
func SceneJSON(scene Scene) ([]byte, error) {
	var (
		err  error
		body []byte
	)

	if body, err = scene.FeatureCollection().MarshalJSON(); err != nil {
		return nil, fmt.Errorf("error marshaling scene features: %w", err)
	}

	var viewport any

	if scene.HasViewport {
		viewport = viewportPayload{
			Bounds:    latLngBounds(scene.Viewport.Bound),
			Padded:    latLngBounds(scene.Viewport.PaddedBound),
			Center:    latLng(scene.Viewport.Center),
			Zoom:      scene.Viewport.Zoom,
			PaddingPx: scene.Viewport.PaddingPx,
		}
	}

	members := map[string]any{
		"viewport":    viewport,
		"legend":      scene.Legend,
		"decades":     scene.Selected.Sorted(),
		"empty":       scene.IsEmpty(),
		"total":       scene.TotalPoints,
		"pathColor":   PathColor,
		"defaultView": map[string]any{"center": latLng(DefaultCenter), "zoom": DefaultZoom},
	}

	for _, key := range []string{"viewport", "legend", "decades", "empty", "total", "pathColor", "defaultView"} {
		if body, err = sjson.SetBytes(body, key, members[key]); err != nil {
			return nil, fmt.Errorf("error setting '%s' on scene payload: %w", key, err)
		}
	}

	return body, nil
}

func latLng(p orb.Point) [2]float64 {
	return [2]float64{p.Lat(), p.Lon()}
}

func latLngBounds(b orb.Bound) [2][2]float64 {
	return [2][2]float64{latLng(b.Min), latLng(b.Max)}
}
