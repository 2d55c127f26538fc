package mapscene

import (
	"math"

	"github.com/paulmach/orb"
)

var DefaultCenter = orb.Point{2.3522, 48.8566}

const DefaultZoom = 6

type ViewportOptions struct {
	WidthPx   int
	HeightPx  int
	PaddingPx int
	MaxZoom   int
}

func DefaultViewportOptions() ViewportOptions {
	return ViewportOptions{
		WidthPx:   960,
		HeightPx:  600,
		PaddingPx: 40,
		MaxZoom:   18,
	}
}

func (o ViewportOptions) withDefaults() ViewportOptions {
	defaults := DefaultViewportOptions()

	if o.WidthPx <= 0 {
		o.WidthPx = defaults.WidthPx
	}

	if o.HeightPx <= 0 {
		o.HeightPx = defaults.HeightPx
	}

	if o.PaddingPx < 0 {
		o.PaddingPx = 0
	}

	if o.MaxZoom <= 0 {
		o.MaxZoom = defaults.MaxZoom
	}

	return o
}

/*
Viewport is the region the map is fitted to. Bound covers the points
exactly; PaddedBound adds PaddingPx on every side at Zoom.
*/
type Viewport struct {
	Bound       orb.Bound
	PaddedBound orb.Bound
	Center      orb.Point
	Zoom        int
	PaddingPx   int
}

/*
FitViewport picks the highest zoom, up to MaxZoom, at which every point
plus the padding fits inside the map. It returns false when there are
no points to fit.
*/
func FitViewport(points []Point, opts ViewportOptions) (Viewport, bool) {
	if len(points) == 0 {
		return Viewport{}, false
	}

	opts = opts.withDefaults()

	multiPoint := make(orb.MultiPoint, 0, len(points))

	for _, point := range points {
		multiPoint = append(multiPoint, point.Location)
	}

	bound := multiPoint.Bound()
	zoom := 0

	for z := opts.MaxZoom; z >= 0; z-- {
		minPx, maxPx := pixelBound(bound, z)
		width := maxPx.X - minPx.X + 2*float64(opts.PaddingPx)
		height := maxPx.Y - minPx.Y + 2*float64(opts.PaddingPx)

		if width <= float64(opts.WidthPx) && height <= float64(opts.HeightPx) {
			zoom = z
			break
		}
	}

	minPx, maxPx := pixelBound(bound, zoom)
	padding := float64(opts.PaddingPx)

	southWest := unproject(pixel{X: minPx.X - padding, Y: maxPx.Y + padding}, zoom)
	northEast := unproject(pixel{X: maxPx.X + padding, Y: minPx.Y - padding}, zoom)

	center := unproject(pixel{
		X: (minPx.X + maxPx.X) / 2,
		Y: (minPx.Y + maxPx.Y) / 2,
	}, zoom)

	return Viewport{
		Bound: bound,
		PaddedBound: orb.Bound{
			Min: orb.Point{math.Max(southWest.Lon(), -180), southWest.Lat()},
			Max: orb.Point{math.Min(northEast.Lon(), 180), northEast.Lat()},
		},
		Center:    center,
		Zoom:      zoom,
		PaddingPx: opts.PaddingPx,
	}, true
}

// pixelBound returns the top-left and bottom-right pixels of bound. Y grows southward.
func pixelBound(bound orb.Bound, zoom int) (pixel, pixel) {
	topLeft := project(orb.Point{bound.Min.Lon(), bound.Max.Lat()}, zoom)
	bottomRight := project(orb.Point{bound.Max.Lon(), bound.Min.Lat()}, zoom)

	return topLeft, bottomRight
}
