package mapscene

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const tileSize = 256.0

// pixel is a Web Mercator world pixel coordinate at some zoom.
type pixel struct {
	X float64
	Y float64
}

func project(ll orb.Point, zoom int) pixel {
	fraction := maptile.Fraction(ll, maptile.Zoom(zoom))

	return pixel{
		X: fraction.X() * tileSize,
		Y: fraction.Y() * tileSize,
	}
}

func unproject(p pixel, zoom int) orb.Point {
	n := tileSize * math.Exp2(float64(zoom))

	lng := p.X/n*360.0 - 180.0
	lat := math.Atan(math.Sinh(math.Pi*(1-2*p.Y/n))) * 180.0 / math.Pi

	return orb.Point{lng, lat}
}

func distance(a, b pixel) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
