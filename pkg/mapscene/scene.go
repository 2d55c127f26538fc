package mapscene

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/weissgruber/website/pkg/filters"
	"github.com/weissgruber/website/pkg/models"
)

/*
Scene is the full state of the map for one decade selection. Legend is
built from every placeable artwork so that chips for hidden decades stay
clickable.
*/
type Scene struct {
	Points      []Point
	Path        orb.LineString
	Viewport    Viewport
	HasViewport bool
	Legend      []LegendEntry
	Selected    filters.DecadeSet
	TotalPoints int
}

func (s Scene) IsEmpty() bool {
	return len(s.Points) == 0
}

func (s Scene) HasPath() bool {
	return len(s.Path) >= 2
}

func BuildScene(artworks []models.Artwork, selected filters.DecadeSet, opts ViewportOptions) Scene {
	if selected == nil {
		selected = filters.NewDecadeSet()
	}

	all := Project(artworks)
	visible := FilterPoints(selected, all)
	viewport, hasViewport := FitViewport(visible, opts)

	return Scene{
		Points:      visible,
		Path:        ChronologicalPath(visible),
		Viewport:    viewport,
		HasViewport: hasViewport,
		Legend:      Legend(all),
		Selected:    selected,
		TotalPoints: len(all),
	}
}

// PointByID finds a visible point.
func (s Scene) PointByID(id string) (Point, bool) {
	for _, point := range s.Points {
		if point.ID() == id {
			return point, true
		}
	}

	return Point{}, false
}

/*
FeatureCollection has one Point feature per visible artwork, keyed by
artwork id, and a LineString feature for the path when there is one.
*/
func (s Scene) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, point := range s.Points {
		fc.Append(pointFeature(point))
	}

	if s.HasPath() {
		feature := geojson.NewFeature(s.Path)
		feature.ID = "path"
		feature.Properties["kind"] = "path"
		feature.Properties["color"] = PathColor
		fc.Append(feature)
	}

	return fc
}

func pointFeature(point Point) *geojson.Feature {
	feature := geojson.NewFeature(point.Location)
	feature.ID = point.ID()
	feature.Properties["kind"] = "artwork"
	feature.Properties["id"] = point.ID()
	feature.Properties["title"] = point.Artwork.TitleFr
	feature.Properties["buildingName"] = point.Artwork.BuildingName
	feature.Properties["city"] = point.Artwork.City
	feature.Properties["year"] = point.Artwork.YearText
	feature.Properties["color"] = point.Color

	if point.HasDecade {
		feature.Properties["decade"] = point.Decade
	}

	return feature
}

/*
ClusterFeatureCollection renders markers for one zoom. Cluster features
carry the member count and expansion zoom; single markers look like the
artwork features of FeatureCollection.
*/
func ClusterFeatureCollection(clusters []Cluster) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, cluster := range clusters {
		if !cluster.IsCluster() {
			feature := pointFeature(cluster.Members[0])
			feature.Geometry = cluster.Center
			fc.Append(feature)
			continue
		}

		memberIDs := make([]string, 0, len(cluster.Members))

		for _, member := range cluster.Members {
			memberIDs = append(memberIDs, member.ID())
		}

		feature := geojson.NewFeature(cluster.Center)
		feature.ID = cluster.ID
		feature.Properties["kind"] = "cluster"
		feature.Properties["id"] = cluster.ID
		feature.Properties["count"] = cluster.Count()
		feature.Properties["label"] = fmt.Sprintf("%d", cluster.Count())
		feature.Properties["expansionZoom"] = cluster.ExpansionZoom
		feature.Properties["spiderfy"] = cluster.Spiderfies()
		feature.Properties["members"] = memberIDs
		fc.Append(feature)
	}

	return fc
}

// SpiderFeatureCollection has one feature per leg foot, keyed by artwork id.
func SpiderFeatureCollection(cluster Cluster, legs []SpiderLeg) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, leg := range legs {
		feature := pointFeature(leg.Point)
		feature.Geometry = leg.Position
		feature.Properties["cluster"] = cluster.ID
		feature.Properties["leg"] = orb.LineString{cluster.Center, leg.Position}
		fc.Append(feature)
	}

	return fc
}
