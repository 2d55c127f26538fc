package mapscene

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	circleFootSeparation = 25.0
	circleStartAngle     = math.Pi / 6
	minimumLegLength     = 35.0
)

/*
ClusterOptions controls marker grouping. Points closer than RadiusPx
at the current zoom share a cluster. At DisableAtZoom and above every
point is its own marker; zero keeps clustering on at every zoom.
*/
type ClusterOptions struct {
	RadiusPx      float64
	DisableAtZoom int
	MaxZoom       int
}

func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{
		RadiusPx: 80,
		MaxZoom:  18,
	}
}

// ClampZoom bounds zoom to [0, MaxZoom].
func (o ClusterOptions) ClampZoom(zoom int) int {
	return min(max(zoom, 0), o.withDefaults().MaxZoom)
}

func (o ClusterOptions) withDefaults() ClusterOptions {
	defaults := DefaultClusterOptions()

	if o.RadiusPx <= 0 {
		o.RadiusPx = defaults.RadiusPx
	}

	if o.MaxZoom <= 0 {
		o.MaxZoom = defaults.MaxZoom
	}

	return o
}

/*
Cluster is one marker on the map. A single-member cluster is a plain
artwork marker keyed by the artwork id. ExpansionZoom is the first zoom
at which a multi-member cluster splits, or 0 when it never does and
must be spiderfied instead.
*/
type Cluster struct {
	ID            string
	Center        orb.Point
	Members       []Point
	ExpansionZoom int
}

func (c Cluster) IsCluster() bool {
	return len(c.Members) > 1
}

func (c Cluster) Count() int {
	return len(c.Members)
}

func (c Cluster) Spiderfies() bool {
	return c.IsCluster() && c.ExpansionZoom == 0
}

/*
ClusterPoints groups points greedily in input order. Each unassigned
point seeds a cluster and absorbs every later unassigned point within
the radius of it.
*/
func ClusterPoints(points []Point, zoom int, opts ClusterOptions) []Cluster {
	opts = opts.withDefaults()
	zoom = opts.ClampZoom(zoom)
	groups := group(points, zoom, opts)
	result := make([]Cluster, 0, len(groups))

	for _, members := range groups {
		cluster := Cluster{
			ID:      members[0].ID(),
			Center:  centroid(members, zoom),
			Members: members,
		}

		if len(members) > 1 {
			cluster.ID = ClusterID(members[0].ID())
			cluster.ExpansionZoom = expansionZoom(members, zoom, opts)
		}

		result = append(result, cluster)
	}

	return result
}

func ClusterID(firstMemberID string) string {
	return "cluster:" + firstMemberID
}

// FindCluster looks a marker up by its id.
func FindCluster(clusters []Cluster, id string) (Cluster, bool) {
	for _, cluster := range clusters {
		if cluster.ID == id {
			return cluster, true
		}
	}

	return Cluster{}, false
}

func group(points []Point, zoom int, opts ClusterOptions) [][]Point {
	result := [][]Point{}

	if opts.DisableAtZoom > 0 && zoom >= opts.DisableAtZoom {
		for _, point := range points {
			result = append(result, []Point{point})
		}

		return result
	}

	pixels := make([]pixel, len(points))

	for index, point := range points {
		pixels[index] = project(point.Location, zoom)
	}

	assigned := make([]bool, len(points))

	for seed := range points {
		if assigned[seed] {
			continue
		}

		assigned[seed] = true
		members := []Point{points[seed]}

		for candidate := seed + 1; candidate < len(points); candidate++ {
			if assigned[candidate] {
				continue
			}

			if distance(pixels[seed], pixels[candidate]) <= opts.RadiusPx {
				assigned[candidate] = true
				members = append(members, points[candidate])
			}
		}

		result = append(result, members)
	}

	return result
}

func expansionZoom(members []Point, zoom int, opts ClusterOptions) int {
	for z := zoom + 1; z <= opts.MaxZoom; z++ {
		if len(group(members, z, opts)) > 1 {
			return z
		}
	}

	return 0
}

func centroid(members []Point, zoom int) orb.Point {
	var sum pixel

	for _, member := range members {
		p := project(member.Location, zoom)
		sum.X += p.X
		sum.Y += p.Y
	}

	count := float64(len(members))
	return unproject(pixel{X: sum.X / count, Y: sum.Y / count}, zoom)
}

/*
SpiderLeg places one member of a spiderfied cluster on a circle around
the cluster center. OffsetX and OffsetY are in screen pixels.
*/
type SpiderLeg struct {
	Point    Point
	Position orb.Point
	OffsetX  float64
	OffsetY  float64
}

func Spiderfy(cluster Cluster, zoom int) []SpiderLeg {
	count := len(cluster.Members)

	if count == 0 {
		return []SpiderLeg{}
	}

	circumference := circleFootSeparation * float64(2+count)
	legLength := math.Max(circumference/(2*math.Pi), minimumLegLength)
	angleStep := 2 * math.Pi / float64(count)
	center := project(cluster.Center, zoom)

	result := make([]SpiderLeg, 0, count)

	for index, member := range cluster.Members {
		angle := circleStartAngle + float64(index)*angleStep
		offsetX := legLength * math.Cos(angle)
		offsetY := legLength * math.Sin(angle)

		result = append(result, SpiderLeg{
			Point:    member,
			Position: unproject(pixel{X: center.X + offsetX, Y: center.Y + offsetY}, zoom),
			OffsetX:  offsetX,
			OffsetY:  offsetY,
		})
	}

	return result
}
