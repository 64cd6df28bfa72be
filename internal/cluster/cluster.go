package cluster

import (
	"strings"

	"fleetmap/internal/registry"

	"github.com/golang/geo/r2"
)

// LabelSeparator joins member names in a cluster label. Labels are rendered
// as HTML by the dashboard.
const LabelSeparator = "<br>"

const (
	epsilonIntercept = 0.0662505
	epsilonSlope     = 0.00428175
)

type Cluster struct {
	Seed    registry.Position
	Label   string
	Members []registry.DeviceID
}

func (c Cluster) MemberCount() int {
	return len(c.Members)
}

// Epsilon is the merge radius, in raw degrees, at the given map zoom.
func Epsilon(zoom float64) float64 {
	return epsilonIntercept - epsilonSlope*zoom
}

// Compute groups devices into clusters. Each device joins the first cluster,
// in creation order, whose seed lies strictly closer than Epsilon(zoom) on the
// flat lat/lng plane. Seeds never move, so the result depends on input order.
func Compute(devices []registry.Positioned, zoom float64) []Cluster {
	epsilon := Epsilon(zoom)
	clusters := make([]Cluster, 0)
	for _, device := range devices {
		idx := findCluster(device.Position, clusters, epsilon)
		if idx == -1 {
			clusters = append(clusters, Cluster{
				Seed:    device.Position,
				Label:   device.Name,
				Members: []registry.DeviceID{device.ID},
			})
			continue
		}
		c := &clusters[idx]
		c.Label = strings.Join([]string{c.Label, device.Name}, LabelSeparator)
		c.Members = append(c.Members, device.ID)
	}
	return clusters
}

func findCluster(position registry.Position, clusters []Cluster, epsilon float64) int {
	p := planar(position)
	for i, c := range clusters {
		if p.Sub(planar(c.Seed)).Norm() < epsilon {
			return i
		}
	}
	return -1
}

func planar(position registry.Position) r2.Point {
	return r2.Point{X: position.Longitude, Y: position.Latitude}
}
