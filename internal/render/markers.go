package render

import (
	"context"
	"log/slog"

	"fleetmap/internal/cluster"

	"github.com/paulmach/orb"
)

// Rendered is a cluster together with the surface objects drawn for it.
type Rendered struct {
	Cluster  cluster.Cluster
	Position orb.Point
	Marker   MarkerHandle
	Label    LabelHandle
}

// Markers owns the marker and label overlays of the current redraw cycle.
type Markers struct {
	surface  Surface
	rendered []Rendered
}

func NewMarkers(surface Surface) *Markers {
	return &Markers{surface: surface}
}

// Rebuild releases every object of the previous cycle and draws one marker
// and one label per cluster. Handles are never reused across cycles.
func (m *Markers) Rebuild(ctx context.Context, clusters []cluster.Cluster) {
	m.Clear()

	m.rendered = make([]Rendered, 0, len(clusters))
	for _, c := range clusters {
		position := orb.Point{c.Seed.Longitude, c.Seed.Latitude}
		marker := m.surface.CreateMarker(position)
		label := m.surface.CreateLabelOverlay(marker, c.Label)
		m.rendered = append(m.rendered, Rendered{
			Cluster:  c,
			Position: position,
			Marker:   marker,
			Label:    label,
		})
	}
	slog.DebugContext(ctx, "Markers rebuilt", "clusters", len(m.rendered))
}

func (m *Markers) Clear() {
	for _, r := range m.rendered {
		m.surface.DestroyLabelOverlay(r.Label)
		m.surface.DestroyMarker(r.Marker)
	}
	m.rendered = nil
}

func (m *Markers) Rendered() []Rendered {
	return m.rendered
}

func (m *Markers) Positions() []orb.Point {
	points := make([]orb.Point, 0, len(m.rendered))
	for _, r := range m.rendered {
		points = append(points, r.Position)
	}
	return points
}
