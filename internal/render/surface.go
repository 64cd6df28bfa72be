package render

import (
	"github.com/paulmach/orb"
)

// LoadingText is the status shown while devices are being discovered.
const LoadingText = "Loading."

type MarkerHandle uint64

type LabelHandle uint64

// Surface is the set of map capabilities the marker and viewport logic relies
// on. Points are orb.Point values, i.e. {longitude, latitude}.
type Surface interface {
	CreateMarker(position orb.Point) MarkerHandle
	DestroyMarker(marker MarkerHandle)
	CreateLabelOverlay(marker MarkerHandle, text string) LabelHandle
	DestroyLabelOverlay(label LabelHandle)
	ComputeBoundingRegion(points []orb.Point) orb.Bound
	FitToRegion(region orb.Bound)
	PanToRegion(region orb.Bound)
	Zoom() float64
}
