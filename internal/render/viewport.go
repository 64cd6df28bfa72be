package render

import (
	"github.com/paulmach/orb"
)

type Viewport struct {
	surface Surface
}

func NewViewport(surface Surface) *Viewport {
	return &Viewport{surface: surface}
}

// Fit fits and pans the surface to the region covering points. A bounding
// region over zero points is undefined, so an empty set leaves the view
// untouched and Fit reports false.
func (v *Viewport) Fit(points []orb.Point) bool {
	if len(points) == 0 {
		return false
	}
	region := v.surface.ComputeBoundingRegion(points)
	v.surface.FitToRegion(region)
	v.surface.PanToRegion(region)
	return true
}
