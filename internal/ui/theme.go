package ui

import "image/color"

// Marker radii are rendering-only; they have no effect on hit testing or
// the subdivision itself.
const (
	markerOuterR = 7
	markerInnerR = 3
)

var (
	colBackground = color.RGBA{18, 18, 18, 255}
	colContext    = color.RGBA{60, 60, 60, 255}
	colCurve      = color.RGBA{40, 200, 40, 255}
	colMarker     = color.RGBA{200, 40, 40, 255}
	colMarkerCore = color.RGBA{30, 30, 30, 255}
)
