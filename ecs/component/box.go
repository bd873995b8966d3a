package component

import "image/color"

// Box is a filled rectangle centered on the transform.
type Box struct {
	Width  float64
	Height float64
	Color  color.Color
}

var BoxComponent = NewComponent[Box]()
