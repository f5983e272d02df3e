package component

import "image/color"

// Circle renders an entity as a filled disc centred on its transform.
type Circle struct {
	Radius float64
	Color  color.RGBA
}

var CircleComponent = NewComponent[Circle]()
