package component

import "gonum.org/v1/gonum/spatial/r3"

// Transform is an entity's world placement. Z is depth and is carried but
// never interpreted by the camera follow math.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

func (t *Transform) Position() r3.Vec {
	if t == nil {
		return r3.Vec{}
	}
	return r3.Vec{X: t.X, Y: t.Y, Z: t.Z}
}

func (t *Transform) SetPosition(p r3.Vec) {
	if t == nil {
		return
	}
	t.X, t.Y, t.Z = p.X, p.Y, p.Z
}

var TransformComponent = NewComponent[Transform]()
