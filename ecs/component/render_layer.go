package component

// RenderLayer orders drawing; lower indices are drawn first and entities
// without one draw on layer 0.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
