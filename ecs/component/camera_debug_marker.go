package component

// CameraDebugMarker is drawn at the look-at point of Camera (ecs.Entity is
// uint64).
type CameraDebugMarker struct {
	Camera uint64
}

var CameraDebugMarkerComponent = NewComponent[CameraDebugMarker]()
