package component

// CameraCenterRequest asks the camera center system to snap the camera onto
// its target the first frame the target resolves.
type CameraCenterRequest struct{}

var CameraCenterRequestComponent = NewComponent[CameraCenterRequest]()
