package component

import "github.com/milk9111/cameraman/follow"

// Camera binds a camera entity to exactly one target through its follow
// state. The target entity id lives in Follow.Target().
type Camera struct {
	TargetName string
	Follow     *follow.State
}

var CameraComponent = NewComponent[Camera]()
