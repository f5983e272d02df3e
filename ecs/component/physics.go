package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Body   *cp.Body
	Radius float64
	Static bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
