package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk2D shape registered for an entity.
type PhysicsBody struct {
	Shape  *cp.Shape
	Width  float64
	Height float64
	Sensor bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
