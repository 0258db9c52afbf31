package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to its Chipmunk body.
type PhysicsBody struct {
	Body   *cp.Body
	Width  float64
	Height float64
	Radius float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
