package ecs

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/brickbreaker/common"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeBrick
	collisionTypeBall
	collisionTypePaddle
)

// ContactKind identifies a recorded collision pair.
type ContactKind int

const (
	ContactBallBrick ContactKind = iota
)

// Contact is one collision pair recorded during a physics step. The brick
// collision pass drains these once per cycle, in begin order.
type Contact struct {
	Kind  ContactKind
	Brick Entity
}

// PhysicsWorld owns the Chipmunk space, the arena walls, and the mapping
// from collision shapes back to ECS entities.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	shapeToEntity map[*cp.Shape]Entity
	brickShapes   map[Entity]*cp.Shape
	contacts      []Contact
	gravity       common.Vec3
}

// NewPhysicsWorld creates a physics world with an arena of the given size.
// The bottom edge is open: a ball that leaves it is a lost ball, detected
// by position in the ball-loss system.
func NewPhysicsWorld(width, height float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		brickShapes:   make(map[Entity]*cp.Shape),
	}
	pw.buildArena(width, height)
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetGravity projects a world gravity vector onto the play plane and
// applies it to the simulation. X is screen-horizontal, Z screen-vertical;
// the vertical Y axis is not simulated in 2D.
func (pw *PhysicsWorld) SetGravity(g common.Vec3) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.gravity = g
	pw.space.SetGravity(cp.Vector{X: g.X, Y: g.Z})
}

// Gravity returns the last applied world gravity vector.
func (pw *PhysicsWorld) Gravity() common.Vec3 {
	if pw == nil {
		return common.Vec3{}
	}
	return pw.gravity
}

// AddBrick registers a static box shape for a brick entity.
func (pw *PhysicsWorld) AddBrick(e Entity, x, y, w, h float64) {
	if pw == nil || pw.space == nil {
		return
	}
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeBrick)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	pw.brickShapes[e] = shape
}

// RemoveBrick despawns a brick's collision shape.
func (pw *PhysicsWorld) RemoveBrick(e Entity) {
	if pw == nil {
		return
	}
	shape, ok := pw.brickShapes[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(shape)
	delete(pw.brickShapes, e)
	delete(pw.shapeToEntity, shape)
}

// AddBall creates a dynamic circle body for the ball.
func (pw *PhysicsWorld) AddBall(e Entity, x, y, radius float64) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeBall)
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return body
}

// AddPaddle creates a kinematic box body for the paddle.
func (pw *PhysicsWorld) AddPaddle(e Entity, x, y, w, h float64) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x + w/2, Y: y + h/2})
	shape := cp.NewBox(body, w, h, 0)
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePaddle)
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return body
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// QueueContact records a collision pair for the next drain. Collision
// handlers call this during a step.
func (pw *PhysicsWorld) QueueContact(c Contact) {
	if pw == nil {
		return
	}
	pw.contacts = append(pw.contacts, c)
}

// DrainContacts returns the recorded contact pairs in begin order and
// clears the buffer.
func (pw *PhysicsWorld) DrainContacts() []Contact {
	if pw == nil || len(pw.contacts) == 0 {
		return nil
	}
	out := pw.contacts
	pw.contacts = nil
	return out
}

func (pw *PhysicsWorld) buildArena(width, height float64) {
	thickness := 1.0
	walls := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range walls {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	brickHandler := pw.space.NewCollisionHandler(collisionTypeBall, collisionTypeBrick)
	brickHandler.UserData = pw
	brickHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		// handler registered as (ball, brick), so the arbiter orders the
		// pair that way
		_, brickShape := arb.Shapes()
		if e, ok := world.shapeToEntity[brickShape]; ok && world.brickShapes[e] == brickShape {
			world.QueueContact(Contact{Kind: ContactBallBrick, Brick: e})
		}
		return true
	}

	pw.handlersReady = true
}
