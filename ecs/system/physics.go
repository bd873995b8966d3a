package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/runner"
)

const (
	collisionTypeDino cp.CollisionType = iota + 1
	collisionTypeSolid
)

// floorNormalThreshold is how closely a contact normal must oppose up to count
// as standing on something.
const floorNormalThreshold = 0.5

// PhysicsSystem keeps a Chipmunk2D space in sync with PhysicsBody components.
// The space has no gravity of its own; dinos integrate gravity in their jump
// state machine and the space only resolves displacement through Mover.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	delta         float64

	entities   map[ecs.Entity]*bodyInfo
	dinoShapes map[*cp.Shape]ecs.Entity

	// per-move contact state, filled by the pre-solve handler
	moving     ecs.Entity
	up         cp.Vector
	onFloor    bool
	floorDepth float64
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(delta float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:      space,
		delta:      delta,
		entities:   make(map[ecs.Entity]*bodyInfo),
		dinoShapes: make(map[*cp.Shape]ecs.Entity),
		up:         runner.Up,
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.syncEntities(w)
}

// Mover returns the movement primitive for e. Each call steps the space by
// the fixed delta with only e in motion.
func (ps *PhysicsSystem) Mover(w *ecs.World, e ecs.Entity) runner.Mover {
	return runner.MoverFunc(func(velocity, up cp.Vector) bool {
		return ps.moveWithVelocity(w, e, velocity, up)
	})
}

func (ps *PhysicsSystem) moveWithVelocity(w *ecs.World, e ecs.Entity, velocity, up cp.Vector) bool {
	info := ps.entities[e]
	if info == nil {
		ps.ensureHandlers()
		ps.syncEntities(w)
		info = ps.entities[e]
	}
	if info == nil || info.static {
		return false
	}

	for other, oi := range ps.entities {
		if other != e && !oi.static {
			oi.body.SetVelocityVector(cp.Vector{})
		}
	}

	ps.moving = e
	ps.up = up
	ps.onFloor = false
	ps.floorDepth = 0

	info.body.SetVelocityVector(velocity)
	ps.space.Step(ps.delta)

	// a grounded dino is not stepped again until it jumps, so separate it now
	if ps.onFloor && ps.floorDepth > 0 {
		info.body.SetPosition(info.body.Position().Add(up.Mult(ps.floorDepth)))
	}
	ps.syncTransform(w, e, info)
	ps.moving = 0
	return ps.onFloor
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	floorHandler := ps.space.NewCollisionHandler(collisionTypeDino, collisionTypeSolid)
	floorHandler.UserData = ps
	floorHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		dinoEntity, dinoIsA := sys.dinoShapes[shapeA]
		if !dinoIsA {
			var okB bool
			dinoEntity, okB = sys.dinoShapes[shapeB]
			if !okB {
				return true
			}
		}
		if dinoEntity != sys.moving {
			return true
		}

		// normal points from the dino into what it touches
		n := arb.Normal()
		if !dinoIsA {
			n = n.Neg()
		}
		if n.Dot(sys.up) < -floorNormalThreshold {
			sys.onFloor = true
			set := arb.ContactPointSet()
			for i := 0; i < set.Count; i++ {
				if depth := -set.Points[i].Distance; depth > sys.floorDepth {
					sys.floorDepth = depth
				}
			}
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		isDino := ecs.Has(w, e, component.DinoTagComponent)
		info := ps.createBodyInfo(transform, bodyComp, isDino)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		if isDino {
			ps.dinoShapes[info.shape] = e
		}

		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		_ = ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp)
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, isDino bool) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		return nil
	}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// infinite moment keeps the body upright
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionTypeSolid)
	if isDino {
		shape.SetCollisionType(collisionTypeDino)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) syncTransform(w *ecs.World, e ecs.Entity, info *bodyInfo) {
	transform, ok := ecs.GetPtr(w, e, component.TransformComponent)
	if !ok {
		return
	}
	pos := info.body.Position()
	transform.X = pos.X
	transform.Y = pos.Y
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		delete(ps.dinoShapes, info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
