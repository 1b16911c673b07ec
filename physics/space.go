// Package physics owns the Chipmunk space that instantiated level tiles
// register their colliders in.
package physics

import (
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeSensor
)

const (
	defaultFriction = 0.8
	spaceIterations = 20
)

// Gravity along +y, in cells per second squared.
const Gravity = 30.0

type shapeInfo struct {
	bb     cp.BB
	sensor bool
}

// Space wraps a cp.Space holding static tile boxes.
type Space struct {
	space  *cp.Space
	shapes map[*cp.Shape]shapeInfo
	order  []*cp.Shape
}

// NewSpace creates an empty space.
func NewSpace() *Space {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})
	return &Space{
		space:  space,
		shapes: make(map[*cp.Shape]shapeInfo),
	}
}

// AddBox adds a static axis-aligned box centered on (cx, cy). Sensor boxes
// report overlaps but never collide.
func (s *Space) AddBox(cx, cy, w, h float64, sensor bool) *cp.Shape {
	if s == nil || s.space == nil || w <= 0 || h <= 0 {
		return nil
	}
	bb := cp.BB{L: cx - w/2, B: cy - h/2, R: cx + w/2, T: cy + h/2}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(defaultFriction)
	if sensor {
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}
	s.space.AddShape(shape)

	s.shapes[shape] = shapeInfo{bb: bb, sensor: sensor}
	s.order = append(s.order, shape)
	return shape
}

// Remove takes a shape out of the space. Unknown shapes are ignored.
func (s *Space) Remove(shape *cp.Shape) bool {
	if s == nil || shape == nil {
		return false
	}
	if _, ok := s.shapes[shape]; !ok {
		return false
	}
	s.space.RemoveShape(shape)
	delete(s.shapes, shape)
	for i, sh := range s.order {
		if sh == shape {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// SolidAt reports whether a solid box contains the point.
func (s *Space) SolidAt(x, y float64) bool {
	return s.hit(x, y, false)
}

// SensorAt reports whether a sensor box contains the point.
func (s *Space) SensorAt(x, y float64) bool {
	return s.hit(x, y, true)
}

func (s *Space) hit(x, y float64, sensor bool) bool {
	if s == nil {
		return false
	}
	for _, shape := range s.order {
		info := s.shapes[shape]
		if info.sensor == sensor && contains(info.bb, x, y) {
			return true
		}
	}
	return false
}

func contains(bb cp.BB, x, y float64) bool {
	return bb.L <= x && x <= bb.R && bb.B <= y && y <= bb.T
}

// Shapes returns the registered shapes in insertion order.
func (s *Space) Shapes() []*cp.Shape {
	if s == nil {
		return nil
	}
	return append([]*cp.Shape(nil), s.order...)
}

// Len returns the number of registered shapes.
func (s *Space) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Step advances the simulation.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil || dt <= 0 {
		return
	}
	s.space.Step(dt)
}

// Clear removes every registered shape.
func (s *Space) Clear() {
	if s == nil {
		return
	}
	for _, shape := range s.order {
		s.space.RemoveShape(shape)
	}
	s.shapes = make(map[*cp.Shape]shapeInfo)
	s.order = nil
}
