package see

import (
	"strings"

	"github.com/robotalks/edgebot/pkg/hal"
	"github.com/robotalks/edgebot/pkg/sim"
)

// VisibleObject is an object which can be visualized.
type VisibleObject interface {
	sim.Object
	sim.Rectangular
	sim.Positionable2D
}

// SensingObject is a robot exposing its edge sensors.
type SensingObject interface {
	VisibleObject
	Sensor(hal.Side) sim.Pos2D
	EdgeDetected(hal.Side) bool
}

// ObjectMapper maps a VisibleObject into shapes.
type ObjectMapper interface {
	MapObject(VisibleObject) []Object
}

// MapObjectFunc is the func form of ObjectMapper.
type MapObjectFunc func(VisibleObject) []Object

// MapObject implements ObjectMapper.
func (f MapObjectFunc) MapObject(obj VisibleObject) []Object {
	return f(obj)
}

// Object is a shape, as a bag of properties.
type Object map[string]interface{}

// Rect is object rect area.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Pos is a position.
type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Message is one update in a batch.
type Message struct {
	Action   string `json:"action"`
	Object   Object `json:"object,omitempty"`
	RemoveID string `json:"id,omitempty"`
}

// Actions
const (
	ActionReset  = "reset"
	ActionObject = "object"
	ActionRemove = "remove"
)

// Properties
const (
	PropID     = "id"
	PropType   = "type"
	PropRect   = "rect"
	PropOrigin = "origin"
	PropRadius = "radius"
	PropRotate = "rotate"
	PropStyle  = "style"
)

// Styles of a sensor marker.
const (
	StyleSurface = "surface"
	StyleEdge    = "edge"
)

// ObjectID converts an object name into a dotted ID.
func ObjectID(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// NewObject creates Object.
func NewObject(typ, id string) Object {
	return Object{PropID: id, PropType: typ}
}

// Rc sets rect.
func (o Object) Rc(rc sim.Rect) Object {
	return o.With(PropRect, &Rect{X: rc.X, Y: rc.Y, W: rc.CX, H: rc.CY})
}

// At sets origin.
func (o Object) At(p sim.Pos2D) Object {
	return o.With(PropOrigin, &Pos{X: p.X, Y: p.Y})
}

// Radius sets radius.
func (o Object) Radius(r float64) Object {
	return o.With(PropRadius, r)
}

// Rotate sets rotation in degrees.
func (o Object) Rotate(deg float64) Object {
	return o.With(PropRotate, deg)
}

// With sets a property.
func (o Object) With(key string, val interface{}) Object {
	o[key] = val
	return o
}

// Body maps an object into a rectangle in its local frame,
// placed at its pose.
func Body(typ string, vo VisibleObject) Object {
	pose := vo.Position2D()
	return NewObject(typ, ObjectID(vo.Name())).
		At(pose.Pos2D).
		Rotate(pose.Orientation.Degrees()).
		Rc(vo.OutlineRect())
}

// MapRobot maps a robot into its body and, when it has sensors,
// one marker per sensor styled by whether it sees an edge.
func MapRobot(vo VisibleObject) []Object {
	objs := []Object{Body("robot", vo)}
	so, ok := vo.(SensingObject)
	if !ok {
		return objs
	}
	for _, side := range hal.Sides {
		style := StyleSurface
		if so.EdgeDetected(side) {
			style = StyleEdge
		}
		objs = append(objs, NewObject("sensor", ObjectID(vo.Name())+".sensor-"+side.String()).
			At(so.Sensor(side)).
			Radius(3).
			With(PropStyle, style))
	}
	return objs
}
