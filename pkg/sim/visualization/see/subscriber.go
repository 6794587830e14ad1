// Package see streams the simulated table and robot as JSON batches
// for the github.com/robotalks/see visualizer.
package see

import (
	"encoding/json"
	"sort"

	"github.com/golang/glog"

	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/sim"
)

// Adapter collects object changes and writes one batch per
// iteration, one JSON array per line.
type Adapter struct {
	Config *Config
	Mapper ObjectMapper

	started bool
	changed map[string]sim.Object
	removed map[string]bool
}

// NewAdapter creates the adapter.
func NewAdapter(config *Config) *Adapter {
	return &Adapter{
		Config:  config,
		Mapper:  MapObjectFunc(MapRobot),
		changed: make(map[string]sim.Object),
		removed: make(map[string]bool),
	}
}

// Subscribe is a helper to subscribe object changes.
func (a *Adapter) Subscribe(sub sim.ObjectsChangeSubscriber) *Adapter {
	sub.SubscribeObjectsChange(a)
	return a
}

// ObjectsChanged implements ObjectsChangeListener.
func (a *Adapter) ObjectsChanged(cc fx.ControlContext, objs ...sim.Object) {
	for _, obj := range objs {
		a.changed[obj.Name()] = obj
		delete(a.removed, obj.Name())
	}
}

// ObjectsRemoved implements ObjectsChangeListener.
func (a *Adapter) ObjectsRemoved(cc fx.ControlContext, objs ...sim.Object) {
	for _, obj := range objs {
		a.removed[obj.Name()] = true
		delete(a.changed, obj.Name())
	}
}

// AddToLoop implements LoopAdder.
func (a *Adapter) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(a.ReportChanges))
}

// ReportChanges is a controller to report changes.
func (a *Adapter) ReportChanges(cc fx.ControlContext) error {
	var batch []Message
	if !a.started {
		batch = append(batch, Message{Action: ActionReset})
		for _, obj := range a.table() {
			batch = append(batch, Message{Action: ActionObject, Object: obj})
		}
		a.started = true
	}
	for _, name := range sortedKeys(a.changed) {
		vo, ok := a.changed[name].(VisibleObject)
		if !ok {
			continue
		}
		for _, obj := range a.Mapper.MapObject(vo) {
			if obj != nil {
				batch = append(batch, Message{Action: ActionObject, Object: obj})
			}
		}
	}
	for _, name := range sortedKeys(a.removed) {
		batch = append(batch, Message{Action: ActionRemove, RemoveID: ObjectID(name)})
	}
	a.changed = make(map[string]sim.Object)
	a.removed = make(map[string]bool)
	if len(batch) == 0 {
		return nil
	}
	if err := json.NewEncoder(a.Config.Out).Encode(batch); err != nil {
		glog.V(2).Infof("see: %v", err)
	}
	return nil
}

func (a *Adapter) table() []Object {
	rc := sim.Centered(sim.Size2D{CX: a.Config.W, CY: a.Config.H})
	objs := []Object{NewObject("table", "table").Rc(rc)}
	corners := []struct {
		loc  string
		x, y float64
	}{
		{"lt", rc.X, rc.Y},
		{"lb", rc.X, rc.Y + rc.CY},
		{"rt", rc.X + rc.CX, rc.Y},
		{"rb", rc.X + rc.CX, rc.Y + rc.CY},
	}
	for _, c := range corners {
		objs = append(objs, NewObject("corner", "corner-"+c.loc).
			With("loc", c.loc).
			At(sim.Pos2D{X: c.x, Y: c.y}).
			Radius(1))
	}
	return objs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
