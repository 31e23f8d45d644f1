package scenegraph

import (
	"github.com/akmonengine/scenegraph/pose"
)

const DEFAULT_WORKERS = 1

type transformEntry struct {
	value   pose.Transform
	changed uint64
}

type globalEntry struct {
	value   pose.GlobalTransform
	changed uint64
}

// World owns the entity set, the four scene components (Transform,
// GlobalTransform, Parent, Children) and the change bookkeeping the
// propagation pass runs on.
//
// Change detection is a generation counter: every component write stamps the
// entry with the world's current tick, and a pass recomputes only entries
// stamped after the previous pass.
type World struct {
	// Number of goroutines used to walk disjoint root subtrees in Update
	Workers int

	nextID   uint32
	free     []uint32
	versions map[uint32]uint32

	transforms map[Entity]*transformEntry
	globals    map[Entity]*globalEntry
	parents    map[Entity]*Parent
	children   map[Entity]*Children

	commands []func(*World)

	tick     uint64
	lastPass uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		Workers:    DEFAULT_WORKERS,
		versions:   make(map[uint32]uint32),
		transforms: make(map[Entity]*transformEntry),
		globals:    make(map[Entity]*globalEntry),
		parents:    make(map[Entity]*Parent),
		children:   make(map[Entity]*Children),
	}
}

// Spawn creates a root entity with the given local pose and an identity
// world transform. The world transform is filled in by the next Update.
func (w *World) Spawn(t pose.Transform) Entity {
	var id uint32
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		id = w.nextID
		w.nextID++
	}
	w.versions[id]++

	e := Entity{ID: id, Version: w.versions[id]}
	w.tick++
	w.transforms[e] = &transformEntry{value: t, changed: w.tick}
	w.globals[e] = &globalEntry{value: pose.GlobalIdentity()}
	return e
}

// Despawn removes an entity and its components. The entity is detached from
// its parent, and its children are orphaned: they become roots and keep
// living. A no-op when the entity is not alive.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}

	w.RemoveParent(e)
	if c, ok := w.children[e]; ok {
		for _, child := range c.Entities() {
			w.RemoveParent(child)
		}
		delete(w.children, e)
	}

	delete(w.transforms, e)
	delete(w.globals, e)
	w.free = append(w.free, e.ID)
}

// Alive reports whether e refers to a live entity in this world.
func (w *World) Alive(e Entity) bool {
	_, ok := w.transforms[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.transforms)
}

// Transform returns the local pose of e.
func (w *World) Transform(e Entity) (pose.Transform, bool) {
	tr, ok := w.transforms[e]
	if !ok {
		return pose.Transform{}, false
	}
	return tr.value, true
}

// SetTransform replaces the local pose of e and marks it changed, so the
// next Update recomputes the world transforms of e and its descendants.
func (w *World) SetTransform(e Entity, t pose.Transform) bool {
	tr, ok := w.transforms[e]
	if !ok {
		return false
	}
	w.tick++
	tr.value = t
	tr.changed = w.tick
	return true
}

// GlobalTransform returns the world transform of e as of the last Update.
func (w *World) GlobalTransform(e Entity) (pose.GlobalTransform, bool) {
	g, ok := w.globals[e]
	if !ok {
		return pose.GlobalTransform{}, false
	}
	return g.value, true
}

// TransformChanged reports whether the local pose of e was written since the
// last Update.
func (w *World) TransformChanged(e Entity) bool {
	tr, ok := w.transforms[e]
	return ok && tr.changed > w.lastPass
}

// Defer queues a structural edit to run at the start of the next Update, so
// callers iterating over the world do not mutate it mid-flight.
func (w *World) Defer(cmd func(*World)) {
	w.commands = append(w.commands, cmd)
}

func (w *World) flushCommands() {
	// Commands may defer follow-up commands; drain until stable.
	for len(w.commands) > 0 {
		pending := w.commands
		w.commands = nil
		for _, cmd := range pending {
			cmd(w)
		}
	}
}

// touchTransform stamps the local pose of e as changed without altering it,
// forcing the next pass to rebuild its subtree.
func (w *World) touchTransform(e Entity) {
	if tr, ok := w.transforms[e]; ok {
		w.tick++
		tr.changed = w.tick
	}
}
