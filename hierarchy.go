package scenegraph

import (
	"errors"
	"fmt"
)

var (
	// ErrDeadEntity is returned when a relation edit names an entity that is
	// not alive in the world.
	ErrDeadEntity = errors.New("scenegraph: entity is not alive")

	// ErrCycle is returned when a relation edit would make an entity its own
	// ancestor. Propagation assumes the hierarchy is a forest, so such edits
	// are rejected up front.
	ErrCycle = errors.New("scenegraph: relation would create a cycle")
)

// Parent is the single back-reference a child entity holds to its parent.
// It records a relation, not ownership: despawning the parent orphans the
// child instead of destroying it.
type Parent struct {
	entity Entity
}

// Get returns the referenced parent entity.
func (p *Parent) Get() Entity {
	return p.entity
}

// Set replaces the referenced parent entity. Prefer World.SetParent, which
// keeps both sides of the relation consistent.
func (p *Parent) Set(entity Entity) {
	p.entity = entity
}

// Children is the ordered set of child references a parent entity holds.
// Insertion order is preserved, duplicates are rejected on push.
type Children struct {
	refs []Entity
}

// Len returns the number of children.
func (c *Children) Len() int {
	return len(c.refs)
}

// IsEmpty reports whether the set has no children.
func (c *Children) IsEmpty() bool {
	return len(c.refs) == 0
}

// Contains reports whether entity is among the children.
func (c *Children) Contains(entity Entity) bool {
	for _, e := range c.refs {
		if e == entity {
			return true
		}
	}
	return false
}

// Push appends entity to the set. A no-op if it is already present.
func (c *Children) Push(entity Entity) {
	if c.Contains(entity) {
		return
	}
	c.refs = append(c.refs, entity)
}

// Remove deletes entity from the set by value, preserving the order of the
// remaining children.
func (c *Children) Remove(entity Entity) {
	for i, e := range c.refs {
		if e == entity {
			c.refs = append(c.refs[:i], c.refs[i+1:]...)
			return
		}
	}
}

// Clear drops every child reference.
func (c *Children) Clear() {
	c.refs = c.refs[:0]
}

// First returns the first child in insertion order.
func (c *Children) First() (Entity, bool) {
	if len(c.refs) == 0 {
		return Entity{}, false
	}
	return c.refs[0], true
}

// Last returns the most recently inserted child.
func (c *Children) Last() (Entity, bool) {
	if len(c.refs) == 0 {
		return Entity{}, false
	}
	return c.refs[len(c.refs)-1], true
}

// Entities returns a copy of the child references in insertion order.
func (c *Children) Entities() []Entity {
	out := make([]Entity, len(c.refs))
	copy(out, c.refs)
	return out
}

// SetParent attaches child under parent as one unit of work: the child gets a
// Parent reference and the parent's Children set gains the child. An existing
// relation on the child is replaced. The edit is rejected when either entity
// is dead, or when it would make child its own ancestor.
func (w *World) SetParent(child, parent Entity) error {
	if !w.Alive(child) || !w.Alive(parent) {
		return fmt.Errorf("%w: set parent %v -> %v", ErrDeadEntity, child, parent)
	}
	if child == parent {
		return fmt.Errorf("%w: entity %v cannot parent itself", ErrCycle, child)
	}
	for a := parent; ; {
		p, ok := w.parents[a]
		if !ok {
			break
		}
		if p.entity == child {
			return fmt.Errorf("%w: %v is an ancestor of %v", ErrCycle, child, parent)
		}
		a = p.entity
	}

	if p, ok := w.parents[child]; ok {
		if c, ok := w.children[p.entity]; ok {
			c.Remove(child)
		}
	}

	w.parents[child] = &Parent{entity: parent}
	c, ok := w.children[parent]
	if !ok {
		c = &Children{}
		w.children[parent] = c
	}
	c.Push(child)

	// The child's world transform must be rebuilt under the new parent on
	// the next pass, even though its local pose did not move.
	w.touchTransform(child)
	return nil
}

// RemoveParent detaches child from its parent, pruning the matching entry
// from the former parent's Children set. The child becomes a root. A no-op
// when the child has no parent.
func (w *World) RemoveParent(child Entity) {
	p, ok := w.parents[child]
	if !ok {
		return
	}
	if c, ok := w.children[p.entity]; ok {
		c.Remove(child)
	}
	delete(w.parents, child)

	w.touchTransform(child)
}

// ParentOf returns the parent of entity, if it has one.
func (w *World) ParentOf(entity Entity) (Entity, bool) {
	p, ok := w.parents[entity]
	if !ok {
		return Entity{}, false
	}
	return p.entity, true
}

// ChildrenOf returns a copy of entity's children in insertion order.
func (w *World) ChildrenOf(entity Entity) []Entity {
	c, ok := w.children[entity]
	if !ok {
		return nil
	}
	return c.Entities()
}

// Ancestors returns the chain of parents of entity, from its direct parent up
// to the root.
func (w *World) Ancestors(entity Entity) []Entity {
	var ancestors []Entity
	for a := entity; ; {
		p, ok := w.parents[a]
		if !ok {
			return ancestors
		}
		ancestors = append(ancestors, p.entity)
		a = p.entity
	}
}

// Descendants returns every entity below entity in the hierarchy, in
// preorder: each child before its own children, siblings in insertion order.
func (w *World) Descendants(entity Entity) []Entity {
	var descendants []Entity
	c, ok := w.children[entity]
	if !ok {
		return descendants
	}
	for _, child := range c.refs {
		descendants = append(descendants, child)
		descendants = append(descendants, w.Descendants(child)...)
	}
	return descendants
}
