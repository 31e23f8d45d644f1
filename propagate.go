package scenegraph

import (
	"github.com/akmonengine/scenegraph/pose"
)

// Update runs one propagation pass over the hierarchy. Deferred structural
// edits are applied first, then world transforms are rebuilt in two passes:
//
//  1. Root sync: every root whose local pose changed since the last pass has
//     its world transform rewritten straight from the local pose.
//  2. Propagate: from every root, walk down the tree; a child's world
//     transform is parentWorld * childLocal, recomputed whenever the parent's
//     world transform was rebuilt or the child's own local pose changed.
//
// A parent's world transform is always finalized before any descendant's.
// Siblings are visited in Children insertion order. Running Update again
// without intervening writes recomputes nothing.
//
// Disjoint root subtrees never share state, so pass 2 dispatches one task
// per root across Workers goroutines.
func (w *World) Update() {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	w.flushCommands()

	since := w.lastPass
	w.tick++
	pass := w.tick

	w.syncRoots(since, pass)
	w.propagate(since, pass)

	w.lastPass = pass
}

// syncRoots writes GlobalTransform directly from Transform for every changed
// root. This is the only place a world transform is derived without parent
// composition.
func (w *World) syncRoots(since, pass uint64) {
	for e, tr := range w.transforms {
		if tr.changed <= since {
			continue
		}
		if _, hasParent := w.parents[e]; hasParent {
			continue
		}
		g := w.globals[e]
		g.value = pose.GlobalFromTransform(tr.value)
		g.changed = pass
	}
}

// propagate walks down from every root that has children. The recursion
// carries the parent's already-computed world transform by value, so no two
// component entries are ever held at once.
func (w *World) propagate(since, pass uint64) {
	var roots []Entity
	for e, c := range w.children {
		if c.IsEmpty() {
			continue
		}
		if _, hasParent := w.parents[e]; hasParent {
			continue
		}
		if _, alive := w.globals[e]; !alive {
			continue
		}
		roots = append(roots, e)
	}

	task(w.Workers, roots, func(root Entity) {
		g := w.globals[root]
		w.propagateRecursive(root, g.value, g.changed > since, since, pass)
	})
}

func (w *World) propagateRecursive(parent Entity, parentGlobal pose.GlobalTransform, dirty bool, since, pass uint64) {
	c, ok := w.children[parent]
	if !ok {
		return
	}
	for _, child := range c.refs {
		tr, ok := w.transforms[child]
		if !ok {
			continue
		}
		g := w.globals[child]

		childDirty := dirty || tr.changed > since
		if childDirty {
			g.value = parentGlobal.Mul(pose.GlobalFromTransform(tr.value))
			g.changed = pass
		}

		w.propagateRecursive(child, g.value, childDirty, since, pass)
	}
}
