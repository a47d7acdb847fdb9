// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package document

import (
	"fmt"
)

// Document is an in-memory tree of content regions. It is driven from a
// single goroutine (the TUI update loop, or a test); it is not safe for
// concurrent use and does not lock.
type Document struct {
	Title string

	root   *Region
	loaded bool

	readyFns  []func()
	insertFns []func(*Region)
	handlers  map[string]func()
}

// New creates an empty, not-yet-loaded document with a group root.
func New() *Document {
	return &Document{
		root:     NewRegion(KindGroup),
		handlers: make(map[string]func()),
	}
}

// Root returns the document's root region.
func (d *Document) Root() *Region {
	return d.root
}

// Loaded reports whether FinishLoad has run.
func (d *Document) Loaded() bool {
	return d.loaded
}

// GetRegionByID returns the first region with the given ID, searching the
// tree depth-first in document order, or nil if no such region exists.
func (d *Document) GetRegionByID(id string) *Region {
	return findByID(d.root, id)
}

func findByID(r *Region, id string) *Region {
	if r.ID == id {
		return r
	}
	for _, c := range r.children {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// AppendChild attaches child as the last child of parent and notifies
// insertion listeners.
func (d *Document) AppendChild(parent, child *Region) {
	child.parent = parent
	parent.children = append(parent.children, child)
	d.notifyInsert(child)
}

// InsertBefore places newRegion as the immediately preceding sibling of ref.
// ref must be attached to the tree; a detached ref is an error.
func (d *Document) InsertBefore(newRegion, ref *Region) error {
	parent := ref.parent
	if parent == nil {
		return fmt.Errorf("insert before %q: region has no parent", ref.ID)
	}
	idx := parent.indexOf(ref)
	if idx < 0 {
		return fmt.Errorf("insert before %q: region not under its parent", ref.ID)
	}
	newRegion.parent = parent
	parent.children = append(parent.children, nil)
	copy(parent.children[idx+1:], parent.children[idx:])
	parent.children[idx] = newRegion
	d.notifyInsert(newRegion)
	return nil
}

// OnReady registers fn to run once when the document finishes loading. If the
// document has already loaded, fn runs immediately.
func (d *Document) OnReady(fn func()) {
	if d.loaded {
		fn()
		return
	}
	d.readyFns = append(d.readyFns, fn)
}

// FinishLoad marks the document loaded and fires ready listeners exactly
// once, in registration order. Subsequent calls are no-ops.
func (d *Document) FinishLoad() {
	if d.loaded {
		return
	}
	d.loaded = true
	fns := d.readyFns
	d.readyFns = nil
	for _, fn := range fns {
		fn()
	}
}

// OnInsert registers fn to run whenever a region is attached to the tree.
func (d *Document) OnInsert(fn func(*Region)) {
	d.insertFns = append(d.insertFns, fn)
}

func (d *Document) notifyInsert(r *Region) {
	for _, fn := range d.insertFns {
		fn(r)
	}
}

// Bind associates an activation handler with the control region ID.
// Rebinding replaces the previous handler.
func (d *Document) Bind(controlID string, fn func()) {
	d.handlers[controlID] = fn
}

// Activate dispatches the activation event for the given control ID.
// Unknown IDs are ignored.
func (d *Document) Activate(controlID string) {
	if fn, ok := d.handlers[controlID]; ok {
		fn()
	}
}

// Clone returns a deep copy of the document tree. The copy starts unloaded,
// with no listeners and no activation bindings.
func (d *Document) Clone() *Document {
	out := New()
	out.Title = d.Title
	out.root = cloneRegion(d.root, nil)
	return out
}

func cloneRegion(r *Region, parent *Region) *Region {
	c := &Region{
		ID:      r.ID,
		Kind:    r.Kind,
		Text:    r.Text,
		Lang:    r.Lang,
		Display: r.Display,
		parent:  parent,
	}
	if len(r.attrs) > 0 {
		c.attrs = make(map[string]string, len(r.attrs))
		for k, v := range r.attrs {
			c.attrs[k] = v
		}
	}
	for _, child := range r.children {
		c.children = append(c.children, cloneRegion(child, c))
	}
	return c
}

// Controls returns the IDs of all button regions in document order.
func (d *Document) Controls() []string {
	var ids []string
	var walk func(*Region)
	walk = func(r *Region) {
		if r.Kind == KindButton {
			ids = append(ids, r.ID)
		}
		for _, c := range r.children {
			walk(c)
		}
	}
	walk(d.root)
	return ids
}
