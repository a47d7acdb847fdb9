// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package document

// Kind identifies what a region holds and how it renders.
type Kind int

const (
	KindGroup Kind = iota
	KindText
	KindCode
	KindButton
)

// Display is a region's visibility in the rendered output.
type Display int

const (
	DisplayBlock Display = iota
	DisplayNone
)

// Region is one node of a document tree. Regions carry free-form string
// attributes; the "description" attribute supplies widget labels.
type Region struct {
	ID      string
	Kind    Kind
	Text    string
	Lang    string // lexer hint for KindCode
	Display Display

	attrs    map[string]string
	parent   *Region
	children []*Region
}

// NewRegion creates a detached region of the given kind.
func NewRegion(kind Kind) *Region {
	return &Region{Kind: kind, Display: DisplayBlock}
}

// Attr returns the named attribute and whether it is set.
func (r *Region) Attr(name string) (string, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// SetAttr sets the named attribute.
func (r *Region) SetAttr(name, value string) {
	if r.attrs == nil {
		r.attrs = make(map[string]string)
	}
	r.attrs[name] = value
}

// Parent returns the region's parent, or nil for a detached region or the root.
func (r *Region) Parent() *Region {
	return r.parent
}

// Children returns the region's children in document order.
func (r *Region) Children() []*Region {
	return r.children
}

// SetText replaces the region's text content.
func (r *Region) SetText(text string) {
	r.Text = text
}

// SetDisplay sets the region's display state.
func (r *Region) SetDisplay(d Display) {
	r.Display = d
}

// indexOf returns the position of child under r, or -1.
func (r *Region) indexOf(child *Region) int {
	for i, c := range r.children {
		if c == child {
			return i
		}
	}
	return -1
}
