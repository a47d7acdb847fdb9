// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/showhide/showhide-cli/internal/tui/styles"
)

// Button renders a widget's generated control: its current text inside a
// bordered box, highlighted when focused.
type Button struct {
	id      string
	text    string
	focused bool
}

// NewButton creates a button for the control with the given ID.
func NewButton(id string) *Button {
	return &Button{id: id}
}

// ID returns the control ID this button renders.
func (b *Button) ID() string {
	return b.id
}

// SetText sets the displayed text.
func (b *Button) SetText(text string) *Button {
	b.text = text
	return b
}

// SetFocused sets keyboard focus.
func (b *Button) SetFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// View renders the button.
func (b *Button) View() string {
	if b.focused {
		return styles.ButtonFocusedStyle.Render(b.text)
	}
	return styles.ButtonStyle.Render(b.text)
}
