// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/showhide/showhide-cli/internal/document"
	"github.com/showhide/showhide-cli/internal/page"
	"github.com/showhide/showhide-cli/internal/tui/styles"
)

// PageRenderer turns a document tree into terminal output. Hidden regions
// are skipped entirely; collapsible regions carry a bordered panel; code
// regions are syntax highlighted.
type PageRenderer struct {
	width     int
	theme     string
	focusedID string
}

func NewPageRenderer() *PageRenderer {
	return &PageRenderer{theme: "monokai"}
}

// SetWidth sets the render width.
func (r *PageRenderer) SetWidth(width int) *PageRenderer {
	r.width = width
	return r
}

// SetTheme sets the chroma style used for code regions.
func (r *PageRenderer) SetTheme(theme string) *PageRenderer {
	if theme != "" {
		r.theme = theme
	}
	return r
}

// SetFocused marks the control with the given ID as focused.
func (r *PageRenderer) SetFocused(id string) *PageRenderer {
	r.focusedID = id
	return r
}

// Render renders the document's visible regions in document order.
func (r *PageRenderer) Render(doc *document.Document) string {
	var parts []string
	for _, child := range doc.Root().Children() {
		if s := r.renderRegion(child); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (r *PageRenderer) renderRegion(reg *document.Region) string {
	if reg.Display == document.DisplayNone {
		return ""
	}

	var body string
	switch reg.Kind {
	case document.KindButton:
		return NewButton(reg.ID).
			SetText(reg.Text).
			SetFocused(reg.ID == r.focusedID).
			View()

	case document.KindCode:
		code, err := highlightCode(reg.Text, reg.Lang, r.theme)
		if err != nil {
			code = reg.Text
		}
		body = styles.TextStyle.Render(code)

	case document.KindGroup:
		var parts []string
		for _, child := range reg.Children() {
			if s := r.renderRegion(child); s != "" {
				parts = append(parts, s)
			}
		}
		body = strings.Join(parts, "\n")

	default:
		body = styles.TextStyle.Render(reg.Text)
	}

	if _, collapsible := reg.Attr(page.BorderStyleAttr); collapsible {
		style := styles.PanelStyle
		if r.width > 4 {
			style = style.Width(r.width - 4)
		}
		return style.Render(body)
	}
	return body
}

// highlightCode renders code with chroma for terminal output.
func highlightCode(code, lang, theme string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := chromastyles.Get(theme)
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code, err
	}
	return buf.String(), nil
}
