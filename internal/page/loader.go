// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package page loads page files into document trees and identifies the
// regions that get show/hide controls.
package page

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/showhide/showhide-cli/internal/document"
	"github.com/showhide/showhide-cli/internal/errors"
)

// BorderStyleAttr carries the collapsible region's visual treatment, in the
// same inline form the original pipeline stamps on its stanzas.
const (
	BorderStyleAttr  = "style"
	BorderStyleValue = "border:2px solid;border-color:blue;border-radius:10px;padding-left:10px"
)

// Page is a parsed page file: its document tree plus the IDs of the
// collapsible target regions in document order.
type Page struct {
	Path    string
	Doc     *document.Document
	Targets []string
}

// Clone returns an independent copy of the page, safe to mutate while the
// original stays cached.
func (p *Page) Clone() *Page {
	targets := make([]string, len(p.Targets))
	copy(targets, p.Targets)
	return &Page{
		Path:    p.Path,
		Doc:     p.Doc.Clone(),
		Targets: targets,
	}
}

type regionSpec struct {
	ID          string       `yaml:"id"`
	Kind        string       `yaml:"kind"`
	Lang        string       `yaml:"lang"`
	Description string       `yaml:"description"`
	ShowHide    bool         `yaml:"showhide"`
	Content     string       `yaml:"content"`
	Regions     []regionSpec `yaml:"regions"`
}

type pageSpec struct {
	Title   string       `yaml:"title"`
	Regions []regionSpec `yaml:"regions"`
}

type markdownMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ShowHide    bool   `yaml:"showhide"`
}

// Load reads and parses a page file. Markdown files (.md, .markdown) are
// parsed as YAML frontmatter plus body; everything else is parsed as YAML.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.PageError{Path: path, Err: err}
	}

	var p *Page
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		p, err = ParseMarkdown(data)
	default:
		p, err = Parse(data)
	}
	if err != nil {
		return nil, &errors.PageError{Path: path, Err: err}
	}
	p.Path = path
	return p, nil
}

// Parse builds a page from YAML page data. The returned document has not
// finished loading: callers construct widgets first and fire FinishLoad
// themselves.
func Parse(data []byte) (*Page, error) {
	var spec pageSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("invalid page yaml: %w", err)
	}
	if len(spec.Regions) == 0 {
		return nil, &errors.ValidationError{Field: "regions", Message: "page declares no regions"}
	}

	doc := document.New()
	doc.Title = spec.Title

	p := &Page{Doc: doc}
	for i := range spec.Regions {
		if err := p.buildRegion(doc.Root(), &spec.Regions[i]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseMarkdown builds a single-region page from a markdown file with YAML
// frontmatter. The body becomes one text region; showhide in the frontmatter
// makes it collapsible.
func ParseMarkdown(data []byte) (*Page, error) {
	var matter markdownMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &matter)
	if err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	doc := document.New()
	doc.Title = matter.Title

	region := document.NewRegion(document.KindText)
	region.SetText(strings.TrimSpace(string(body)))
	if matter.Description != "" {
		region.SetAttr("description", matter.Description)
	}

	p := &Page{Doc: doc}
	if matter.ShowHide {
		region.ID = regionKey(region.Text)
		region.SetAttr(BorderStyleAttr, BorderStyleValue)
		p.Targets = append(p.Targets, region.ID)
	}
	doc.AppendChild(doc.Root(), region)
	return p, nil
}

func (p *Page) buildRegion(parent *document.Region, spec *regionSpec) error {
	kind, err := parseKind(spec.Kind)
	if err != nil {
		return err
	}

	r := document.NewRegion(kind)
	r.ID = spec.ID
	r.Lang = spec.Lang
	r.SetText(strings.TrimRight(spec.Content, "\n"))
	if spec.Description != "" {
		r.SetAttr("description", spec.Description)
	}

	if spec.ShowHide {
		if r.ID == "" {
			r.ID = regionKey(spec.Content)
		}
		r.SetAttr(BorderStyleAttr, BorderStyleValue)
		p.Targets = append(p.Targets, r.ID)
	}

	p.Doc.AppendChild(parent, r)

	for i := range spec.Regions {
		if err := p.buildRegion(r, &spec.Regions[i]); err != nil {
			return err
		}
	}
	return nil
}

func parseKind(s string) (document.Kind, error) {
	switch s {
	case "", "text":
		return document.KindText, nil
	case "code":
		return document.KindCode, nil
	case "group":
		return document.KindGroup, nil
	default:
		return 0, &errors.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown region kind %q", s)}
	}
}

// regionKey derives a stable ID for an anonymous collapsible region from its
// content, using the same truncated-digest scheme the original pipeline keys
// its stanzas with.
func regionKey(content string) string {
	sum := sha256.Sum224([]byte(content))
	return "showhide_" + hex.EncodeToString(sum[:])[:20]
}
