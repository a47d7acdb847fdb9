// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tui hosts a loaded page in a Bubble Tea program: it drives widget
// setup polling with tick messages and routes key presses to the generated
// controls.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/showhide/showhide-cli/internal/cache"
	"github.com/showhide/showhide-cli/internal/config"
	"github.com/showhide/showhide-cli/internal/debug"
	"github.com/showhide/showhide-cli/internal/errors"
	"github.com/showhide/showhide-cli/internal/page"
	"github.com/showhide/showhide-cli/internal/showhide"
	"github.com/showhide/showhide-cli/internal/tui/components"
	"github.com/showhide/showhide-cli/internal/tui/messages"
	"github.com/showhide/showhide-cli/internal/tui/styles"
)

// App is the top-level Bubble Tea model.
type App struct {
	cfg   *config.Config
	pages *cache.PageCache
	path  string

	page    *page.Page
	widgets map[string]*showhide.Widget

	keymap     components.KeyMap
	statusline *components.StatusLine
	renderer   *components.PageRenderer

	focus  int
	width  int
	height int
	err    error
}

// NewApp creates the model for one page file.
func NewApp(cfg *config.Config, pages *cache.PageCache, path string) *App {
	return &App{
		cfg:        cfg,
		pages:      pages,
		path:       path,
		widgets:    make(map[string]*showhide.Widget),
		keymap:     components.DefaultKeyMap,
		statusline: components.NewStatusLine(),
		renderer:   components.NewPageRenderer().SetTheme(cfg.Theme),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadPage, a.statusline.SpinnerTick())
}

func (a *App) loadPage() tea.Msg {
	p, err := a.pages.Load(a.path)
	if err != nil {
		return messages.PageErrorMsg{Err: err}
	}
	return messages.PageLoadedMsg{Page: p}
}

func (a *App) setupTick(w *showhide.Widget) tea.Cmd {
	targetID := w.TargetID()
	return tea.Tick(w.Interval(), func(time.Time) tea.Msg {
		return messages.SetupTickMsg{TargetID: targetID}
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.PageLoadedMsg:
		return a.handlePageLoaded(msg)

	case messages.PageErrorMsg:
		a.err = msg.Err
		return a, nil

	case messages.SetupTickMsg:
		return a.handleSetupTick(msg)

	case messages.WidgetFailedMsg:
		a.statusline.SetTemporaryMessage(
			fmt.Sprintf("widget %s gave up: %v", msg.TargetID, msg.Err), 5*time.Second)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.statusline, cmd = a.statusline.UpdateSpinnerWithTick(msg)
		return a, cmd

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.statusline.SetWidth(msg.Width)
		a.renderer.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handlePageLoaded(msg messages.PageLoadedMsg) (tea.Model, tea.Cmd) {
	a.page = msg.Page
	a.statusline.SetLeft(a.page.Doc.Title)

	policy := showhide.Policy{
		Interval:    a.cfg.PollInterval,
		MaxAttempts: a.cfg.MaxAttempts,
	}
	for _, targetID := range a.page.Targets {
		w := showhide.New(a.page.Doc, targetID, policy)
		w.Initialize()
		a.widgets[targetID] = w
	}

	// The structural load completes here; ready listeners run their first
	// setup attempt synchronously.
	a.page.Doc.FinishLoad()

	var cmds []tea.Cmd
	for _, w := range a.widgets {
		if w.Phase() == showhide.PhasePolling {
			cmds = append(cmds, a.setupTick(w))
		}
	}
	a.statusline.SetPolling(len(cmds) > 0)
	a.statusline.SetRight(a.phaseSummary())
	if len(cmds) > 0 {
		cmds = append(cmds, a.statusline.SpinnerTick())
	}
	debug.LogToFilef("[tui] page loaded, %d widgets\n", len(a.widgets))
	return a, tea.Batch(cmds...)
}

// phaseSummary renders one phase icon per widget, in target order.
func (a *App) phaseSummary() string {
	if a.page == nil || len(a.widgets) == 0 {
		return ""
	}
	icons := make([]string, 0, len(a.widgets))
	for _, targetID := range a.page.Targets {
		if w, ok := a.widgets[targetID]; ok {
			icons = append(icons, styles.GetPhaseIcon(w.Phase().String()))
		}
	}
	return strings.Join(icons, " ")
}

func (a *App) handleSetupTick(msg messages.SetupTickMsg) (tea.Model, tea.Cmd) {
	w, ok := a.widgets[msg.TargetID]
	if !ok {
		return a, nil
	}

	done, err := w.AttemptSetup()
	a.statusline.SetRight(a.phaseSummary())
	if err != nil {
		a.statusline.SetPolling(a.anyPolling())
		return a, func() tea.Msg {
			return messages.WidgetFailedMsg{TargetID: msg.TargetID, Err: err}
		}
	}
	if !done && w.Phase() == showhide.PhasePolling {
		return a, a.setupTick(w)
	}

	a.statusline.SetPolling(a.anyPolling())
	return a, nil
}

func (a *App) anyPolling() bool {
	for _, w := range a.widgets {
		if w.Phase() == showhide.PhasePolling {
			return true
		}
	}
	return false
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Down), key.Matches(msg, a.keymap.Tab):
		a.moveFocus(1)

	case key.Matches(msg, a.keymap.Up), key.Matches(msg, a.keymap.ShiftTab):
		a.moveFocus(-1)

	case key.Matches(msg, a.keymap.Activate):
		if a.page != nil {
			if id := a.focusedControl(); id != "" {
				a.page.Doc.Activate(id)
			}
		}
	}
	return a, nil
}

func (a *App) moveFocus(delta int) {
	if a.page == nil {
		return
	}
	controls := a.page.Doc.Controls()
	if len(controls) == 0 {
		return
	}
	a.focus = (a.focus + delta + len(controls)) % len(controls)
}

func (a *App) focusedControl() string {
	controls := a.page.Doc.Controls()
	if len(controls) == 0 {
		return ""
	}
	if a.focus >= len(controls) {
		a.focus = len(controls) - 1
	}
	return controls[a.focus]
}

// View implements tea.Model.
func (a *App) View() string {
	if a.err != nil {
		return styles.ErrorStyle.Render("Error: "+errors.FormatUserError(a.err)) +
			"\n\n" + styles.HelpStyle.Render("q to quit")
	}
	if a.page == nil {
		return styles.HelpStyle.Render("Loading page...")
	}

	title := styles.TitleStyle.Render(a.page.Doc.Title)
	body := a.renderer.SetFocused(a.focusedControl()).Render(a.page.Doc)
	help := styles.HelpStyle.Render("tab: next control • enter/space: toggle • q: quit")

	return title + "\n\n" + body + "\n\n" + help + "\n" + a.statusline.View()
}

// Run starts the program for the given page path.
func Run(cfg *config.Config, path string) error {
	pages := cache.NewPageCache()
	defer pages.Stop()

	app := NewApp(cfg, pages, path)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
