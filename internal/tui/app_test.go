package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showhide/showhide-cli/internal/cache"
	"github.com/showhide/showhide-cli/internal/config"
	"github.com/showhide/showhide-cli/internal/document"
	"github.com/showhide/showhide-cli/internal/page"
	"github.com/showhide/showhide-cli/internal/showhide"
	"github.com/showhide/showhide-cli/internal/tui/messages"
)

func testConfig() *config.Config {
	return &config.Config{
		PollInterval: 10 * time.Millisecond,
		Theme:        "monokai",
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	pages := cache.NewPageCache()
	t.Cleanup(pages.Stop)
	return NewApp(testConfig(), pages, "unused.yaml")
}

func loadedPage(t *testing.T) *page.Page {
	t.Helper()
	p, err := page.Parse([]byte(`title: Test Page
regions:
  - id: panel1
    description: "Panel 1"
    showhide: true
    content: "panel body"
`))
	require.NoError(t, err)
	return p
}

func TestAppPageLoaded(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.PageLoadedMsg{Page: loadedPage(t)})
	app = model.(*App)

	require.Len(t, app.widgets, 1)
	w := app.widgets["panel1"]
	require.NotNil(t, w)
	assert.Equal(t, showhide.PhaseReady, w.Phase())

	view := app.View()
	assert.Contains(t, view, "Show Panel 1")
	assert.NotContains(t, view, "panel body")
}

func TestAppActivateToggles(t *testing.T) {
	app := newTestApp(t)
	model, _ := app.Update(messages.PageLoadedMsg{Page: loadedPage(t)})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	view := app.View()
	assert.Contains(t, view, "Hide Panel 1")
	assert.Contains(t, view, "panel body")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	view = app.View()
	assert.Contains(t, view, "Show Panel 1")
	assert.NotContains(t, view, "panel body")
}

func TestAppLateTargetPolling(t *testing.T) {
	app := newTestApp(t)

	doc := document.New()
	doc.Title = "Late"
	p := &page.Page{Doc: doc, Targets: []string{"late"}}

	model, cmd := app.Update(messages.PageLoadedMsg{Page: p})
	app = model.(*App)
	require.NotNil(t, cmd, "a polling widget should schedule a tick")

	w := app.widgets["late"]
	require.NotNil(t, w)
	assert.Equal(t, showhide.PhasePolling, w.Phase())

	// Simulated tick while the target is still absent reschedules
	model, cmd = app.Update(messages.SetupTickMsg{TargetID: "late"})
	app = model.(*App)
	assert.NotNil(t, cmd)
	assert.Equal(t, showhide.PhasePolling, w.Phase())

	// Target appears; the insertion listener finishes setup
	late := document.NewRegion(document.KindText)
	late.ID = "late"
	late.SetAttr(showhide.DescriptionAttr, "Late Panel")
	doc.AppendChild(doc.Root(), late)

	assert.Equal(t, showhide.PhaseReady, w.Phase())

	// The pending tick drains as a no-op, without a second control
	model, _ = app.Update(messages.SetupTickMsg{TargetID: "late"})
	app = model.(*App)

	count := 0
	for _, id := range doc.Controls() {
		if id == "late_button" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAppBoundedPolicyFailure(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 2

	pages := cache.NewPageCache()
	t.Cleanup(pages.Stop)
	app := NewApp(cfg, pages, "unused.yaml")

	doc := document.New()
	p := &page.Page{Doc: doc, Targets: []string{"never"}}

	model, _ := app.Update(messages.PageLoadedMsg{Page: p})
	app = model.(*App)

	// Attempt 1 ran at load; attempt 2 hits the ceiling
	model, cmd := app.Update(messages.SetupTickMsg{TargetID: "never"})
	app = model.(*App)
	require.NotNil(t, cmd)

	msg := cmd()
	failed, ok := msg.(messages.WidgetFailedMsg)
	require.True(t, ok)
	assert.Equal(t, "never", failed.TargetID)
	assert.Equal(t, showhide.PhaseFailed, app.widgets["never"].Phase())
}

func TestAppFocusCycles(t *testing.T) {
	app := newTestApp(t)

	p, err := page.Parse([]byte(`title: Two
regions:
  - id: a
    description: "A"
    showhide: true
    content: "aa"
  - id: b
    description: "B"
    showhide: true
    content: "bb"
`))
	require.NoError(t, err)

	model, _ := app.Update(messages.PageLoadedMsg{Page: p})
	app = model.(*App)

	assert.Equal(t, "a_button", app.focusedControl())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, "b_button", app.focusedControl())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, "a_button", app.focusedControl())
}

func TestAppErrorView(t *testing.T) {
	app := newTestApp(t)
	model, _ := app.Update(messages.PageErrorMsg{Err: assertError{}})
	app = model.(*App)
	assert.True(t, strings.Contains(app.View(), "Error:"))
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
