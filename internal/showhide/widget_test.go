package showhide

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showhide/showhide-cli/internal/document"
	"github.com/showhide/showhide-cli/internal/errors"
)

// newPanelDoc builds a document with one parent group holding a target
// region named "panel1" described as "Panel 1".
func newPanelDoc(t *testing.T) (*document.Document, *document.Region) {
	t.Helper()
	doc := document.New()
	panel := document.NewRegion(document.KindText)
	panel.ID = "panel1"
	panel.SetAttr(DescriptionAttr, "Panel 1")
	panel.SetText("panel one contents")
	doc.AppendChild(doc.Root(), panel)
	return doc, panel
}

func TestSetupInitialState(t *testing.T) {
	doc, panel := newPanelDoc(t)
	// Pre-setup display state must not matter
	panel.SetDisplay(document.DisplayBlock)

	w := New(doc, "panel1", DefaultPolicy())
	w.Initialize()
	assert.Equal(t, PhaseAwaitingLoad, w.Phase())

	doc.FinishLoad()

	assert.Equal(t, PhaseReady, w.Phase())
	assert.Equal(t, Hidden, w.Visibility())
	assert.Equal(t, document.DisplayNone, panel.Display)

	control := doc.GetRegionByID("panel1_button")
	require.NotNil(t, control)
	assert.Equal(t, document.KindButton, control.Kind)
	assert.Equal(t, "Show Panel 1", control.Text)
	assert.Equal(t, "panel1_button", w.ControlID())
	assert.Equal(t, "Panel 1", w.Label())
}

func TestToggleIsInvolution(t *testing.T) {
	doc, panel := newPanelDoc(t)
	w := New(doc, "panel1", DefaultPolicy())
	w.Initialize()
	doc.FinishLoad()

	control := doc.GetRegionByID("panel1_button")
	require.NotNil(t, control)

	w.Toggle()
	assert.Equal(t, Shown, w.Visibility())
	assert.Equal(t, document.DisplayBlock, panel.Display)
	assert.Equal(t, "Hide Panel 1", control.Text)

	w.Toggle()
	assert.Equal(t, Hidden, w.Visibility())
	assert.Equal(t, document.DisplayNone, panel.Display)
	assert.Equal(t, "Show Panel 1", control.Text)
}

func TestToggleViaActivation(t *testing.T) {
	doc, _ := newPanelDoc(t)
	w := New(doc, "panel1", DefaultPolicy())
	w.Initialize()
	doc.FinishLoad()

	doc.Activate("panel1_button")
	assert.Equal(t, Shown, w.Visibility())
	doc.Activate("panel1_button")
	assert.Equal(t, Hidden, w.Visibility())
}

func TestLabelCapturedOnce(t *testing.T) {
	doc, panel := newPanelDoc(t)
	w := New(doc, "panel1", DefaultPolicy())
	w.Initialize()
	doc.FinishLoad()

	panel.SetAttr(DescriptionAttr, "Renamed")

	control := doc.GetRegionByID("panel1_button")
	require.NotNil(t, control)

	w.Toggle()
	assert.Equal(t, "Hide Panel 1", control.Text)
	w.Toggle()
	assert.Equal(t, "Show Panel 1", control.Text)
}

func TestMissingDescription(t *testing.T) {
	doc := document.New()
	panel := document.NewRegion(document.KindText)
	panel.ID = "bare"
	doc.AppendChild(doc.Root(), panel)

	w := New(doc, "bare", DefaultPolicy())
	w.Initialize()
	doc.FinishLoad()

	control := doc.GetRegionByID("bare_button")
	require.NotNil(t, control)
	assert.Equal(t, "Show undefined", control.Text)
	w.Toggle()
	assert.Equal(t, "Hide undefined", control.Text)
}

func TestRetryConvergence(t *testing.T) {
	doc := document.New()
	w := New(doc, "late", DefaultPolicy())
	w.Initialize()
	doc.FinishLoad()

	// First attempt ran on load and found nothing
	assert.Equal(t, PhasePolling, w.Phase())
	assert.Equal(t, 1, w.Attempts())

	// Two more simulated polling ticks, still absent
	done, err := w.AttemptSetup()
	assert.False(t, done)
	assert.NoError(t, err)
	done, err = w.AttemptSetup()
	assert.False(t, done)
	assert.NoError(t, err)
	assert.Equal(t, 3, w.Attempts())

	// Target appears; the insertion listener completes setup immediately
	late := document.NewRegion(document.KindText)
	late.ID = "late"
	late.SetAttr(DescriptionAttr, "Late Panel")
	doc.AppendChild(doc.Root(), late)

	assert.Equal(t, PhaseReady, w.Phase())

	// Exactly one control was created, and further attempts are no-ops
	done, err = w.AttemptSetup()
	assert.True(t, done)
	assert.NoError(t, err)

	count := 0
	for _, id := range doc.Controls() {
		if id == "late_button" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestControlPlacement(t *testing.T) {
	doc := document.New()
	before := document.NewRegion(document.KindText)
	before.ID = "intro"
	doc.AppendChild(doc.Root(), before)

	panel := document.NewRegion(document.KindText)
	panel.ID = "panel1"
	panel.SetAttr(DescriptionAttr, "Panel 1")
	doc.AppendChild(doc.Root(), panel)

	after := document.NewRegion(document.KindText)
	after.ID = "outro"
	doc.AppendChild(doc.Root(), after)

	w := New(doc, "panel1", DefaultPolicy())
	w.Initialize()
	doc.FinishLoad()

	children := doc.Root().Children()
	require.Len(t, children, 4)
	assert.Equal(t, "intro", children[0].ID)
	assert.Equal(t, "panel1_button", children[1].ID)
	assert.Equal(t, "panel1", children[2].ID)
	assert.Equal(t, "outro", children[3].ID)
}

func TestBoundedPolicyGivesUp(t *testing.T) {
	doc := document.New()
	w := New(doc, "never", Policy{Interval: 10 * time.Millisecond, MaxAttempts: 3})
	w.Initialize()
	doc.FinishLoad()

	done, err := w.AttemptSetup()
	assert.False(t, done)
	assert.NoError(t, err)

	done, err = w.AttemptSetup()
	assert.False(t, done)
	require.Error(t, err)
	assert.True(t, errors.IsTargetMissing(err))
	assert.Equal(t, PhaseFailed, w.Phase())

	// Phase is sticky: later attempts keep reporting the failure
	done, err = w.AttemptSetup()
	assert.False(t, done)
	assert.Error(t, err)
}

func TestSetupWithoutParent(t *testing.T) {
	doc := document.New()
	doc.Root().ID = "rootpanel"

	w := New(doc, "rootpanel", DefaultPolicy())
	w.Initialize()
	doc.FinishLoad()

	done, err := w.AttemptSetup()
	assert.False(t, done)
	assert.Error(t, err)
}

func TestImmediateSetupBeforeLoad(t *testing.T) {
	doc, _ := newPanelDoc(t)
	w := New(doc, "panel1", DefaultPolicy())

	// The non-deferred handle works without waiting for the load event
	done, err := w.AttemptSetup()
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, PhaseReady, w.Phase())
}

func TestWaitReady(t *testing.T) {
	t.Run("target present", func(t *testing.T) {
		doc, _ := newPanelDoc(t)
		w := New(doc, "panel1", Policy{Interval: 10 * time.Millisecond})
		err := w.WaitReady(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, PhaseReady, w.Phase())
	})

	t.Run("target never appears", func(t *testing.T) {
		doc := document.New()
		w := New(doc, "ghost", Policy{Interval: 5 * time.Millisecond})

		ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
		defer cancel()

		err := w.WaitReady(ctx)
		assert.Error(t, err)
		assert.NotEqual(t, PhaseReady, w.Phase())
	})
}
