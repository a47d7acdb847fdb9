// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package showhide implements the collapsible-region widget: a generated
// button control inserted before a target region, flipping the region
// between hidden and shown.
package showhide

import (
	"context"
	"time"

	"github.com/showhide/showhide-cli/internal/debug"
	"github.com/showhide/showhide-cli/internal/document"
	"github.com/showhide/showhide-cli/internal/errors"
	"github.com/showhide/showhide-cli/internal/utils"
)

// Visibility is the widget's two-valued display state.
type Visibility int

const (
	Hidden Visibility = iota
	Shown
)

func (v Visibility) String() string {
	if v == Shown {
		return "shown"
	}
	return "hidden"
}

// Phase tracks readiness: a widget awaits the document load, then polls for
// its target, then serves toggles. Failed is only reachable with a bounded
// retry policy.
type Phase int

const (
	PhaseAwaitingLoad Phase = iota
	PhasePolling
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingLoad:
		return "awaiting-load"
	case PhasePolling:
		return "polling"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	// ControlSuffix is appended to the target ID to derive the control ID.
	ControlSuffix = "_button"

	// DescriptionAttr names the target attribute supplying the label.
	DescriptionAttr = "description"

	// missingLabel is used verbatim when the target has no description.
	missingLabel = "undefined"
)

// Policy controls how setup retries when the target region is absent.
type Policy struct {
	Interval    time.Duration
	MaxAttempts int // 0 retries forever
}

// DefaultPolicy matches the original behavior: half-second retries, no ceiling.
func DefaultPolicy() Policy {
	return Policy{Interval: utils.DefaultPollInterval}
}

// Widget owns one target region's visibility and its generated control.
type Widget struct {
	doc      *document.Document
	targetID string

	// Set once at setup, immutable after.
	controlID string
	label     string

	target  *document.Region
	control *document.Region

	visibility Visibility
	phase      Phase
	policy     Policy
	attempts   int
	err        error
}

// New creates a widget for the given target region ID. The widget does
// nothing until Initialize or AttemptSetup is called.
func New(doc *document.Document, targetID string, policy Policy) *Widget {
	if policy.Interval <= 0 {
		policy.Interval = utils.DefaultPollInterval
	}
	debug.LogToFilef("[showhide] widget created target=%s\n", targetID)
	return &Widget{
		doc:       doc,
		targetID:  targetID,
		controlID: targetID + ControlSuffix,
		phase:     PhaseAwaitingLoad,
		policy:    policy,
	}
}

// TargetID returns the ID of the region this widget toggles.
func (w *Widget) TargetID() string { return w.targetID }

// ControlID returns the derived ID of the generated button control.
func (w *Widget) ControlID() string { return w.controlID }

// Label returns the display label captured at setup time.
func (w *Widget) Label() string { return w.label }

// Visibility returns the current display state.
func (w *Widget) Visibility() Visibility { return w.visibility }

// Phase returns the widget's readiness phase.
func (w *Widget) Phase() Phase { return w.phase }

// Attempts returns how many setup attempts found the target absent.
func (w *Widget) Attempts() int { return w.attempts }

// Err returns the terminal error after PhaseFailed, nil otherwise.
func (w *Widget) Err() error { return w.err }

// Interval returns the retry interval from the widget's policy.
func (w *Widget) Interval() time.Duration { return w.policy.Interval }

// Initialize defers setup until the document finishes loading, and
// additionally subscribes to region insertions so a target attached after
// load triggers setup without waiting for the next poll. Non-blocking.
func (w *Widget) Initialize() {
	w.doc.OnReady(func() {
		if w.phase == PhaseAwaitingLoad {
			w.phase = PhasePolling
			_, _ = w.AttemptSetup()
		}
	})
	w.doc.OnInsert(func(r *document.Region) {
		if w.phase == PhasePolling && r.ID == w.targetID {
			_, _ = w.AttemptSetup()
		}
	})
}

// AttemptSetup checks for the target region and completes setup if present:
// captures the label, inserts the control immediately before the target,
// binds activation to Toggle, and forces the hidden state. Returns done=false
// while the target is absent; the caller schedules the next attempt after
// Interval. Setup completes at most once.
func (w *Widget) AttemptSetup() (bool, error) {
	switch w.phase {
	case PhaseReady:
		return true, nil
	case PhaseFailed:
		return false, w.err
	case PhaseAwaitingLoad:
		w.phase = PhasePolling
	}

	target := w.doc.GetRegionByID(w.targetID)
	if target == nil {
		w.attempts++
		debug.LogToFilef("[showhide] target=%s absent, attempt %d\n", w.targetID, w.attempts)
		if w.policy.MaxAttempts > 0 && w.attempts >= w.policy.MaxAttempts {
			w.phase = PhaseFailed
			w.err = &errors.TargetError{TargetID: w.targetID, Attempts: w.attempts}
			return false, w.err
		}
		return false, nil
	}

	if desc, ok := target.Attr(DescriptionAttr); ok {
		w.label = desc
	} else {
		w.label = missingLabel
	}

	control := document.NewRegion(document.KindButton)
	control.ID = w.controlID
	if err := w.doc.InsertBefore(control, target); err != nil {
		return false, err
	}
	w.doc.Bind(w.controlID, w.Toggle)

	w.target = target
	w.control = control

	// Initial state is hidden regardless of the target's prior display.
	w.target.SetDisplay(document.DisplayNone)
	w.control.SetText("Show " + w.label)
	w.visibility = Hidden
	w.phase = PhaseReady

	debug.LogToFilef("[showhide] target=%s ready, control=%s\n", w.targetID, w.controlID)
	return true, nil
}

// Toggle flips the widget between Hidden and Shown. The target display and
// the control text change within the same call. No-op before setup completes.
func (w *Widget) Toggle() {
	if w.phase != PhaseReady {
		return
	}
	if w.visibility == Hidden {
		w.target.SetDisplay(document.DisplayBlock)
		w.control.SetText("Hide " + w.label)
		w.visibility = Shown
	} else {
		w.target.SetDisplay(document.DisplayNone)
		w.control.SetText("Show " + w.label)
		w.visibility = Hidden
	}
}

// WaitReady blocks until setup completes, polling at the policy interval.
// With an unbounded policy and a target that never appears, it returns only
// when ctx is done.
func (w *Widget) WaitReady(ctx context.Context) error {
	poller := utils.NewPoller[bool](&utils.PollConfig{Interval: w.policy.Interval})
	_, err := poller.PollUntilComplete(ctx,
		func(context.Context) (bool, error) { return w.AttemptSetup() },
		func(done bool) bool { return done },
		nil,
	)
	return err
}
