// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultPollInterval = 500 * time.Millisecond
	MinPollInterval     = 50 * time.Millisecond
	MaxPollInterval     = 30 * time.Second
)

// PollConfig holds configuration for polling operations
type PollConfig struct {
	Interval time.Duration
	Timeout  time.Duration // zero means no ceiling
	Debug    bool
}

func DefaultPollConfig() *PollConfig {
	return &PollConfig{
		Interval: DefaultPollInterval,
	}
}

// PollFunc is a generic function that advances the polled operation one step
type PollFunc[T any] func(ctx context.Context) (T, error)

// CompletionFunc checks if the result is in a terminal state
type CompletionFunc[T any] func(T) bool

// UpdateCallback is called with each poll result
type UpdateCallback[T any] func(T)

// Poller drives a step function at a fixed interval until it completes
type Poller[T any] struct {
	config    *PollConfig
	startTime time.Time
}

// NewPoller creates a new poller
func NewPoller[T any](config *PollConfig) *Poller[T] {
	if config == nil {
		config = DefaultPollConfig()
	}
	if config.Interval <= 0 {
		config.Interval = DefaultPollInterval
	}
	return &Poller[T]{
		config:    config,
		startTime: time.Now(),
	}
}

// PollUntilComplete polls until the completion function returns true.
// Errors from the poll function are terminal and stop the loop.
func (p *Poller[T]) PollUntilComplete(
	ctx context.Context,
	pollFunc PollFunc[T],
	isComplete CompletionFunc[T],
	onUpdate UpdateCallback[T],
) (T, error) {
	var zero T

	pollCtx := ctx
	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	// Initial check
	result, err := pollFunc(pollCtx)
	if err != nil {
		return zero, err
	}

	if onUpdate != nil {
		onUpdate(result)
	}

	if isComplete(result) {
		return result, nil
	}

	// Polling loop
	for {
		select {
		case <-pollCtx.Done():
			return zero, fmt.Errorf("polling stopped after %v: %w",
				FormatDurationLong(time.Since(p.startTime)), pollCtx.Err())

		case <-ticker.C:
			result, err = pollFunc(pollCtx)
			if err != nil {
				return zero, err
			}

			if onUpdate != nil {
				onUpdate(result)
			}

			if isComplete(result) {
				return result, nil
			}

			if p.config.Debug {
				fmt.Printf("\rPolling... [%s elapsed]", FormatDurationLong(time.Since(p.startTime)))
			}
		}
	}
}
