// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cache keeps parsed pages in memory so repeat loads skip the parse.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/showhide/showhide-cli/internal/page"
)

const (
	pageTTL      = 5 * time.Minute
	pageCapacity = 64
)

type entry struct {
	page  *page.Page
	mtime time.Time
}

// PageCache is a TTL-bounded cache of parsed page files keyed by absolute
// path. A cached entry is invalidated when the file's mtime changes.
type PageCache struct {
	cache *ttlcache.Cache[string, entry]
	// Note: ttlcache is thread-safe, no additional mutex needed
}

// NewPageCache creates a page cache with eviction running in the background.
func NewPageCache() *PageCache {
	c := ttlcache.New[string, entry](
		ttlcache.WithCapacity[string, entry](pageCapacity),
	)

	go c.Start()

	return &PageCache{cache: c}
}

// Load returns the parsed page for path, reading the file only when no fresh
// cached copy exists.
func (pc *PageCache) Load(path string) (*page.Page, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	info, statErr := os.Stat(abs)

	if item := pc.cache.Get(abs); item != nil {
		cached := item.Value()
		if statErr == nil && info.ModTime().Equal(cached.mtime) {
			// Callers mutate the tree (controls get inserted), so hand
			// out an independent copy.
			return cached.page.Clone(), nil
		}
		pc.cache.Delete(abs)
	}

	p, err := page.Load(abs)
	if err != nil {
		return nil, err
	}

	if statErr == nil {
		pc.cache.Set(abs, entry{page: p.Clone(), mtime: info.ModTime()}, pageTTL)
	}
	return p, nil
}

// Invalidate drops the cached entry for path, if any.
func (pc *PageCache) Invalidate(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	pc.cache.Delete(path)
}

// Stop halts background eviction.
func (pc *PageCache) Stop() {
	pc.cache.Stop()
}
