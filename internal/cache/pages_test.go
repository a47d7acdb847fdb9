package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showhide/showhide-cli/internal/document"
)

const cachedPage = `title: Cached
regions:
  - id: panel1
    description: "Panel 1"
    showhide: true
    content: "body"
`

func writePage(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPageCacheLoad(t *testing.T) {
	pc := NewPageCache()
	defer pc.Stop()

	path := writePage(t, t.TempDir(), "page.yaml", cachedPage)

	p1, err := pc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Cached", p1.Doc.Title)

	// Mutating the returned page must not poison the cache
	btn := document.NewRegion(document.KindButton)
	btn.ID = "panel1_button"
	p1.Doc.AppendChild(p1.Doc.Root(), btn)

	p2, err := pc.Load(path)
	require.NoError(t, err)
	assert.Nil(t, p2.Doc.GetRegionByID("panel1_button"))
	assert.NotNil(t, p2.Doc.GetRegionByID("panel1"))
}

func TestPageCacheInvalidatesOnMtimeChange(t *testing.T) {
	pc := NewPageCache()
	defer pc.Stop()

	dir := t.TempDir()
	path := writePage(t, dir, "page.yaml", cachedPage)

	_, err := pc.Load(path)
	require.NoError(t, err)

	updated := `title: Updated
regions:
  - content: "new body"
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))
	// Force a distinct mtime on coarse-grained filesystems
	old := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, old, old))

	p, err := pc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Updated", p.Doc.Title)
}

func TestPageCacheInvalidate(t *testing.T) {
	pc := NewPageCache()
	defer pc.Stop()

	path := writePage(t, t.TempDir(), "page.yaml", cachedPage)
	_, err := pc.Load(path)
	require.NoError(t, err)

	pc.Invalidate(path)

	p, err := pc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Cached", p.Doc.Title)
}

func TestPageCacheMissingFile(t *testing.T) {
	pc := NewPageCache()
	defer pc.Stop()

	_, err := pc.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
