package stats_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheets/internal/stats"
)

func TestDefaultCatalog(t *testing.T) {
	c := stats.Default()

	opts := c.Options()
	require.NotEmpty(t, opts)
	assert.Equal(t, "ac", opts[0].Key)
	assert.Equal(t, "Armor Class", c.Label("ac"))
	assert.True(t, c.Has("arcana"))
	assert.False(t, c.Has("luck"))
	assert.Equal(t, "luck", c.Label("luck"))

	// callers cannot mutate the catalog through the returned slice
	opts[0].Key = "changed"
	assert.Equal(t, "ac", c.Options()[0].Key)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	_, err := stats.Parse(strings.NewReader("options: []"))
	assert.Error(t, err)

	_, err = stats.Parse(strings.NewReader("options:\n  - key: ac\n  - key: ac\n"))
	assert.ErrorContains(t, err, "listed twice")

	_, err = stats.Parse(strings.NewReader("options:\n  - label: Nothing\n"))
	assert.ErrorContains(t, err, "has no key")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options:\n  - key: luck\n"), 0o600))

	c, err := stats.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []stats.Option{{Key: "luck", Label: "luck"}}, c.Options())

	def, err := stats.Load("")
	require.NoError(t, err)
	assert.True(t, def.Has("ac"))
}
