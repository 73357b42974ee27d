package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/ecf"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.JSON", "c.xml", "nested/d.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	files, err := collectFiles([]string{dir}, ".json")
	require.NoError(t, err)
	assert.Len(t, files, 3)

	files, err = collectFiles([]string{filepath.Join(dir, "*.xml")}, ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "c.xml")}, files)

	_, err = collectFiles([]string{filepath.Join(dir, "missing.json")}, ".json")
	assert.Error(t, err)
}

func TestBuildCancellation(t *testing.T) {
	t.Cleanup(func() { cancelRNC, cancelFile = "", "" })

	cancelRNC = "131793916"
	doc, err := buildCancellation([]string{"E310000000001:E310000000010", "E320000000005"})
	require.NoError(t, err)
	c, ok := doc.(*ecf.Cancellation)
	require.True(t, ok)
	assert.Equal(t, int64(11), c.Quantity())
	assert.Equal(t, []ecf.Range{
		{From: "E310000000001", Until: "E310000000010"},
		{From: "E320000000005", Until: "E320000000005"},
	}, c.Ranges())

	_, err = buildCancellation(nil)
	assert.Error(t, err)

	_, err = buildCancellation([]string{":E310000000010"})
	assert.Error(t, err)

	cancelRNC = ""
	_, err = buildCancellation([]string{"E310000000001"})
	assert.Error(t, err)
}
