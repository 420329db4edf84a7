package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipper_RoundTrip(t *testing.T) {
	zipper := NewZipper(t.TempDir())

	builder, err := zipper.Create("2023-05-10_north-tower_images")
	require.NoError(t, err)

	entries := map[string]string{
		"images/1_crane.jpg": "crane bytes",
		"images/2_rebar.jpg": "rebar bytes",
	}
	for name, content := range entries {
		require.NoError(t, builder.AddEntry(name, strings.NewReader(content)))
	}

	require.NoError(t, builder.Close())
	assert.Equal(t, 2, builder.Entries())

	reader, err := zip.OpenReader(builder.Path())
	require.NoError(t, err)
	defer reader.Close()

	require.Len(t, reader.File, 2)
	for _, f := range reader.File {
		expected, ok := entries[f.Name]
		require.True(t, ok, "unexpected entry %s", f.Name)

		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, expected, string(data))
	}
}

func TestZipper_EmptyArchiveIsValid(t *testing.T) {
	zipper := NewZipper(t.TempDir())

	builder, err := zipper.Create("2023-05-10_ghost-site_images")
	require.NoError(t, err)
	require.NoError(t, builder.Close())

	reader, err := zip.OpenReader(builder.Path())
	require.NoError(t, err)
	defer reader.Close()

	assert.Empty(t, reader.File)
	assert.Equal(t, 0, builder.Entries())
}

func TestZipper_DiscardRemovesFile(t *testing.T) {
	dir := t.TempDir()
	zipper := NewZipper(dir)

	builder, err := zipper.Create("partial")
	require.NoError(t, err)
	require.NoError(t, builder.AddEntry("images/a.jpg", strings.NewReader("data")))

	builder.Discard()

	_, err = os.Stat(builder.Path())
	assert.True(t, os.IsNotExist(err))

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.zip"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestZipper_UniqueNamesForSameInput(t *testing.T) {
	zipper := NewZipper(t.TempDir())

	first, err := zipper.Create("2023-05-10_north-tower_images")
	require.NoError(t, err)
	second, err := zipper.Create("2023-05-10_north-tower_images")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path(), second.Path())

	require.NoError(t, first.Close())
	require.NoError(t, second.Close())
}

func TestZipper_DefaultsToTempDir(t *testing.T) {
	zipper := NewZipper("")

	builder, err := zipper.Create("fallback")
	require.NoError(t, err)
	defer os.Remove(builder.Path())

	require.NoError(t, builder.Close())
	assert.True(t, strings.HasPrefix(builder.Path(), os.TempDir()))
}
