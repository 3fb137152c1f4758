package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadManifest(t *testing.T) {
	input := "FileName,Class\nblues/blues.00000.wav,blues\nrock/rock.00001.wav,rock\n"

	entries, err := ReadManifest(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{FileName: "blues/blues.00000.wav", Class: "blues"}, entries[0])
	assert.Equal(t, Entry{FileName: "rock/rock.00001.wav", Class: "rock"}, entries[1])
}

func TestReadManifestColumnOrder(t *testing.T) {
	input := "Class,FileName\njazz,jazz/jazz.00003.wav\n"

	entries, err := ReadManifest(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "jazz/jazz.00003.wav", entries[0].FileName)
	assert.Equal(t, "jazz", entries[0].Class)
}

func TestReadManifestExtraColumns(t *testing.T) {
	input := "Id,FileName,Duration,Class\n1,a.wav,30.1,pop\n2,b.wav,29.8,disco\n"

	entries, err := ReadManifest(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{FileName: "a.wav", Class: "pop"}, entries[0])
	assert.Equal(t, Entry{FileName: "b.wav", Class: "disco"}, entries[1])
}

func TestReadManifestMissingColumn(t *testing.T) {
	_, err := ReadManifest(strings.NewReader("FileName,Label\na.wav,pop\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Class")
}

func TestReadManifestEmptyBody(t *testing.T) {
	entries, err := ReadManifest(strings.NewReader("FileName,Class\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte("FileName,Class\nx.wav,metal\n"), 0644))

	entries, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "metal", entries[0].Class)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
