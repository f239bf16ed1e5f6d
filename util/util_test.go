package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, -3, Min(4, -3, 0))
	assert.Equal(t, 4, Max(4, -3, 0))
	assert.Equal(t, 7, Min(7))
	assert.Equal(t, 3, Abs(-3))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(m))
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.dat")
	require.NoError(t, CreateBinary(path, map[string][]int{"x": {1, 2}}))

	data, err := ReadBinary[map[string][]int](path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, data["x"])
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mid", "b.midi", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0666))
	}

	paths, err := GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	paths, err = GatherAllMidiPaths(dir, 1)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}
