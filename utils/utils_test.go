package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"threshold": 10}`), 0o644))

	var dest map[string]any
	require.NoError(t, UnmarshalFile(jsonPath, &dest))
	assert.Equal(t, float64(10), dest["threshold"])

	var missing map[string]any
	assert.Error(t, UnmarshalFile(filepath.Join(dir, "missing.json"), &missing))

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0o644))
	assert.Error(t, UnmarshalFile(badPath, &missing))
}

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func TestCloseAll(t *testing.T) {
	first := &fakeCloser{err: assert.AnError}
	second := &fakeCloser{}

	err := CloseAll(first, second)
	require.Error(t, err)
	assert.True(t, first.closed)
	assert.True(t, second.closed, "a failing closer must not stop the remaining ones")

	assert.NoError(t, CloseAll(&fakeCloser{}, &fakeCloser{}))
}

func TestTernary(t *testing.T) {
	assert.Equal(t, "a", Ternary(true, "a", "b").(string))
	assert.Equal(t, "b", Ternary(false, "a", "b").(string))
}
