package errdefer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var err error
		Close(&err, stubCloser{})
		assert.NoError(t, err)
	})

	t.Run("non-nil", func(t *testing.T) {
		t.Parallel()

		give := errors.New("sadness")

		var err error
		Close(&err, stubCloser{err: give})
		assert.ErrorIs(t, err, give)
	})

	t.Run("joined", func(t *testing.T) {
		t.Parallel()

		first := errors.New("write failed")
		second := errors.New("close failed")

		err := first
		Close(&err, stubCloser{err: second})
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	newFile := func(t *testing.T) string {
		path := filepath.Join(t.TempDir(), "out.md")
		require.NoError(t, os.WriteFile(path, []byte("partial"), 0o644))
		return path
	}

	t.Run("success keeps file", func(t *testing.T) {
		t.Parallel()

		path := newFile(t)

		var err error
		Remove(&err, path)
		assert.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("failure removes file", func(t *testing.T) {
		t.Parallel()

		path := newFile(t)
		give := errors.New("great sadness")

		err := give
		Remove(&err, path)
		assert.Equal(t, give, err)
		assert.NoFileExists(t, path)
	})

	t.Run("already gone", func(t *testing.T) {
		t.Parallel()

		give := errors.New("great sadness")

		err := give
		Remove(&err, filepath.Join(t.TempDir(), "never-written.md"))
		assert.Equal(t, give, err)
	})
}

type stubCloser struct {
	err error
}

func (s stubCloser) Close() error {
	return s.err
}
