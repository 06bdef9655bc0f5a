package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadDownload(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("hello"), "reports/Report_Employee_20260316.csv", "text/csv")
	require.NoError(t, err)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalStorage_Exists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "faces/missing.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	path, err := s.Upload(ctx, strings.NewReader("img"), "faces/1.jpg", "image/jpeg")
	require.NoError(t, err)

	exists, err = s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Deleting a file that is already gone must not fail; report cleanup
	// relies on this.
	assert.NoError(t, s.Delete(ctx, "reports/already-gone.csv"))
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("x"), "faces/2.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, path))

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, strings.NewReader("x"), "../outside.txt", "text/plain")
	assert.Error(t, err)
}
