package file

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) FileService {
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewFileService(s)
}

func TestUploadFacePhoto(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	path, err := svc.UploadFacePhoto(ctx, 7, strings.NewReader("img"), "face.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "faces/7-"), path)
	assert.True(t, strings.HasSuffix(path, ".png"), path)

	exists, err := svc.FileExists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUploadFacePhoto_RejectsUnknownExtension(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UploadFacePhoto(context.Background(), 7, strings.NewReader("x"), "face.gif")
	assert.Error(t, err)
}

func TestUploadCheckInPhoto(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 16, 7, 55, 0, 0, time.UTC)

	path, err := svc.UploadCheckInPhoto(ctx, 3, day, strings.NewReader("snap"), "snapshot.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "checkins/2026-03-16/3-"), path)
	assert.True(t, strings.HasSuffix(path, ".jpg"), path)

	exists, err := svc.FileExists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUploadReportArtifact(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	path, err := svc.UploadReportArtifact(ctx, "Report_Employee_20260316075500.csv", strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, "reports/Report_Employee_20260316075500.csv", path)

	rc, err := svc.DownloadFile(ctx, path)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}
