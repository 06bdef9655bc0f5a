package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type FileService interface {
	// Face photo uploads
	UploadFacePhoto(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error)

	// Check-in snapshot uploads
	UploadCheckInPhoto(ctx context.Context, employeeID int64, date time.Time, file io.Reader, filename string) (string, error)

	// Report artifact uploads
	UploadReportArtifact(ctx context.Context, filename string, content io.Reader) (string, error)

	// Generic operations
	DownloadFile(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	FileExists(ctx context.Context, path string) (bool, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func imageContentType(ext string) (string, error) {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	}
	return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
}

// UploadFacePhoto stores the enrollment photo for an employee.
func (s *fileServiceImpl) UploadFacePhoto(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, err := imageContentType(ext)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%d-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("faces", newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload face photo: %w", err)
	}

	return uploadedPath, nil
}

// UploadCheckInPhoto stores the snapshot a device captured during check-in.
func (s *fileServiceImpl) UploadCheckInPhoto(ctx context.Context, employeeID int64, date time.Time, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, err := imageContentType(ext)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%d-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("checkins", date.Format("2006-01-02"), newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload check-in photo: %w", err)
	}

	return uploadedPath, nil
}

// UploadReportArtifact stores a generated CSV under reports/.
func (s *fileServiceImpl) UploadReportArtifact(ctx context.Context, filename string, content io.Reader) (string, error) {
	path := filepath.Join("reports", filename)

	uploadedPath, err := s.storage.Upload(ctx, content, path, "text/csv; charset=utf-8")
	if err != nil {
		return "", fmt.Errorf("failed to upload report artifact: %w", err)
	}

	return uploadedPath, nil
}

// DownloadFile opens a stored file for reading.
func (s *fileServiceImpl) DownloadFile(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

// DeleteFile removes a file from storage. Deleting a missing file is not
// an error.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// FileExists checks whether a file exists in storage.
func (s *fileServiceImpl) FileExists(ctx context.Context, path string) (bool, error) {
	return s.storage.Exists(ctx, path)
}
