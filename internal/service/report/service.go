package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
)

type ReportServiceImpl struct {
	report.ReportRepository
	fileService file.FileService
}

func NewReportService(reportRepository report.ReportRepository, fileService file.FileService) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepository,
		fileService:      fileService,
	}
}

// Generate implements report.ReportService.
// The CSV artifact is written first; the metadata row only exists once the
// file it points at does.
func (s *ReportServiceImpl) Generate(ctx context.Context, createdBy int64, req report.GenerateReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	var content []byte
	var err error

	switch req.Type {
	case report.TypeAttendance:
		start, end := parseRange(req.StartDate, req.EndDate)
		rows, rowsErr := s.ReportRepository.AttendanceRows(ctx, start, end)
		if rowsErr != nil {
			return report.ReportResponse{}, rowsErr
		}
		content, err = BuildAttendanceCSV(rows)
	case report.TypeEmployee:
		rows, rowsErr := s.ReportRepository.EmployeeRows(ctx)
		if rowsErr != nil {
			return report.ReportResponse{}, rowsErr
		}
		content, err = BuildEmployeeCSV(rows)
	}
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to render report: %w", err)
	}

	filename := fmt.Sprintf("Report_%s_%s.csv", req.Type, time.Now().Format("20060102150405"))

	filePath, err := s.fileService.UploadReportArtifact(ctx, filename, bytes.NewReader(content))
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to store report artifact: %w", err)
	}

	created, err := s.ReportRepository.Create(ctx, report.Report{
		Type:      req.Type,
		FilePath:  filePath,
		CreatedBy: createdBy,
	})
	if err != nil {
		return report.ReportResponse{}, err
	}

	return report.ToResponse(created), nil
}

// parseRange widens the optional date bounds to cover the full end day.
func parseRange(startDate, endDate *string) (start, end *time.Time) {
	if startDate != nil {
		if t, err := time.Parse("2006-01-02", *startDate); err == nil {
			start = &t
		}
	}
	if endDate != nil {
		if t, err := time.Parse("2006-01-02", *endDate); err == nil {
			eod := t.Add(24*time.Hour - time.Nanosecond)
			end = &eod
		}
	}
	return start, end
}

// List implements report.ReportService.
func (s *ReportServiceImpl) List(ctx context.Context) ([]report.ReportResponse, error) {
	reports, err := s.ReportRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, report.ToResponse(r))
	}
	return responses, nil
}

// Download implements report.ReportService.
func (s *ReportServiceImpl) Download(ctx context.Context, id int64) (report.Download, error) {
	rep, err := s.ReportRepository.GetByID(ctx, id)
	if err != nil {
		return report.Download{}, err
	}

	exists, err := s.fileService.FileExists(ctx, rep.FilePath)
	if err != nil {
		return report.Download{}, fmt.Errorf("failed to check report artifact: %w", err)
	}
	if !exists {
		return report.Download{}, report.ErrFileMissing
	}

	content, err := s.fileService.DownloadFile(ctx, rep.FilePath)
	if err != nil {
		return report.Download{}, fmt.Errorf("failed to open report artifact: %w", err)
	}

	return report.Download{
		FileName: path.Base(rep.FilePath),
		Content:  content,
	}, nil
}

// Delete implements report.ReportService.
// An artifact that is already gone never blocks deleting the row.
func (s *ReportServiceImpl) Delete(ctx context.Context, id int64) error {
	rep, err := s.ReportRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fileService.DeleteFile(ctx, rep.FilePath); err != nil && !errors.Is(err, report.ErrFileMissing) {
		slog.Warn("Failed to delete report artifact", "report_id", id, "path", rep.FilePath, "error", err)
	}

	return s.ReportRepository.Delete(ctx, id)
}
