package report

import (
	"context"
	"io"
)

// Download bundles the artifact stream with its serving metadata.
type Download struct {
	FileName string
	Content  io.ReadCloser
}

type ReportService interface {
	Generate(ctx context.Context, createdBy int64, req GenerateReportRequest) (ReportResponse, error)
	List(ctx context.Context) ([]ReportResponse, error)
	Download(ctx context.Context, id int64) (Download, error)

	// Delete removes the backing artifact best-effort and then the row; a
	// missing artifact never blocks row deletion.
	Delete(ctx context.Context, id int64) error
}
