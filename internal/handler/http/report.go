package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/auth"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/facetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type ReportHandler interface {
	ListReports(w http.ResponseWriter, r *http.Request)
	GenerateReport(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
	DeleteReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ListReports implements ReportHandler
func (h *reportHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateReport implements ReportHandler
func (h *reportHandlerImpl) GenerateReport(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	createdBy, ok := jwt.UserIDFromClaims(claims)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req report.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.Generate(r.Context(), createdBy, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report generated", result)
}

// DownloadReport implements ReportHandler - streams the CSV artifact
func (h *reportHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Report ID is required", nil)
		return
	}

	download, err := h.reportService.Download(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer download.Content.Close()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
	if _, err := io.Copy(w, download.Content); err != nil {
		slog.Error("Failed to stream report", "report_id", id, "error", err)
	}
}

// DeleteReport implements ReportHandler
func (h *reportHandlerImpl) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Report ID is required", nil)
		return
	}

	if err := h.reportService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report deleted", nil)
}
