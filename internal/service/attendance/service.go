package attendance

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/shift"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
)

// historyLimit caps the mobile history feed.
const historyLimit = 100

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	fileService file.FileService
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	shiftRepository shift.ShiftRepository,
	fileService file.FileService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		ShiftRepository:      shiftRepository,
		fileService:          fileService,
	}
}

// Create implements attendance.AttendanceService.
// Manual record entry from the console; the timestamp and status are taken
// as given.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Status:     req.Status,
		PhotoPath:  req.PhotoPath,
		DeviceID:   req.DeviceID,
	}
	if req.TimestampIn != nil {
		ts, err := time.Parse(time.RFC3339, *req.TimestampIn)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse timestamp_in: %w", err)
		}
		record.TimestampIn = &ts
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
	a, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(a), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.ToResponse(a))
	}
	return responses, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// CheckIn implements attendance.AttendanceService.
// A device posts this after it recognized an employee. One check-in per
// employee per calendar day; the status is judged against today's shift
// when one is scheduled, otherwise against the default cutoff.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, deviceID int64, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeData, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if employeeData.IsLocked {
		return attendance.AttendanceResponse{}, attendance.ErrEmployeeLocked
	}

	now := time.Now()

	alreadyIn, err := s.AttendanceRepository.HasCheckedInOn(ctx, req.EmployeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if alreadyIn {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	todayShift, err := s.ShiftRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var shiftStart *time.Time
	var shiftID *int64
	if todayShift != nil {
		start, err := todayShift.StartOnDate()
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve shift start: %w", err)
		}
		shiftStart = &start
		shiftID = &todayShift.ID
	}

	status := attendance.ClassifyCheckIn(now, shiftStart)

	var photoPath *string
	if req.PhotoBase64 != nil && *req.PhotoBase64 != "" {
		if p := s.storeSnapshot(ctx, req.EmployeeID, now, *req.PhotoBase64); p != "" {
			photoPath = &p
		}
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		TimestampIn: &now,
		Status:      &status,
		PhotoPath:   photoPath,
		DeviceID:    deviceID,
		ShiftID:     shiftID,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// storeSnapshot decodes and stores the camera snapshot. A lost snapshot
// never blocks the check-in; the record simply has no photo.
func (s *AttendanceServiceImpl) storeSnapshot(ctx context.Context, employeeID int64, day time.Time, encoded string) string {
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		slog.Warn("Failed to decode check-in snapshot", "employee_id", employeeID, "error", err)
		return ""
	}

	path, err := s.fileService.UploadCheckInPhoto(ctx, employeeID, day, bytes.NewReader(image), "snapshot.jpg")
	if err != nil {
		slog.Warn("Failed to store check-in snapshot", "employee_id", employeeID, "error", err)
		return ""
	}

	return path
}

// EmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EmployeeHistory(ctx context.Context, employeeID int64) ([]attendance.AttendanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, historyLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.ToResponse(a))
	}
	return responses, nil
}
