package shift

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	employee.EmployeeRepository
}

func NewShiftService(shiftRepository shift.ShiftRepository, employeeRepository employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:    shiftRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	employeeData, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsOvertime:   req.IsOvertime,
		OvertimeNote: req.OvertimeNote,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	created.EmployeeName = &employeeData.Name
	return shift.ToResponse(created), nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id int64) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, id int64, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.EmployeeID != existing.EmployeeID {
		if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing.EmployeeID = req.EmployeeID
	existing.Date = date
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.IsOvertime = req.IsOvertime
	existing.OvertimeNote = req.OvertimeNote

	if err := s.ShiftRepository.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.Get(ctx, id)
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.ShiftRepository.Delete(ctx, id)
}
