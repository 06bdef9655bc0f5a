package attendance

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/shift"
	"github.com/facetrack/attendance-backend-go/internal/pkg/storage"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records   map[int64]attendance.Attendance
	nextID    int64
	checkedIn map[int64]bool
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records:   map[int64]attendance.Attendance{},
		nextID:    1,
		checkedIn: map[int64]bool{},
	}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	a.ID = f.nextID
	f.nextID++
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.EmployeeID == employeeID && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) HasCheckedInOn(ctx context.Context, employeeID int64, day time.Time) (bool, error) {
	return f.checkedIn[employeeID], nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id int64) error {
	delete(f.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateEmbedding(ctx context.Context, id int64, photoPath *string, embedding []byte) error {
	return nil
}

func (f *fakeEmployeeRepo) SetLocked(ctx context.Context, id int64, locked bool) (employee.Employee, error) {
	e := f.employees[id]
	e.IsLocked = locked
	f.employees[id] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	delete(f.employees, id)
	return nil
}

type fakeShiftRepo struct {
	byEmployee map[int64]*shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*shift.Shift, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func newTestService(t *testing.T) (*AttendanceServiceImpl, *fakeAttendanceRepo, *fakeEmployeeRepo, *fakeShiftRepo) {
	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{employees: map[int64]employee.Employee{}}
	shiftRepo := &fakeShiftRepo{byEmployee: map[int64]*shift.Shift{}}

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	svc := NewAttendanceService(attRepo, empRepo, shiftRepo, file.NewFileService(store)).(*AttendanceServiceImpl)
	return svc, attRepo, empRepo, shiftRepo
}

func TestCheckIn_RecordsAttendance(t *testing.T) {
	svc, attRepo, empRepo, _ := newTestService(t)
	empRepo.employees[1] = employee.Employee{ID: 1, Name: "Nguyen Van A"}

	resp, err := svc.CheckIn(context.Background(), 4, attendance.CheckInRequest{EmployeeID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.EmployeeID)
	assert.Equal(t, int64(4), resp.DeviceID)
	require.NotNil(t, resp.TimestampIn)
	require.NotNil(t, resp.Status)
	assert.Contains(t, []string{attendance.StatusPresent, attendance.StatusLate}, *resp.Status)
	assert.Len(t, attRepo.records, 1)
}

func TestCheckIn_LockedEmployee(t *testing.T) {
	svc, attRepo, empRepo, _ := newTestService(t)
	empRepo.employees[1] = employee.Employee{ID: 1, IsLocked: true}

	_, err := svc.CheckIn(context.Background(), 4, attendance.CheckInRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, attendance.ErrEmployeeLocked)
	assert.Empty(t, attRepo.records)
}

func TestCheckIn_OncePerDay(t *testing.T) {
	svc, attRepo, empRepo, _ := newTestService(t)
	empRepo.employees[1] = employee.Employee{ID: 1}
	attRepo.checkedIn[1] = true

	_, err := svc.CheckIn(context.Background(), 4, attendance.CheckInRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CheckIn(context.Background(), 4, attendance.CheckInRequest{EmployeeID: 99})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckIn_StoresSnapshot(t *testing.T) {
	svc, _, empRepo, _ := newTestService(t)
	empRepo.employees[1] = employee.Employee{ID: 1}

	encoded := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
	resp, err := svc.CheckIn(context.Background(), 4, attendance.CheckInRequest{
		EmployeeID:  1,
		PhotoBase64: &encoded,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.PhotoPath)
	assert.True(t, strings.HasPrefix(*resp.PhotoPath, "checkins/"), *resp.PhotoPath)

	exists, err := svc.fileService.FileExists(context.Background(), *resp.PhotoPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCheckIn_BadSnapshotDoesNotBlock(t *testing.T) {
	svc, _, empRepo, _ := newTestService(t)
	empRepo.employees[1] = employee.Employee{ID: 1}

	bad := "not base64!!!"
	resp, err := svc.CheckIn(context.Background(), 4, attendance.CheckInRequest{
		EmployeeID:  1,
		PhotoBase64: &bad,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.PhotoPath)
}

func TestCheckIn_AttachesTodayShift(t *testing.T) {
	svc, attRepo, empRepo, shiftRepo := newTestService(t)
	empRepo.employees[1] = employee.Employee{ID: 1}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	shiftRepo.byEmployee[1] = &shift.Shift{ID: 9, EmployeeID: 1, Date: today, StartTime: "00:00", EndTime: "23:59"}

	resp, err := svc.CheckIn(context.Background(), 4, attendance.CheckInRequest{EmployeeID: 1})
	require.NoError(t, err)

	rec := attRepo.records[resp.ID]
	require.NotNil(t, rec.ShiftID)
	assert.Equal(t, int64(9), *rec.ShiftID)
}
