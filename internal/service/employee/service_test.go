package employee

import (
	"context"
	"testing"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
	nextID    int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[int64]employee.Employee{}, nextID: 1}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = f.nextID
	f.nextID++
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
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
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

type fakeUserRepo struct {
	users  map[int64]user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]user.User{}, nextID: 1}
}

func (f *fakeUserRepo) seed(u user.User) user.User {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	return f.seed(u), nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmployeeID(ctx context.Context, employeeID int64) (user.User, error) {
	for _, u := range f.users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	for id, u := range f.users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			delete(f.users, id)
		}
	}
	return nil
}

type stubEmailService struct {
	sent []string
}

func (s *stubEmailService) SendAccountCreated(to, employeeName, username, defaultPassword string) error {
	s.sent = append(s.sent, to)
	return nil
}

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo, *fakeUserRepo, *stubEmailService) {
	empRepo := newFakeEmployeeRepo()
	userRepo := newFakeUserRepo()
	emails := &stubEmailService{}
	svc := NewEmployeeService(empRepo, userRepo, nil, nil, emails)
	return svc, empRepo, userRepo, emails
}

func strPtr(s string) *string {
	return &s
}

func TestCreate_CreatesLoginAccount(t *testing.T) {
	svc, _, userRepo, emails := newTestService()
	ctx := context.Background()

	res, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:  "Nguyen Van A",
		Phone: strPtr("0901234567"),
		Email: strPtr("a@example.com"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	account, err := userRepo.GetByUsername(ctx, "0901234567")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, account.Role)
	require.NotNil(t, account.EmployeeID)
	assert.Equal(t, res.Employee.ID, *account.EmployeeID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(DefaultPassword)))
	assert.Equal(t, []string{"a@example.com"}, emails.sent)
}

func TestCreate_RejectsPhoneUsedAsUsername(t *testing.T) {
	svc, empRepo, userRepo, _ := newTestService()
	userRepo.seed(user.User{Username: "0901234567", Role: user.RoleAdmin})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:  "Nguyen Van B",
		Phone: strPtr("0901234567"),
	})
	assert.ErrorIs(t, err, employee.ErrPhoneUsedAsUsername)
	assert.Empty(t, empRepo.employees)
}

func TestUpdate_RejectsCollidingPhone(t *testing.T) {
	svc, empRepo, userRepo, _ := newTestService()
	ctx := context.Background()

	// Someone else already logs in with the target number.
	userRepo.seed(user.User{Username: "0907654321", Role: user.RoleAdmin})
	e, err := empRepo.Create(ctx, employee.Employee{Name: "Nguyen Van A", Phone: strPtr("0901234567")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, e.ID, employee.UpdateEmployeeRequest{
		Name:  "Nguyen Van A",
		Phone: strPtr("0907654321"),
	})
	assert.ErrorIs(t, err, employee.ErrPhoneUsedAsUsername)
}

func TestUpdate_RenamesLoginAccount(t *testing.T) {
	svc, empRepo, userRepo, _ := newTestService()
	ctx := context.Background()

	e, err := empRepo.Create(ctx, employee.Employee{Name: "Nguyen Van A", Phone: strPtr("0901234567")})
	require.NoError(t, err)
	userRepo.seed(user.User{Username: "0901234567", Role: user.RoleEmployee, EmployeeID: &e.ID})

	res, err := svc.Update(ctx, e.ID, employee.UpdateEmployeeRequest{
		Name:  "Nguyen Van A",
		Phone: strPtr("0907654321"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	account, err := userRepo.GetByEmployeeID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "0907654321", account.Username)

	_, err = userRepo.GetByUsername(ctx, "0901234567")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdate_CreatesMissingAccount(t *testing.T) {
	svc, empRepo, userRepo, _ := newTestService()
	ctx := context.Background()

	e, err := empRepo.Create(ctx, employee.Employee{Name: "Nguyen Van A"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, e.ID, employee.UpdateEmployeeRequest{
		Name:  "Nguyen Van A",
		Phone: strPtr("0351234567"),
	})
	require.NoError(t, err)

	account, err := userRepo.GetByUsername(ctx, "0351234567")
	require.NoError(t, err)
	require.NotNil(t, account.EmployeeID)
	assert.Equal(t, e.ID, *account.EmployeeID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(DefaultPassword)))
}

func TestUpdate_SamePhoneKeepsAccount(t *testing.T) {
	svc, empRepo, userRepo, _ := newTestService()
	ctx := context.Background()

	e, err := empRepo.Create(ctx, employee.Employee{Name: "Nguyen Van A", Phone: strPtr("0901234567")})
	require.NoError(t, err)
	userRepo.seed(user.User{Username: "0901234567", Role: user.RoleEmployee, EmployeeID: &e.ID})

	res, err := svc.Update(ctx, e.ID, employee.UpdateEmployeeRequest{
		Name:  "Nguyen Van A doi ten",
		Phone: strPtr("0901234567"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "Nguyen Van A doi ten", res.Employee.Name)

	account, err := userRepo.GetByEmployeeID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "0901234567", account.Username)
}
