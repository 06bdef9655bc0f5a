package employee

import (
	"testing"

	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePhoneError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "phone")
}

func TestCreateEmployeeRequest_ValidatePhone(t *testing.T) {
	req := CreateEmployeeRequest{Name: "Nguyen Van A"}

	for _, phone := range []string{"0901234567", "0351234567", "+841234567890"} {
		req.Phone = &phone
		assert.NoError(t, req.Validate(), phone)
	}

	bad := "0812abc34567"
	req.Phone = &bad
	requirePhoneError(t, req.Validate())
}

func TestUpdateEmployeeRequest_ValidatePhone(t *testing.T) {
	req := UpdateEmployeeRequest{Name: "Nguyen Van A"}

	phone := "0901234567"
	req.Phone = &phone
	assert.NoError(t, req.Validate())

	bad := "12345"
	req.Phone = &bad
	requirePhoneError(t, req.Validate())
}
