package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrPhoneUsedAsUsername = errors.New("phone number is already used as a login username")
)
