package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameExists        = errors.New("username already registered")
	ErrInvalidRole           = errors.New("invalid role")
	ErrWrongCurrentPassword  = errors.New("current password is incorrect")
	ErrPasswordMismatch      = errors.New("new password confirmation does not match")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrEmployeeAlreadyLinked = errors.New("employee already has a user account")
)
