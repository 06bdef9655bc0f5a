package device

import "time"

type Device struct {
	ID       int64
	Name     string
	Location *string
	APIKey   string
	LastSeen *time.Time
}
