package employee

import "time"

type Employee struct {
	ID            int64
	Name          string
	Department    *string
	Role          string
	Phone         *string
	Email         *string
	PhotoPath     *string
	FaceEmbedding []byte
	IsLocked      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasFaceID reports whether an embedding has been captured for this employee.
func (e *Employee) HasFaceID() bool {
	return len(e.FaceEmbedding) > 0
}
