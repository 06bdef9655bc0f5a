package report

import "errors"

var (
	ErrReportNotFound = errors.New("report not found")
	ErrFileMissing    = errors.New("report file does not exist")
)
