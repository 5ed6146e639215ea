package employees

import "errors"

var (
	ErrNotFound            = errors.New("employee not found")
	ErrDuplicateEmployeeID = errors.New("employee id already exists")
)
