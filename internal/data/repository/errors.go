package repository

import "errors"

// ErrNotFound is wrapped into errors for updates and deletes that matched no
// row, so services can map it with errors.Is.
var ErrNotFound = errors.New("not found")
