package services

import "errors"

// ErrNotFound is returned by point reads when no row has the requested id.
var ErrNotFound = errors.New("not found")
