package domain

import "errors"

// ErrNotFound is returned by repositories when no row matches the requested id.
var ErrNotFound = errors.New("not found")
