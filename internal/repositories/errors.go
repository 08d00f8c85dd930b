package repositories

import "errors"

// ErrNotFound is returned when no row matches the requested id and owner.
// Callers detect it with errors.Is.
var ErrNotFound = errors.New("record not found")
