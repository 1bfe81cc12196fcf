package repository

import "errors"

// ErrNotFound is returned by lookups whose identifier matched no row.
// Write operations do not return it: zero matched rows is reported through
// the rows-affected count instead.
var ErrNotFound = errors.New("record not found")
