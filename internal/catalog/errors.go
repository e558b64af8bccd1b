package catalog

import "errors"

// ErrPropertyNotFound is returned when no property matches the given id.
var ErrPropertyNotFound = errors.New("property not found")
