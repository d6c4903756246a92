package repository

import (
	"errors"
)

// ErrNotFound is returned when an id or slug matches no document. Handlers
// translate it to a 404; every other repository error surfaces as a 500.
var ErrNotFound = errors.New("document not found")
