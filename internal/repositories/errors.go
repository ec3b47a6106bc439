package repositories

import "errors"

// ErrNotFound is returned (possibly wrapped) by any repository lookup that
// matches no record.
var ErrNotFound = errors.New("record not found")
