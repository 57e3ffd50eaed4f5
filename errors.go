package semalock

import "errors"

// ErrLockContended is returned by non-blocking acquisitions when the permits
// they asked for are not available.
var ErrLockContended = errors.New("semalock: tried to access a contended lock")
