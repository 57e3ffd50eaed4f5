package semalock

import "sync"

// GuardMarker tells a guard layer whether a lock may be released by a
// goroutine other than the one that acquired it.
type GuardMarker uint8

const (
	// GuardNoSend locks must be released where they were acquired.
	GuardNoSend GuardMarker = iota
	// GuardSend locks may be released from any goroutine.
	GuardSend
)

func (m GuardMarker) String() string {
	switch m {
	case GuardNoSend:
		return "GuardNoSend"
	case GuardSend:
		return "GuardSend"
	default:
		return "GuardMarker(?)"
	}
}

// RawMutex is the capability a guard layer needs from an exclusive lock. It
// carries no data; pairing the lock with what it protects, and making sure
// Unlock is called exactly once per successful Lock or TryLock, is the guard
// layer's job.
type RawMutex interface {
	sync.Locker
	TryLock() bool
	GuardMarker() GuardMarker
}

// RawRWLock is the capability a guard layer needs from a reader/writer lock.
// Lock, TryLock and Unlock are the exclusive side.
type RawRWLock interface {
	RawMutex
	RLock()
	TryRLock() bool
	RUnlock()
}
