package semalock

import (
	"fmt"
	"sync"
)

// RWLock is a reader/writer lock backed by a semaphore of capacity Max.
// A reader takes one permit. A writer takes every permit in one step, which
// only succeeds once all readers and any other writer have released.
//
// Readers and writers are not ordered. A waiting writer competes with each
// new reader attempt by attempt, so under sustained read load it may never
// get in.
//
// Use NewRWLock, or Init on an embedded RWLock, before first use. An RWLock
// must not be copied after first use.
type RWLock[S WaitStrategy] struct {
	sem Bounded[Max, S]
}

var _ RawRWLock = (*RWLock[Spin])(nil)

// NewRWLock returns an unlocked RWLock.
func NewRWLock[S WaitStrategy]() *RWLock[S] {
	rw := new(RWLock[S])
	rw.Init()
	return rw
}

// Init puts rw in the unlocked state.
func (rw *RWLock[S]) Init() {
	rw.sem.Init()
}

// RLock locks rw for reading.
func (rw *RWLock[S]) RLock() {
	rw.sem.Down()
}

// TryRLock locks rw for reading if no writer holds it and reports whether it
// did.
func (rw *RWLock[S]) TryRLock() bool {
	return rw.sem.TryDown() == nil
}

// RUnlock undoes a single RLock or successful TryRLock.
func (rw *RWLock[S]) RUnlock() {
	rw.sem.Up()
}

// Lock locks rw for writing, waiting until no reader or writer holds it.
func (rw *RWLock[S]) Lock() {
	rw.sem.DownN(rw.sem.Capacity())
}

// TryLock locks rw for writing if nobody holds it and reports whether it did.
func (rw *RWLock[S]) TryLock() bool {
	return rw.sem.TryDownN(rw.sem.Capacity()) == nil
}

// Unlock undoes a Lock or successful TryLock.
func (rw *RWLock[S]) Unlock() {
	rw.sem.UpN(rw.sem.Capacity())
}

// GuardMarker returns GuardSend.
func (*RWLock[S]) GuardMarker() GuardMarker {
	return GuardSend
}

func (rw *RWLock[S]) String() string {
	switch free := rw.sem.Available(); free {
	case 0:
		return "RWLock(write-locked)"
	case rw.sem.Capacity():
		return "RWLock(unlocked)"
	default:
		return fmt.Sprintf("RWLock(readers=%d)", rw.sem.Capacity()-free)
	}
}

// RLocker returns a Locker interface that implements
// the Lock and Unlock methods by calling rw.RLock and rw.RUnlock.
func (rw *RWLock[S]) RLocker() sync.Locker {
	return (*rlocker[S])(rw)
}

type rlocker[S WaitStrategy] RWLock[S]

func (r *rlocker[S]) Lock()   { (*RWLock[S])(r).RLock() }
func (r *rlocker[S]) Unlock() { (*RWLock[S])(r).RUnlock() }
