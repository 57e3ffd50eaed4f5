// Package semalock is a small locking core: a counting semaphore with a
// pluggable wait strategy, and the raw mutual-exclusion and reader/writer
// locks built on it.
//
// Every lock here is one atomic permit counter. A Mutex is a semaphore with a
// single permit. An RWLock is a semaphore holding every permit a uint64 can
// count: readers take one permit each and a writer takes all of them in one
// step, so it only gets in once every reader and any other writer is gone.
//
// What a goroutine does while it cannot get its permits is chosen by the
// WaitStrategy type parameter:
//
//   - Spin issues CPU pause hints and retries. It needs no scheduler.
//   - Yield hands the processor back to the Go scheduler between attempts.
//     It is left out of builds tagged semalock_freestanding.
//   - NeverBlock panics instead of waiting, for locks that must only ever be
//     taken uncontended.
//
// # Ordering
//
// A successful acquisition happens after the release that made its permits
// available: writes made while holding a lock are visible to the next holder.
// There is no queue, no fairness and no timeout. Under steady read traffic a
// writer on an RWLock may wait forever. Callers that need bounded waiting
// should use the Try methods and apply their own retry policy.
//
// # Release
//
// Unlock, RUnlock and Up return permits that the caller must actually hold.
// The lock does not track owners, so releasing a permit you do not hold
// corrupts the count. Builds tagged semalock_debug check that a release never
// pushes the count above the capacity and panic if it would.
//
// # Initialization
//
// The zero value of every type in this package holds no free permits. Create
// locks with NewMutex, NewRWLock, NewBounded or NewSemaphore, or call Init on
// a lock embedded in another struct before first use.
package semalock
