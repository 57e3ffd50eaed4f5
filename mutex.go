package semalock

// Mutex is a mutual exclusion lock backed by a one-permit semaphore.
//
// A Mutex is not tied to a goroutine: one goroutine may Lock it and another
// Unlock it. Use NewMutex, or Init on an embedded Mutex, before first use. A
// Mutex must not be copied after first use.
type Mutex[S WaitStrategy] struct {
	sem Bounded[One, S]
}

var _ RawMutex = (*Mutex[Spin])(nil)

// NewMutex returns an unlocked mutex.
func NewMutex[S WaitStrategy]() *Mutex[S] {
	m := new(Mutex[S])
	m.Init()
	return m
}

// Init puts m in the unlocked state.
func (m *Mutex[S]) Init() {
	m.sem.Init()
}

// TryLock locks m if it is free and reports whether it did.
func (m *Mutex[S]) TryLock() bool {
	return m.sem.TryDown() == nil
}

// Lock locks m, waiting with S until it is free.
func (m *Mutex[S]) Lock() {
	m.sem.Down()
}

// Unlock unlocks m. The caller must have locked it; m cannot tell who did.
func (m *Mutex[S]) Unlock() {
	m.sem.Up()
}

// GuardMarker returns GuardSend.
func (*Mutex[S]) GuardMarker() GuardMarker {
	return GuardSend
}

func (m *Mutex[S]) String() string {
	if m.sem.Available() == 0 {
		return "Mutex(locked)"
	}
	return "Mutex(unlocked)"
}
