//go:build !semalock_explore

package conc

// Exploring reports whether the interleaving explorer is compiled in.
const Exploring = false

// spinCycles matches the runtime's active spin count.
const spinCycles = 30

func interleave() {}

// SetSeed selects the interleaving schedule. It has no effect unless the
// module is built with the semalock_explore tag.
func SetSeed(uint64) {}

// Spin issues a short burst of CPU pause hints without giving up the
// processor.
func Spin() {
	procyield(spinCycles)
}
