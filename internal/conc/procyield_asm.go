//go:build amd64 || arm64

package conc

// procyield executes cycles CPU pause instructions.
func procyield(cycles uint32)
