//go:build linux || freebsd || darwin || windows

package gl

import "github.com/ebitengine/purego"

// nativeCall invokes a resolved entry point with integer/pointer argument
// words. Return values wider than a machine word are not used by any
// registered command.
func nativeCall(addr uintptr, args ...uintptr) uintptr {
	r, _, _ := purego.SyscallN(addr, args...)
	return r
}
