//go:build !linux && !freebsd && !darwin && !windows

package gl

// Unsupported platforms never resolve an entry point, so this is
// unreachable; it exists to keep the package compiling everywhere.
func nativeCall(uintptr, ...uintptr) uintptr { return 0 }
