package gl

import "unsafe"

// maxDriverStringLen bounds the scan for a null terminator when reading
// driver-owned strings. Version and extension strings are at most a few
// kilobytes; anything past 1MB indicates memory corruption.
const maxDriverStringLen = 1 << 20

// CstringToGo copies a driver-owned null-terminated string into a Go
// string. A null pointer yields the empty string.
func CstringToGo(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), maxDriverStringLen)
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// GoToCstring converts a Go string to a null-terminated byte slice and a
// pointer to its first byte. The caller must keep the returned slice alive
// (runtime.KeepAlive) until the driver has finished reading through the
// pointer.
func GoToCstring(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}
