//go:build windows

package gl

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// wglGetProcAddress reports failure through a small set of sentinel values,
// not null alone.
func wglLookupFailed(r uintptr) bool {
	switch r {
	case 0, 1, 2, 3, ^uintptr(0):
		return true
	}
	return false
}

func bindProcAddress(l *Loader, driver uintptr) func(string) uintptr {
	addr, ok := l.Symbol(driver, "wglGetProcAddress")
	if !ok {
		return nil
	}
	return func(name string) uintptr {
		buf, ptr := GoToCstring(name)
		r, _, _ := purego.SyscallN(addr, ptr)
		runtime.KeepAlive(buf)
		if wglLookupFailed(r) {
			return 0
		}
		return r
	}
}
