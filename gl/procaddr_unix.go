//go:build linux || freebsd

package gl

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// glXGetProcAddressARB is the form every GLX driver must export; the plain
// name arrived with GLX 1.4 and eglGetProcAddress covers EGL-only stacks.
var procAddressSymbols = []string{
	"glXGetProcAddressARB",
	"glXGetProcAddress",
	"eglGetProcAddress",
}

func bindProcAddress(l *Loader, driver uintptr) func(string) uintptr {
	for _, symbol := range procAddressSymbols {
		addr, ok := l.Symbol(driver, symbol)
		if !ok {
			continue
		}
		return func(name string) uintptr {
			buf, ptr := GoToCstring(name)
			r, _, _ := purego.SyscallN(addr, ptr)
			runtime.KeepAlive(buf)
			return r
		}
	}
	return nil
}
