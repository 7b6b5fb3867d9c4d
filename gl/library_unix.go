//go:build linux || freebsd

package gl

import (
	"github.com/ebitengine/purego"
)

func loadLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil || handle == 0 {
		return 0, err
	}
	return handle, nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}

// Search directories on POSIX systems only influence discovery; the dynamic
// linker's own path list is fixed at process start.
func addNativeSearchDirectory(string) error { return nil }
