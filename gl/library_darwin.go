//go:build darwin

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

// getSymbol tries the plain symbol name first and then the
// underscore-prefixed form that the legacy Mach-O symbol table API
// (NSLookupAndBindSymbol) required. Old framework builds still export some
// entry points only under the prefixed name.
func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, symbol)
	if err == nil && addr != 0 {
		return addr, nil
	}
	return purego.Dlsym(handle, "_"+symbol)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}

// The OpenGL framework lives at a fixed path; search directories only
// influence discovery of vendor-supplied dylibs.
func addNativeSearchDirectory(string) error { return nil }
