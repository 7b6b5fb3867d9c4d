//go:build !linux && !freebsd && !darwin && !windows

package gl

func loadLibrary(string) (uintptr, error) {
	return 0, ErrPlatformUnsupported
}

func getSymbol(uintptr, string) (uintptr, error) {
	return 0, ErrPlatformUnsupported
}

func closeLibrary(uintptr) error { return nil }

func addNativeSearchDirectory(string) error { return nil }
