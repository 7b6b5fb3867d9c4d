//go:build !linux && !freebsd && !darwin && !windows

package gl

func bindProcAddress(*Loader, uintptr) func(string) uintptr {
	return nil
}
