//go:build darwin

package gl

// Apple's framework exposes every entry point, extensions included, through
// its symbol table; there is no separate proc address primitive. Resolution
// falls through to plain symbol lookup on the driver handle.
func bindProcAddress(*Loader, uintptr) func(string) uintptr {
	return nil
}
