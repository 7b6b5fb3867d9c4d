package gl

import (
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader owns the process-wide cache of native library handles and the
// platform's symbol lookup primitives.
//
// A given path maps to at most one handle for the lifetime of the process.
// Libraries are never unloaded during normal operation; dropping a driver
// mid-flight would invalidate every resolved entry point behind the
// caller's back.
type Loader struct {
	mu      sync.RWMutex
	handles map[string]uintptr
	dirs    []string

	group singleflight.Group

	// procAddr is the platform's dedicated extension lookup primitive
	// (wglGetProcAddress, glXGetProcAddressARB, eglGetProcAddress). Nil
	// until a driver library has been opened, and nil forever on platforms
	// without one.
	procAddr func(name string) uintptr

	// OS primitives, swappable in tests.
	load   func(path string) (uintptr, error)
	sym    func(handle uintptr, name string) (uintptr, error)
	unload func(handle uintptr) error
}

// NewLoader returns a loader with an empty handle cache.
func NewLoader() *Loader {
	return &Loader{
		handles: make(map[string]uintptr),
		load:    loadLibrary,
		sym:     getSymbol,
		unload:  closeLibrary,
	}
}

// Open loads the library at path, or returns the cached handle when the
// path has been opened before. Concurrent calls for the same path perform
// exactly one OS load; calls for different paths do not serialize against
// each other.
func (l *Loader) Open(path string) (uintptr, error) {
	key := filepath.Clean(path)

	l.mu.RLock()
	handle, ok := l.handles[key]
	l.mu.RUnlock()
	if ok {
		return handle, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		// A racing Open may have populated the cache before this call
		// joined the flight.
		l.mu.RLock()
		handle, ok := l.handles[key]
		l.mu.RUnlock()
		if ok {
			return handle, nil
		}

		handle, loadErr := l.load(path)
		if loadErr != nil || handle == 0 {
			return uintptr(0), &LibraryLoadError{Path: path, Err: loadErr}
		}

		l.mu.Lock()
		l.handles[key] = handle
		l.mu.Unlock()
		return handle, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uintptr), nil
}

// Symbol looks up name in the library identified by handle. A missing
// symbol is an expected, common outcome during alias fallback, not an
// error.
func (l *Loader) Symbol(handle uintptr, name string) (uintptr, bool) {
	addr, err := l.sym(handle, name)
	if err != nil || addr == 0 {
		return 0, false
	}
	return addr, true
}

// ProcAddress queries the platform's driver proc address primitive. It
// returns 0 when the platform has no primitive, no driver library has been
// opened yet, or the driver does not export the entry point. Callers fall
// back to Symbol in all three cases.
func (l *Loader) ProcAddress(name string) uintptr {
	l.mu.RLock()
	pa := l.procAddr
	l.mu.RUnlock()
	if pa == nil {
		return 0
	}
	return pa(name)
}

// Close unloads the library at path and drops it from the handle cache.
// Every entry point resolved from the library becomes invalid. Closing a
// path that was never opened is a no-op.
func (l *Loader) Close(path string) error {
	key := filepath.Clean(path)
	l.mu.Lock()
	handle, ok := l.handles[key]
	delete(l.handles, key)
	l.mu.Unlock()
	if !ok {
		return nil
	}
	return l.unload(handle)
}

// AddSearchDirectory appends dir to the directories consulted during driver
// discovery, preserving insertion order. On Windows the directory is also
// handed to the OS loader itself.
func (l *Loader) AddSearchDirectory(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid search directory %q: %w", dir, err)
	}
	if err := addNativeSearchDirectory(abs); err != nil {
		return fmt.Errorf("failed to register search directory %q: %w", abs, err)
	}
	l.mu.Lock()
	l.dirs = append(l.dirs, abs)
	l.mu.Unlock()
	return nil
}

func (l *Loader) searchDirectories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.dirs...)
}

// bindDriver installs the proc address primitive for an opened driver
// library. Rebinding for a different driver replaces the previous one.
func (l *Loader) bindDriver(handle uintptr) {
	pa := bindProcAddress(l, handle)
	l.mu.Lock()
	l.procAddr = pa
	l.mu.Unlock()
}
