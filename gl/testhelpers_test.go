package gl

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"unsafe"
)

// fakeLoader returns a loader whose symbol lookup is backed by an in-memory
// table and whose OS load primitive always fails. Tests that need Open to
// succeed replace l.load themselves.
func fakeLoader(symbols map[string]uintptr) *Loader {
	l := NewLoader()
	l.load = func(path string) (uintptr, error) {
		return 0, errors.New("unexpected OS load in test")
	}
	l.unload = func(uintptr) error { return nil }
	l.sym = func(_ uintptr, name string) (uintptr, error) {
		if addr, ok := symbols[name]; ok {
			return addr, nil
		}
		return 0, fmt.Errorf("undefined symbol %q", name)
	}
	return l
}

// cptr returns a pointer to a null-terminated copy of s, kept alive for the
// duration of the test.
func cptr(t *testing.T, s string) uintptr {
	t.Helper()
	b := append([]byte(s), 0)
	t.Cleanup(func() { runtime.KeepAlive(b) })
	return uintptr(unsafe.Pointer(&b[0]))
}

// recordingSink captures call records in order.
type recordingSink struct {
	records []CallRecord
}

func (s *recordingSink) Record(rec CallRecord) {
	s.records = append(s.records, rec)
}
