package gl

import (
	"runtime"
	"strings"
	"testing"
	"unsafe"
)

func TestCstringToGo(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"simple", "4.6.0 NVIDIA 535.104.05"},
		{"empty", ""},
		{"extension token", "GL_ARB_vertex_array_object"},
		{"long", strings.Repeat("GL_EXT_x ", 512)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(tt.in), 0)
			got := CstringToGo(uintptr(unsafe.Pointer(&buf[0])))
			runtime.KeepAlive(buf)
			if got != tt.in {
				t.Errorf("CstringToGo() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestCstringToGoNullPointer(t *testing.T) {
	if got := CstringToGo(0); got != "" {
		t.Errorf("CstringToGo(0) = %q, want empty", got)
	}
}

func TestCstringToGoStopsAtTerminator(t *testing.T) {
	buf := []byte("glXGetProcAddressARB\x00trailing garbage")
	got := CstringToGo(uintptr(unsafe.Pointer(&buf[0])))
	runtime.KeepAlive(buf)
	if got != "glXGetProcAddressARB" {
		t.Errorf("CstringToGo() = %q, read past the terminator", got)
	}
}

func TestGoToCstring(t *testing.T) {
	buf, ptr := GoToCstring("glClear")
	if len(buf) != len("glClear")+1 {
		t.Fatalf("buffer length = %d, want %d", len(buf), len("glClear")+1)
	}
	if buf[len(buf)-1] != 0 {
		t.Error("buffer is not null terminated")
	}
	if ptr != uintptr(unsafe.Pointer(&buf[0])) {
		t.Error("pointer does not reference the buffer's first byte")
	}
	if string(buf[:len(buf)-1]) != "glClear" {
		t.Errorf("buffer content = %q", buf[:len(buf)-1])
	}
	runtime.KeepAlive(buf)
}

func TestGoToCstringRoundTrip(t *testing.T) {
	buf, ptr := GoToCstring("eglGetProcAddress")
	if got := CstringToGo(ptr); got != "eglGetProcAddress" {
		t.Errorf("round trip = %q", got)
	}
	runtime.KeepAlive(buf)
}
