package glcmd

import (
	"errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/amikos-tech/pure-gl/gl"
)

// fakeDispatcher records dispatched commands and plays back scripted
// behavior per command name.
type fakeDispatcher struct {
	calls   []dispatchedCall
	results map[string]uintptr
	handler map[string]func(args []uintptr) uintptr
	err     error
}

type dispatchedCall struct {
	name string
	args []uintptr
}

func (d *fakeDispatcher) Call(name string, args ...uintptr) (uintptr, error) {
	d.calls = append(d.calls, dispatchedCall{name: name, args: args})
	if d.err != nil {
		return 0, d.err
	}
	if h, ok := d.handler[name]; ok {
		return h(args), nil
	}
	return d.results[name], nil
}

func (d *fakeDispatcher) lastCall(t *testing.T) dispatchedCall {
	t.Helper()
	if len(d.calls) == 0 {
		t.Fatal("no command was dispatched")
	}
	return d.calls[len(d.calls)-1]
}

func newCommands(t *testing.T, d Dispatcher) *Commands {
	t.Helper()
	c, err := New(d)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewRejectsNilDispatcher(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected an error")
	}
}

func TestGetString(t *testing.T) {
	version := append([]byte("4.6.0 Core Profile"), 0)
	d := &fakeDispatcher{results: map[string]uintptr{
		"GetString": uintptr(unsafe.Pointer(&version[0])),
	}}
	c := newCommands(t, d)

	got, err := c.GetString(gl.VERSION)
	runtime.KeepAlive(version)
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if got != "4.6.0 Core Profile" {
		t.Errorf("GetString() = %q", got)
	}

	call := d.lastCall(t)
	if call.name != "GetString" || len(call.args) != 1 || call.args[0] != gl.VERSION {
		t.Errorf("dispatched %+v", call)
	}
}

func TestGetStringRejectsUnknownName(t *testing.T) {
	d := &fakeDispatcher{}
	c := newCommands(t, d)

	if _, err := c.GetString(0xDEAD); err == nil {
		t.Error("expected a validation error")
	}
	if len(d.calls) != 0 {
		t.Error("invalid query reached the dispatcher")
	}
}

func TestGetStringi(t *testing.T) {
	token := append([]byte("GL_KHR_debug"), 0)
	d := &fakeDispatcher{results: map[string]uintptr{
		"GetStringi": uintptr(unsafe.Pointer(&token[0])),
	}}
	c := newCommands(t, d)

	got, err := c.GetStringi(gl.EXTENSIONS, 3)
	runtime.KeepAlive(token)
	if err != nil {
		t.Fatalf("GetStringi failed: %v", err)
	}
	if got != "GL_KHR_debug" {
		t.Errorf("GetStringi() = %q", got)
	}
	call := d.lastCall(t)
	if call.args[0] != gl.EXTENSIONS || call.args[1] != 3 {
		t.Errorf("dispatched args %v", call.args)
	}

	if _, err := c.GetStringi(gl.VERSION, 0); err == nil {
		t.Error("non-indexed name accepted")
	}
}

func TestGetError(t *testing.T) {
	d := &fakeDispatcher{results: map[string]uintptr{
		"GetError": gl.INVALID_OPERATION,
	}}
	c := newCommands(t, d)

	code, err := c.GetError()
	if err != nil {
		t.Fatalf("GetError failed: %v", err)
	}
	if code != gl.INVALID_OPERATION {
		t.Errorf("GetError() = %#x, want 0x0502", code)
	}
}

func TestGetIntegerv(t *testing.T) {
	d := &fakeDispatcher{handler: map[string]func([]uintptr) uintptr{
		"GetIntegerv": func(args []uintptr) uintptr {
			*(*int32)(unsafe.Pointer(args[1])) = 192
			return 0
		},
	}}
	c := newCommands(t, d)

	value, err := c.GetIntegerv(gl.NUM_EXTENSIONS)
	if err != nil {
		t.Fatalf("GetIntegerv failed: %v", err)
	}
	if value != 192 {
		t.Errorf("GetIntegerv() = %d, want 192", value)
	}
	if call := d.lastCall(t); call.args[0] != gl.NUM_EXTENSIONS {
		t.Errorf("dispatched args %v", call.args)
	}
}

func TestClearValidatesMask(t *testing.T) {
	tests := []struct {
		name    string
		mask    uint32
		wantErr bool
	}{
		{"color", COLOR_BUFFER_BIT, false},
		{"all three", COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT | STENCIL_BUFFER_BIT, false},
		{"zero", 0, false},
		{"stray bit", COLOR_BUFFER_BIT | 0x2, true},
		{"garbage", 0xFFFFFFFF, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDispatcher{}
			c := newCommands(t, d)
			err := c.Clear(tt.mask)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Clear(%#x) error = %v, wantErr %v", tt.mask, err, tt.wantErr)
			}
			if tt.wantErr && len(d.calls) != 0 {
				t.Error("invalid mask reached the dispatcher")
			}
		})
	}
}

func TestViewport(t *testing.T) {
	d := &fakeDispatcher{}
	c := newCommands(t, d)

	if err := c.Viewport(0, 0, 1920, 1080); err != nil {
		t.Fatalf("Viewport failed: %v", err)
	}
	call := d.lastCall(t)
	want := []uintptr{0, 0, 1920, 1080}
	for i, arg := range want {
		if call.args[i] != arg {
			t.Errorf("dispatched args %v, want %v", call.args, want)
			break
		}
	}

	if err := c.Viewport(0, 0, -1, 600); err == nil {
		t.Error("negative width accepted")
	}
	if err := c.Viewport(0, 0, 800, -1); err == nil {
		t.Error("negative height accepted")
	}
}

func TestEnableDisable(t *testing.T) {
	d := &fakeDispatcher{}
	c := newCommands(t, d)

	if err := c.Enable(DEPTH_TEST); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	if err := c.Disable(BLEND); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}
	if len(d.calls) != 2 || d.calls[0].name != "Enable" || d.calls[1].name != "Disable" {
		t.Errorf("dispatched %+v", d.calls)
	}

	if err := c.Enable(0xBEEF); err == nil {
		t.Error("unknown capability accepted by Enable")
	}
	if err := c.Disable(0xBEEF); err == nil {
		t.Error("unknown capability accepted by Disable")
	}
}

func TestDrawArraysValidation(t *testing.T) {
	tests := []struct {
		name         string
		mode         uint32
		first, count int32
		wantErr      bool
	}{
		{"triangles", TRIANGLES, 0, 36, false},
		{"points from offset", POINTS, 100, 1, false},
		{"zero count", LINES, 0, 0, false},
		{"bad mode", 0x99, 0, 3, true},
		{"negative first", TRIANGLES, -1, 3, true},
		{"negative count", TRIANGLES, 0, -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDispatcher{}
			c := newCommands(t, d)
			err := c.DrawArrays(tt.mode, tt.first, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DrawArrays error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && len(d.calls) != 0 {
				t.Error("invalid draw reached the dispatcher")
			}
		})
	}
}

func TestGenBuffers(t *testing.T) {
	d := &fakeDispatcher{handler: map[string]func([]uintptr) uintptr{
		"GenBuffers": func(args []uintptr) uintptr {
			n := int32(args[0])
			out := unsafe.Slice((*uint32)(unsafe.Pointer(args[1])), n)
			for i := range out {
				out[i] = uint32(i + 1)
			}
			return 0
		},
	}}
	c := newCommands(t, d)

	buffers, err := c.GenBuffers(3)
	if err != nil {
		t.Fatalf("GenBuffers failed: %v", err)
	}
	if len(buffers) != 3 || buffers[0] != 1 || buffers[2] != 3 {
		t.Errorf("GenBuffers() = %v, want [1 2 3]", buffers)
	}

	if _, err := c.GenBuffers(0); err == nil {
		t.Error("zero count accepted")
	}
	if _, err := c.GenBuffers(-4); err == nil {
		t.Error("negative count accepted")
	}
}

func TestBindBuffer(t *testing.T) {
	d := &fakeDispatcher{}
	c := newCommands(t, d)

	if err := c.BindBuffer(ARRAY_BUFFER, 5); err != nil {
		t.Fatalf("BindBuffer failed: %v", err)
	}
	call := d.lastCall(t)
	if call.args[0] != ARRAY_BUFFER || call.args[1] != 5 {
		t.Errorf("dispatched args %v", call.args)
	}

	// Binding zero unbinds; it is always valid.
	if err := c.BindBuffer(ELEMENT_ARRAY_BUFFER, 0); err != nil {
		t.Errorf("unbinding failed: %v", err)
	}

	if err := c.BindBuffer(0x1234, 5); err == nil {
		t.Error("unknown target accepted")
	}
}

func TestDeleteBuffers(t *testing.T) {
	d := &fakeDispatcher{}
	c := newCommands(t, d)

	if err := c.DeleteBuffers([]uint32{4, 5, 6}); err != nil {
		t.Fatalf("DeleteBuffers failed: %v", err)
	}
	if call := d.lastCall(t); call.args[0] != 3 {
		t.Errorf("dispatched count %d, want 3", call.args[0])
	}

	// Empty input never reaches the driver.
	calls := len(d.calls)
	if err := c.DeleteBuffers(nil); err != nil {
		t.Fatalf("DeleteBuffers(nil) failed: %v", err)
	}
	if len(d.calls) != calls {
		t.Error("empty delete reached the dispatcher")
	}
}

func TestDispatchErrorsPropagate(t *testing.T) {
	dispatchErr := errors.New("context lost")
	d := &fakeDispatcher{err: dispatchErr}
	c := newCommands(t, d)

	if err := c.Finish(); !errors.Is(err, dispatchErr) {
		t.Errorf("Finish error = %v, want the dispatch error", err)
	}
	if err := c.Flush(); !errors.Is(err, dispatchErr) {
		t.Errorf("Flush error = %v, want the dispatch error", err)
	}
	if _, err := c.GetString(gl.VENDOR); !errors.Is(err, dispatchErr) {
		t.Errorf("GetString error = %v, want the dispatch error", err)
	}
	if _, err := c.GenBuffers(1); !errors.Is(err, dispatchErr) {
		t.Errorf("GenBuffers error = %v, want the dispatch error", err)
	}
}
