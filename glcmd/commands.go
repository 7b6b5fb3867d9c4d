// Package glcmd provides a typed command surface over the dynamic binding
// layer. Each wrapper validates its arguments before anything reaches the
// driver, since invalid native arguments fail silently at best and corrupt
// memory at worst.
package glcmd

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/amikos-tech/pure-gl/gl"
)

// Dispatcher dispatches a logical command with raw argument words. Both
// *gl.Context and *gl.Binding satisfy it.
type Dispatcher interface {
	Call(name string, args ...uintptr) (uintptr, error)
}

// Commands is the typed wrapper set. The zero value is not usable; construct
// with New.
type Commands struct {
	d Dispatcher
}

// New returns a command surface dispatching through d. Passing a *gl.Context
// tracks reprobes automatically; passing a *gl.Binding pins one resolved
// table.
func New(d Dispatcher) (*Commands, error) {
	if d == nil {
		return nil, fmt.Errorf("dispatcher cannot be nil")
	}
	return &Commands{d: d}, nil
}

// GetString queries a driver string such as gl.VENDOR or gl.VERSION.
func (c *Commands) GetString(name uint32) (string, error) {
	switch name {
	case gl.VENDOR, gl.RENDERER, gl.VERSION, gl.EXTENSIONS:
	default:
		return "", fmt.Errorf("invalid string query name %#x", name)
	}
	r, err := c.d.Call("GetString", uintptr(name))
	if err != nil {
		return "", err
	}
	return gl.CstringToGo(r), nil
}

// GetStringi queries one element of an indexed driver string, such as a
// single extension token.
func (c *Commands) GetStringi(name uint32, index uint32) (string, error) {
	if name != gl.EXTENSIONS {
		return "", fmt.Errorf("invalid indexed string query name %#x", name)
	}
	r, err := c.d.Call("GetStringi", uintptr(name), uintptr(index))
	if err != nil {
		return "", err
	}
	return gl.CstringToGo(r), nil
}

// GetError returns the oldest pending driver error code, or gl.NO_ERROR.
func (c *Commands) GetError() (uint32, error) {
	r, err := c.d.Call("GetError")
	if err != nil {
		return 0, err
	}
	return uint32(r), nil
}

// GetIntegerv queries a scalar integer state value.
func (c *Commands) GetIntegerv(name uint32) (int32, error) {
	var value int32
	_, err := c.d.Call("GetIntegerv", uintptr(name), uintptr(unsafe.Pointer(&value)))
	runtime.KeepAlive(&value)
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Clear clears the buffers selected by mask, a bitwise OR of
// COLOR_BUFFER_BIT, DEPTH_BUFFER_BIT and STENCIL_BUFFER_BIT.
func (c *Commands) Clear(mask uint32) error {
	if mask&^validClearBits != 0 {
		return fmt.Errorf("invalid clear mask %#x", mask)
	}
	_, err := c.d.Call("Clear", uintptr(mask))
	return err
}

// Viewport sets the viewport rectangle. Width and height must be
// non-negative.
func (c *Commands) Viewport(x, y, width, height int32) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("viewport dimensions must be non-negative, got %dx%d", width, height)
	}
	_, err := c.d.Call("Viewport", uintptr(x), uintptr(y), uintptr(width), uintptr(height))
	return err
}

// Enable turns on a server-side capability.
func (c *Commands) Enable(capability uint32) error {
	if _, ok := validCapabilities[capability]; !ok {
		return fmt.Errorf("invalid capability %#x", capability)
	}
	_, err := c.d.Call("Enable", uintptr(capability))
	return err
}

// Disable turns off a server-side capability.
func (c *Commands) Disable(capability uint32) error {
	if _, ok := validCapabilities[capability]; !ok {
		return fmt.Errorf("invalid capability %#x", capability)
	}
	_, err := c.d.Call("Disable", uintptr(capability))
	return err
}

// DrawArrays renders count vertices starting at first using the given
// primitive mode.
func (c *Commands) DrawArrays(mode uint32, first, count int32) error {
	if _, ok := validDrawModes[mode]; !ok {
		return fmt.Errorf("invalid primitive mode %#x", mode)
	}
	if first < 0 {
		return fmt.Errorf("first vertex index must be non-negative, got %d", first)
	}
	if count < 0 {
		return fmt.Errorf("vertex count must be non-negative, got %d", count)
	}
	_, err := c.d.Call("DrawArrays", uintptr(mode), uintptr(first), uintptr(count))
	return err
}

// Finish blocks until all previously issued commands have completed.
func (c *Commands) Finish() error {
	_, err := c.d.Call("Finish")
	return err
}

// Flush forces execution of buffered commands without waiting for them.
func (c *Commands) Flush() error {
	_, err := c.d.Call("Flush")
	return err
}

// GenBuffers generates n buffer object names.
func (c *Commands) GenBuffers(n int32) ([]uint32, error) {
	if n <= 0 {
		return nil, fmt.Errorf("buffer count must be positive, got %d", n)
	}
	buffers := make([]uint32, n)
	_, err := c.d.Call("GenBuffers", uintptr(n), uintptr(unsafe.Pointer(&buffers[0])))
	runtime.KeepAlive(buffers)
	if err != nil {
		return nil, err
	}
	return buffers, nil
}

// BindBuffer binds a buffer object to target.
func (c *Commands) BindBuffer(target, buffer uint32) error {
	if _, ok := validBufferTargets[target]; !ok {
		return fmt.Errorf("invalid buffer target %#x", target)
	}
	_, err := c.d.Call("BindBuffer", uintptr(target), uintptr(buffer))
	return err
}

// DeleteBuffers deletes the named buffer objects. An empty slice is a no-op.
func (c *Commands) DeleteBuffers(buffers []uint32) error {
	if len(buffers) == 0 {
		return nil
	}
	_, err := c.d.Call("DeleteBuffers", uintptr(len(buffers)), uintptr(unsafe.Pointer(&buffers[0])))
	runtime.KeepAlive(buffers)
	return err
}
