package gl

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"
)

var supportedPlatforms = map[string]bool{
	"linux":   true,
	"freebsd": true,
	"darwin":  true,
	"windows": true,
}

// Context ties together everything bound to one native rendering context:
// the opened driver library, the probed capability set, and the binding
// table.
type Context struct {
	loader  *Loader
	libPath string
	driver  uintptr
	binding atomic.Pointer[Binding]
}

// New opens the driver library, probes the active context's capabilities,
// and builds the binding table. The native rendering context must already
// be current on the calling thread, since probing issues driver calls.
//
// Driver location: an explicit WithLibraryPath (or PUREGL_LIBRARY_PATH)
// wins; otherwise the platform's candidate libraries are tried in order,
// consulting any search directories first.
func New(opts ...Option) (*Context, error) {
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}

	if !supportedPlatforms[runtime.GOOS] {
		return nil, fmt.Errorf("%w: %s", ErrPlatformUnsupported, runtime.GOOS)
	}

	loader := cfg.loader
	if loader == nil {
		loader = NewLoader()
	}
	for _, dir := range cfg.searchDirs {
		if err := loader.AddSearchDirectory(dir); err != nil {
			return nil, err
		}
	}

	driver, libPath, err := openDriver(loader, cfg.libraryPath)
	if err != nil {
		return nil, err
	}
	loader.bindDriver(driver)

	registry := cfg.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	// Bootstrap table: the probe's own queries (GetString and friends) are
	// baseline commands that resolve under any capability set.
	boot := NewBinding(loader, driver, registry, NewCapabilitySet("1.0"))
	if cfg.call != nil {
		boot.dispatch.call = cfg.call
	}

	caps := cfg.caps
	if caps == nil {
		caps, err = probeCapabilities(boot)
		if err != nil {
			return nil, err
		}
	}

	binding := boot.Rebind(caps)
	binding.SetLogging(cfg.logging)
	binding.SetErrorCheck(cfg.errCheck)
	if cfg.sink != nil {
		binding.SetSink(cfg.sink)
	}

	ctx := &Context{loader: loader, libPath: libPath, driver: driver}
	ctx.binding.Store(binding)

	Logger().Info("gl context initialized",
		"library", libPath,
		"version", caps.Version().String(),
		"extensions", len(caps.Extensions()),
	)
	return ctx, nil
}

// Binding returns the current binding table.
func (c *Context) Binding() *Binding { return c.binding.Load() }

// Capabilities returns the capability set of the current binding table.
func (c *Context) Capabilities() *CapabilitySet { return c.Binding().Capabilities() }

// LibraryPath returns the path the driver library was loaded from.
func (c *Context) LibraryPath() string { return c.libPath }

// Loader returns the library loader backing this context.
func (c *Context) Loader() *Loader { return c.loader }

// Call dispatches through the current binding table.
func (c *Context) Call(name string, args ...uintptr) (uintptr, error) {
	return c.Binding().Call(name, args...)
}

// Close unloads the driver library. Every resolved entry point becomes
// invalid and the context must not be used afterwards.
func (c *Context) Close() error {
	return c.loader.Close(c.libPath)
}

// Reprobe queries the driver again and atomically swaps in a freshly
// resolved binding table. Use it after making a different native context
// current. The previous table keeps serving in-flight dispatches.
func (c *Context) Reprobe() error {
	old := c.Binding()
	caps, err := probeCapabilities(old.Rebind(NewCapabilitySet("1.0")))
	if err != nil {
		return err
	}
	c.binding.Store(old.Rebind(caps))
	return nil
}

func openDriver(loader *Loader, explicit string) (uintptr, string, error) {
	if explicit != "" {
		handle, err := loader.Open(explicit)
		if err != nil {
			return 0, "", err
		}
		return handle, explicit, nil
	}

	var errs []error
	for _, candidate := range driverLibraryCandidates(loader.searchDirectories()) {
		handle, err := loader.Open(candidate)
		if err == nil {
			return handle, candidate, nil
		}
		errs = append(errs, err)
	}
	return 0, "", fmt.Errorf("no driver library could be loaded: %w", errors.Join(errs...))
}

// probeCapabilities derives the capability set from the driver, using the
// indexed extension enumeration on 3.0+ contexts and the legacy
// space-delimited EXTENSIONS string otherwise.
func probeCapabilities(boot *Binding) (*CapabilitySet, error) {
	version, err := getStringValue(boot, VERSION)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver version: %w", err)
	}

	interim := boot.Rebind(NewCapabilitySet(version))

	var extensions []string
	if interim.Capabilities().AtLeast(3, 0) {
		extensions, err = queryIndexedExtensions(interim)
		if err != nil {
			extensions = nil
		}
	}
	if extensions == nil {
		if legacy, lerr := getStringValue(interim, EXTENSIONS); lerr == nil {
			extensions = []string{legacy}
		}
	}
	return NewCapabilitySet(version, extensions...), nil
}

func getStringValue(b *Binding, name uintptr) (string, error) {
	r, err := b.Call("GetString", name)
	if err != nil {
		return "", err
	}
	return CstringToGo(r), nil
}

func queryIndexedExtensions(b *Binding) ([]string, error) {
	var count int32
	if _, err := b.Call("GetIntegerv", NUM_EXTENSIONS, uintptr(unsafe.Pointer(&count))); err != nil {
		return nil, err
	}
	runtime.KeepAlive(&count)

	extensions := make([]string, 0, count)
	for i := int32(0); i < count; i++ {
		r, err := b.Call("GetStringi", EXTENSIONS, uintptr(i))
		if err != nil {
			return nil, err
		}
		if r != 0 {
			extensions = append(extensions, CstringToGo(r))
		}
	}
	return extensions, nil
}
