package gl

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Option configures New.
type Option func(*config) error

type config struct {
	libraryPath string
	searchDirs  []string
	logging     bool
	errCheck    bool
	sink        CallSink
	registry    *Registry

	// test hooks
	loader *Loader
	call   callFunc
	caps   *CapabilitySet
}

// WithLibraryPath forces New to load the driver library from an explicit
// path instead of discovering one.
func WithLibraryPath(path string) Option {
	return func(cfg *config) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("library path cannot be empty")
		}
		cfg.libraryPath = path
		return nil
	}
}

// WithSearchDirectory appends a directory consulted during driver library
// discovery. Directories are installed, in the order given, before any
// resolution happens.
func WithSearchDirectory(dir string) Option {
	return func(cfg *config) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("search directory cannot be empty")
		}
		cfg.searchDirs = append(cfg.searchDirs, dir)
		return nil
	}
}

// WithLogging enables or disables per-call logging from the start.
func WithLogging(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logging = enabled
		return nil
	}
}

// WithErrorCheck enables or disables the post-call driver error query from
// the start.
func WithErrorCheck(enabled bool) Option {
	return func(cfg *config) error {
		cfg.errCheck = enabled
		return nil
	}
}

// WithSink sets the call record sink.
func WithSink(sink CallSink) Option {
	return func(cfg *config) error {
		if sink == nil {
			return fmt.Errorf("call sink cannot be nil")
		}
		cfg.sink = sink
		return nil
	}
}

// WithRegistry replaces the builtin alias table.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) error {
		if registry == nil {
			return fmt.Errorf("registry cannot be nil")
		}
		cfg.registry = registry
		return nil
	}
}

func withLoader(loader *Loader) Option {
	return func(cfg *config) error {
		if loader == nil {
			return fmt.Errorf("loader cannot be nil")
		}
		cfg.loader = loader
		return nil
	}
}

func withCall(call callFunc) Option {
	return func(cfg *config) error {
		if call == nil {
			return fmt.Errorf("call function cannot be nil")
		}
		cfg.call = call
		return nil
	}
}

func withCapabilities(caps *CapabilitySet) Option {
	return func(cfg *config) error {
		if caps == nil {
			return fmt.Errorf("capability set cannot be nil")
		}
		cfg.caps = caps
		return nil
	}
}

func resolveConfig(opts ...Option) (config, error) {
	debug, err := parseBoolEnv("PUREGL_DEBUG")
	if err != nil {
		return config{}, err
	}

	cfg := config{
		libraryPath: strings.TrimSpace(os.Getenv("PUREGL_LIBRARY_PATH")),
		logging:     debug,
		errCheck:    debug,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

func parseBoolEnv(name string) (bool, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err == nil {
		return parsed, nil
	}

	switch strings.ToLower(value) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value for %s: %q", name, value)
	}
}
