package gl

import (
	"errors"
	"fmt"
)

// ErrPlatformUnsupported is returned when no loader variant exists for the
// running operating system.
var ErrPlatformUnsupported = errors.New("no dynamic loader variant for this platform")

// LibraryLoadError reports that the OS failed to load a native driver
// library. This is fatal for every command that depends on the library and
// is surfaced at open time, never deferred.
type LibraryLoadError struct {
	Path string
	Err  error
}

func (e *LibraryLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load library %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load library %q", e.Path)
}

func (e *LibraryLoadError) Unwrap() error { return e.Err }

// UnboundCommandError reports a dispatch attempt on a logical command that
// did not resolve under the current capability set. The caller should treat
// the capability as absent.
type UnboundCommandError struct {
	Command string
}

func (e *UnboundCommandError) Error() string {
	return fmt.Sprintf("command %q is not provided by the current driver", e.Command)
}

// DriverError carries an error code the driver reported after a dispatched
// call. The call already happened; the error is surfaced, not retried.
type DriverError struct {
	Command string
	Code    uint32
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("driver reported %s (0x%04x) after %s", ErrorCodeName(e.Code), e.Code, e.Command)
}
