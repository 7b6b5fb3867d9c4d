package gl

import (
	"errors"
	"sync/atomic"
)

// CallRecord is the structured record emitted for every dispatched call
// while logging is enabled.
type CallRecord struct {
	Command string
	Symbol  string
	Args    []uintptr
	Result  uintptr
}

// CallSink receives call records. Implementations own storage and
// formatting policy; the dispatcher only defines the record shape.
type CallSink interface {
	Record(CallRecord)
}

// slogSink is the default sink, writing records through the package logger
// at debug level.
type slogSink struct{}

func (slogSink) Record(rec CallRecord) {
	Logger().Debug("gl call",
		"command", rec.Command,
		"symbol", rec.Symbol,
		"args", rec.Args,
		"result", rec.Result,
	)
}

type callFunc func(addr uintptr, args ...uintptr) uintptr

// errorDrainLimit caps the post-call GetError loop. Broken drivers can keep
// reporting the same code forever once the context is lost.
const errorDrainLimit = 8

// dispatchState is the configuration governing call dispatch: logging and
// error-check toggles plus the record sink. Flags may be flipped
// concurrently with dispatch; readers observe either the old or the new
// value, never a torn one.
type dispatchState struct {
	logging  atomic.Bool
	errCheck atomic.Bool
	sink     atomic.Pointer[sinkBox]
	call     callFunc
}

// sinkBox wraps the interface value so it can be swapped atomically.
type sinkBox struct{ sink CallSink }

func (d *dispatchState) init() {
	d.call = nativeCall
	d.sink.Store(&sinkBox{sink: slogSink{}})
}

func (d *dispatchState) copyFrom(src *dispatchState) {
	d.logging.Store(src.logging.Load())
	d.errCheck.Store(src.errCheck.Load())
	d.sink.Store(src.sink.Load())
	d.call = src.call
}

// SetLogging toggles per-call logging. Safe to call concurrently with
// dispatch.
func (b *Binding) SetLogging(enabled bool) { b.dispatch.logging.Store(enabled) }

// SetErrorCheck toggles the post-call driver error query. Checking after
// every call trades throughput for fail-fast diagnostics; disable it on
// performance-sensitive paths.
func (b *Binding) SetErrorCheck(enabled bool) { b.dispatch.errCheck.Store(enabled) }

// SetSink replaces the call record sink. Passing nil restores the default
// slog-backed sink.
func (b *Binding) SetSink(sink CallSink) {
	if sink == nil {
		sink = slogSink{}
	}
	b.dispatch.sink.Store(&sinkBox{sink: sink})
}

// Call dispatches the logical command with the given raw argument words.
//
// An unresolved command fails with UnboundCommandError before any native
// code runs. When logging is enabled the call record is emitted before the
// driver error query, so the record exists even if the check raises. A
// DriverError does not poison the dispatcher; subsequent calls proceed
// normally.
func (b *Binding) Call(name string, args ...uintptr) (uintptr, error) {
	ep := b.Resolve(name)
	if !ep.Resolved() {
		return 0, &UnboundCommandError{Command: name}
	}

	result := b.dispatch.call(ep.Addr, args...)

	if b.dispatch.logging.Load() {
		b.dispatch.sink.Load().sink.Record(CallRecord{
			Command: name,
			Symbol:  ep.Symbol,
			Args:    args,
			Result:  result,
		})
	}

	if b.dispatch.errCheck.Load() {
		if err := b.checkDriverError(name); err != nil {
			return result, err
		}
	}
	return result, nil
}

// checkDriverError drains the driver's error queue, attributing every
// pending code to the command that just ran.
func (b *Binding) checkDriverError(command string) error {
	ep := b.Resolve("GetError")
	if !ep.Resolved() {
		return nil
	}
	var errs []error
	for range errorDrainLimit {
		code := uint32(b.dispatch.call(ep.Addr))
		if code == NO_ERROR {
			break
		}
		errs = append(errs, &DriverError{Command: command, Code: code})
	}
	return errors.Join(errs...)
}
