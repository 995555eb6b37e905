package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerRef boxes the interface so it can live in an atomic.Pointer.
type handlerRef struct{ h ErrorHandler }

var handlerPtr atomic.Pointer[handlerRef]

func init() {
	handlerPtr.Store(&handlerRef{h: &LogHandler{}})
}

// SetHandler replaces the handler that receives reported errors and recovered
// panics. Pass nil to restore a non-verbose LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerPtr.Store(&handlerRef{h: h})
}

// Handler returns the current error handler. It is never nil.
func Handler() ErrorHandler {
	return handlerPtr.Load().h
}

// Report stamps err with the current time, if unset, and passes it to the
// handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// Recover stops a panic in op and reports it. It must be deferred directly:
//
//	defer errors.Recover("imageview.Surface.Paint", nil)
//
// unwind, when not nil, runs before the report so the caller can pop canvas
// state that the panic skipped. An [*InvariantError] is reported through
// HandleError with [KindInvariant]; any other value through HandlePanic.
func Recover(op string, unwind func()) {
	r := recover()
	if r == nil {
		return
	}
	if unwind != nil {
		unwind()
	}
	stack := CaptureStack()
	if ierr, ok := r.(*InvariantError); ok {
		Report(&Error{Op: op, Kind: KindInvariant, Err: ierr, StackTrace: stack})
		return
	}
	Handler().HandlePanic(&PanicError{Op: op, Value: r, StackTrace: stack, Timestamp: time.Now()})
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line" entry
// per frame, with runtime frames left out.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
