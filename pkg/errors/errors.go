// Package errors provides structured error handling for image views.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidProperty indicates a rejected property update.
	KindInvalidProperty
	// KindMalformedSource indicates a source descriptor missing required fields.
	KindMalformedSource
	// KindInvariant indicates a programming error such as an out-of-range slot.
	KindInvariant
	// KindLoad indicates an image load failure reported by a loader.
	KindLoad
	// KindRender indicates a rendering error.
	KindRender
	// KindConfig indicates an invalid configuration file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidProperty:
		return "invalid_property"
	case KindMalformedSource:
		return "malformed_source"
	case KindInvariant:
		return "invariant"
	case KindLoad:
		return "load"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error reported by an image view.
type Error struct {
	// Op is the operation that failed (e.g., "props.Manager.Set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PropertyError reports a property update that was rejected. The view keeps
// its previous configuration.
type PropertyError struct {
	// Prop is the property name (e.g., "resizeMode").
	Prop string
	// Value is the offending value as received.
	Value any
	// Reason describes what was wrong with the value.
	Reason string
}

func (e *PropertyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %v (%s)", e.Prop, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %v", e.Prop, e.Value)
}

// InvariantError reports a contract violation by the caller, such as a corner
// or edge position outside its fixed range. It is raised with panic.
type InvariantError struct {
	// Op is the operation whose contract was violated.
	Op string
	// Detail describes the violation.
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "imageview.Surface.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by image views.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Invariantf panics with an InvariantError for op.
func Invariantf(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
