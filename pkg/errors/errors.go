// Package errors provides structured error reporting for circleprogress.
//
// Widget operations never return errors for bad input; they ignore it. When a
// failure is still worth knowing about (an image handle that does not resolve,
// a panic inside a frame callback) it is sent to the global ErrorHandler.
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
	// KindConfig indicates a malformed attribute or CLI configuration.
	KindConfig
	// KindResource indicates an image resource that could not be loaded.
	KindResource
	// KindRender indicates a rendering or encoding error.
	KindRender
	// KindAnimation indicates a failure inside a ticker callback.
	KindAnimation
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindAnimation:
		return "animation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error.
type Error struct {
	// Op is the operation that failed (e.g., "progress.SetImageResource").
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

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.Scheduler.Step").
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

// ResourceError describes an image resource that could not be produced.
type ResourceError struct {
	// Handle is the numeric resource handle.
	Handle int
	// Reason explains the failure.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *ResourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("image resource %d: %s: %v", e.Handle, e.Reason, e.Err)
	}
	return fmt.Sprintf("image resource %d: %s", e.Handle, e.Reason)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	// Key is the attribute or setting name.
	Key string
	// Value is the offending value as written.
	Value any
	// Err is the underlying error, if any.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %v: %v", e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %v", e.Key, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
