package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide error handler and returns the
// previous one, so tests can write defer SetHandler(SetHandler(h)).
// A nil h restores a non-verbose LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends err to the installed handler, stamping it if needed.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress and swallows it. It must be called
// directly by a deferred statement:
//
//	defer errors.Recover("progress.View.Paint")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is like Recover but then hands the panic value to
// callback, which may for example stop the failing component.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame, up to 32 frames.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
