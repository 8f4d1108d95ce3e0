// Package errors provides structured error handling for paneui.
//
// Widget callbacks are user code: a panic inside one is recovered at the
// call site, wrapped in a [CallbackError] and handed to the global
// [ErrorHandler]. The widget that invoked the callback keeps working.
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
	// KindHost indicates a failure reported by the display host.
	KindHost
	// KindProperty indicates a property that could not be applied to a node.
	KindProperty
	// KindTheme indicates an invalid theme configuration.
	KindTheme
)

func (k ErrorKind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindProperty:
		return "property"
	case KindTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// UIError represents a structured error raised by the toolkit.
type UIError struct {
	// Op is the operation that failed (e.g., "widgets.Window.Close").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Node is the path of the node involved, if any.
	Node string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [%s] node=%s: %v", e.Op, e.Kind, e.Node, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
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

// PropertyError describes a property that could not be applied to a node.
type PropertyError struct {
	// NodeKind is the kind of node being configured.
	NodeKind string
	// Prop is the property name.
	Prop string
	// Value is the rejected value.
	Value any
	// Reason explains the rejection.
	Reason string
	// Err is an optional sentinel cause.
	Err error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %s on %s: %s (got %T)", e.Prop, e.NodeKind, e.Reason, e.Value)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// CallbackError represents a user callback that panicked.
type CallbackError struct {
	// Widget is the path of the widget that invoked the callback.
	Widget string
	// Callback names the hook, e.g. "OnClick".
	Callback string
	// Value is the recovered panic value.
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the callback failed.
	Timestamp time.Time
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("%s callback of %s failed: %v", e.Callback, e.Widget, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *CallbackError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleCallbackError is called when a user callback fails.
	HandleCallbackError(err *CallbackError)
}
