package crc

import "fmt"

// Sentinel error kinds. Callers distinguish failure classes with errors.Is
// against these instead of string-matching messages, mirroring the four
// error tags the host binding surfaces (overflow, type, key, runtime).
var (
	// ErrOverflow wraps every "value out of range" / "value required" error.
	ErrOverflow = fmt.Errorf("crc: value out of range")
	// ErrType wraps argument-type mismatches (e.g. a non-string name/method).
	ErrType = fmt.Errorf("crc: invalid argument type")
	// ErrKey wraps unknown template or method name lookups.
	ErrKey = fmt.Errorf("crc: unknown key")
	// ErrRuntime wraps defensive "this should never happen" cache failures.
	ErrRuntime = fmt.Errorf("crc: internal runtime error")
)

type rangeError struct{ field string }

func (e *rangeError) Error() string { return e.field + " out of range" }
func (e *rangeError) Unwrap() error { return ErrOverflow }

func newRangeError(field string) error { return &rangeError{field: field} }

type requiredError struct{ field string }

func (e *requiredError) Error() string { return e.field + " required" }
func (e *requiredError) Unwrap() error { return ErrOverflow }

func newRequiredError(field string) error { return &requiredError{field: field} }

type unknownNameError struct{ name string }

func (e *unknownNameError) Error() string { return fmt.Sprintf("unknown template name %q", e.name) }
func (e *unknownNameError) Unwrap() error { return ErrKey }

type unknownMethodError struct{ method string }

func (e *unknownMethodError) Error() string { return fmt.Sprintf("unknown method %q", e.method) }
func (e *unknownMethodError) Unwrap() error { return ErrKey }

type typeError struct{ what string }

func (e *typeError) Error() string { return "expected string for " + e.what }
func (e *typeError) Unwrap() error { return ErrType }
