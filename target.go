package srlog

import "reflect"

// Target is where every log call is routed (Strategy). The built-in writer
// is one implementation; hosts install their own with SetTarget.
//
// A custom Target receives every call regardless of the facility's
// threshold and is fully responsible for filtering, formatting and output.
// Whatever state it needs is captured by the implementation itself.
// Logf returns an informational count of bytes written.
type Target interface {
	Logf(level Level, format string, args ...any) int
}

// TargetFunc adapts a function to Target.
type TargetFunc func(level Level, format string, args ...any) int

func (fn TargetFunc) Logf(level Level, format string, args ...any) int {
	return fn(level, format, args...)
}

// targetBox lets atomic.Pointer hold any Target implementation.
type targetBox struct{ t Target }

// isNilTarget reports whether t is nil or wraps a nil value, such as a
// nil pointer or a nil TargetFunc, which would panic on the first call.
func isNilTarget(t Target) bool {
	if t == nil {
		return true
	}
	switch v := reflect.ValueOf(t); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
