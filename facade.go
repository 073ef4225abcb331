package srlog

// Severity entry points. Each forwards the format and arguments verbatim
// to the active target and returns its result; filtering, formatting and
// output are the target's job. Arguments must match the format verbs as
// for fmt.Printf: go vet checks call sites, and fmt marks mismatches in
// the output (%!d(string=x)) rather than failing.

func (f *Facility) Logf(level Level, format string, args ...any) int {
	return f.target.Load().t.Logf(level, format, args...)
}

func (f *Facility) Errorf(format string, args ...any) int {
	return f.Logf(LevelError, format, args...)
}

func (f *Facility) Warnf(format string, args ...any) int {
	return f.Logf(LevelWarn, format, args...)
}

func (f *Facility) Infof(format string, args ...any) int {
	return f.Logf(LevelInfo, format, args...)
}

func (f *Facility) Debugf(format string, args ...any) int {
	return f.Logf(LevelDebug, format, args...)
}

func (f *Facility) Spewf(format string, args ...any) int {
	return f.Logf(LevelSpew, format, args...)
}

// Package-level helpers over the process-wide facility.
// Usage: srlog.Warnf("device %s: %d retries", name, n)

func Logf(level Level, format string, args ...any) int { return L().Logf(level, format, args...) }
func Errorf(format string, args ...any) int            { return L().Errorf(format, args...) }
func Warnf(format string, args ...any) int             { return L().Warnf(format, args...) }
func Infof(format string, args ...any) int             { return L().Infof(format, args...) }
func Debugf(format string, args ...any) int            { return L().Debugf(format, args...) }
func Spewf(format string, args ...any) int             { return L().Spewf(format, args...) }
