package srlog

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// writer is the built-in Target. It filters by the facility threshold and
// writes one line per record:
//
//	[YYYYMMDD ][HHMMSS[,mmm|,uuuuuu] ][domain]message\n
//
// Each record is assembled in a pooled buffer and written with one Write.
type writer struct{ f *Facility }

type snapshot struct {
	level  Level
	opts   Options
	domain string
}

func (f *Facility) snapshot() snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return snapshot{level: f.level, opts: f.opts, domain: f.domain}
}

// Logf renders and writes the record when level passes the threshold. It
// returns the number of bytes written; a suppressed record returns 0.
// Write errors go to the facility's error handler, never to the caller.
func (w *writer) Logf(level Level, format string, args ...any) int {
	f := w.f
	s := f.snapshot()
	if !level.Enabled(s.level) {
		f.st.suppressed.Add(1)
		return 0
	}

	buf := getBuf()
	defer putBuf(buf)

	if s.opts.timestamped() {
		f.appendTimestamp(buf, s.opts)
	}
	buf.writeString(s.domain)
	buf.b = fmt.Appendf(buf.b, format, args...)
	buf.writeByte('\n')

	f.outMu.Lock()
	n, err := f.out.Write(buf.b)
	f.outMu.Unlock()
	if err != nil {
		f.st.writeErrors.Add(1)
		f.onError(errors.Wrap(err, "write failed"))
		return n
	}
	f.st.emitted.Add(1)
	return n
}

// appendTimestamp renders the date and time fields selected by opts. A time
// zone that cannot be resolved does not abort the record: an unframed
// diagnostic is written in place and UTC fields are used instead.
func (f *Facility) appendTimestamp(buf *buffer, opts Options) {
	now := f.clock().Truncate(time.Microsecond)

	loc := time.UTC
	if !opts.Has(OptUTC) {
		l, err := f.zone.location()
		if err != nil {
			buf.writeString("localtime conversion failed: ")
			buf.writeString(err.Error())
			buf.writeByte(' ')
		} else {
			loc = l
		}
	}
	t := now.In(loc)

	if opts.Has(OptDate) {
		buf.b = t.AppendFormat(buf.b, "20060102 ")
	}
	switch {
	case opts&optTimeAny == 0:
	case opts.Has(OptTimeUS):
		buf.b = t.AppendFormat(buf.b, "150405,000000 ")
	case opts.Has(OptTimeMS):
		buf.b = t.AppendFormat(buf.b, "150405,000 ")
	default:
		buf.b = t.AppendFormat(buf.b, "150405 ")
	}
}
