package srlog

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Options selects the timestamp fields the built-in writer renders.
type Options uint8

const (
	OptDate   Options = 1 << iota // YYYYMMDD
	OptTime                       // HHMMSS
	OptTimeMS                     // HHMMSS,mmm
	OptTimeUS                     // HHMMSS,uuuuuu; wins over OptTimeMS
	OptUTC                        // render UTC instead of the local zone

	OptNone Options = 0

	optTimeAny   = OptTime | OptTimeMS | OptTimeUS
	optTimestamp = OptDate | optTimeAny
	optAll       = optTimestamp | OptUTC
)

var optionNames = []struct {
	bit  Options
	name string
}{
	{OptDate, "date"},
	{OptTime, "time"},
	{OptTimeMS, "time-ms"},
	{OptTimeUS, "time-us"},
	{OptUTC, "utc"},
}

// Valid reports whether o contains only defined bits.
func (o Options) Valid() bool { return o&^optAll == 0 }

// Has reports whether every bit of mask is set in o.
func (o Options) Has(mask Options) bool { return o&mask == mask }

func (o Options) timestamped() bool { return o&optTimestamp != 0 }

func (o Options) String() string {
	if o == OptNone {
		return "none"
	}
	var sb strings.Builder
	for _, n := range optionNames {
		if o&n.bit == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(n.name)
	}
	if rest := o &^ optAll; rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString("0x")
		sb.WriteString(strconv.FormatUint(uint64(rest), 16))
	}
	return sb.String()
}

// ParseOptions parses a comma or pipe separated list of option names
// (date, time, ms, us, utc; time-ms and time-us are accepted too) or a
// decimal mask. "none" and the empty string yield OptNone.
func ParseOptions(s string) (Options, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		o := Options(n)
		if !o.Valid() {
			return OptNone, errors.Wrapf(ErrInvalidArgument, "unknown log options %d", n)
		}
		return o, nil
	}
	var o Options
	for _, p := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "", "none":
		case "date":
			o |= OptDate
		case "time":
			o |= OptTime
		case "ms", "time-ms":
			o |= OptTimeMS
		case "us", "time-us":
			o |= OptTimeUS
		case "utc":
			o |= OptUTC
		default:
			return OptNone, errors.Wrapf(ErrInvalidArgument, "unknown log option %q", p)
		}
	}
	return o, nil
}
