package srlog

import "os"

// Environment variables read by ConfigureFromEnv.
//
//	SRLOG_LEVEL:   none|error|warn|info|debug|spew or 0..5
//	SRLOG_OPTIONS: comma list of date,time,ms,us,utc or a decimal mask
//	SRLOG_DOMAIN:  domain prefix; set but empty disables the prefix
const (
	EnvLevel   = "SRLOG_LEVEL"
	EnvOptions = "SRLOG_OPTIONS"
	EnvDomain  = "SRLOG_DOMAIN"
)

// ConfigureFromEnv applies the SRLOG_* variables that are set to f through
// its validated setters. It stops at the first invalid value, which is
// logged at error severity and returned; earlier settings stay applied.
func ConfigureFromEnv(f *Facility) error {
	if v, ok := os.LookupEnv(EnvLevel); ok {
		l, err := ParseLevel(v)
		if err != nil {
			f.Errorf("invalid %s %q", EnvLevel, v)
			return err
		}
		if err := f.SetLevel(l); err != nil {
			return err
		}
	}
	if v, ok := os.LookupEnv(EnvOptions); ok {
		o, err := ParseOptions(v)
		if err != nil {
			f.Errorf("invalid %s %q", EnvOptions, v)
			return err
		}
		if err := f.SetOptions(o); err != nil {
			return err
		}
	}
	if v, ok := os.LookupEnv(EnvDomain); ok {
		f.SetDomain(v)
	}
	return nil
}

// UseEnv configures the process-wide facility from the environment.
func UseEnv() error { return ConfigureFromEnv(L()) }
