package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/srlog"
)

// Config is an explicit, code-first configuration for routing srlog into zap.
type Config struct {
	Writer        io.Writer   // default: os.Stderr
	Level         srlog.Level // backend filter; LevelNone means the facility's threshold
	Console       bool        // console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig
	Domain        string // bound as the "domain" field when non-empty
	Caller        bool
	CallerSkip    int // default 3 (adapter + facility frames)

	// Facility receives the target; default srlog.L().
	Facility *srlog.Facility
}

// Use builds a zap logger from cfg, installs it as the facility's target and
// returns the adapter.
func Use(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 3
	}

	encCfg := cfg.EncoderConfig
	if encCfg.MessageKey == "" && encCfg.LevelKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			MessageKey:     "message",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	f := cfg.Facility
	if f == nil {
		f = srlog.L()
	}
	if cfg.Level == srlog.LevelNone {
		cfg.Level = f.Level()
	}

	al := zap.NewAtomicLevel()
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)

	opts := []zap.Option{
		zap.WithClock(clock{}),
		zap.AddStacktrace(zapcore.FatalLevel + 1),
	}
	if cfg.Caller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.CallerSkip))
	}
	zl := zap.New(core, opts...)
	if cfg.Domain != "" {
		zl = zl.With(zap.String("domain", cfg.Domain))
	}

	ad := NewWithAtomicLevel(zl, &al)
	ad.SetLevel(cfg.Level)

	if err := f.SetTarget(ad); err != nil {
		// SetTarget only rejects nil targets.
		panic(err)
	}
	return ad
}
