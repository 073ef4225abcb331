package zerologadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/srlog"
	"github.com/trickstertwo/xclock"
)

func TestZerologAdapter_JSON_EmitsTSAndMessage(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	var buf bytes.Buffer
	a := New(zerolog.New(&buf))

	n := a.Logf(srlog.LevelInfo, "state changed to %s", "ready")
	if n != len("state changed to ready") {
		t.Fatalf("returned %d", n)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["level"] != "info" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "state changed to ready" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	gotTS, _ := m["ts"].(string)
	if wantTS := ft.Format(time.RFC3339Nano); gotTS != wantTS {
		t.Fatalf("ts mismatch: got %q want %q", gotTS, wantTS)
	}
}

func TestZerologAdapter_LevelMapping(t *testing.T) {
	cases := map[srlog.Level]string{
		srlog.LevelError: "error",
		srlog.LevelWarn:  "warn",
		srlog.LevelInfo:  "info",
		srlog.LevelDebug: "debug",
		srlog.LevelSpew:  "trace",
	}
	for lvl, want := range cases {
		var buf bytes.Buffer
		a := New(zerolog.New(&buf).Level(zerolog.TraceLevel))
		a.Logf(lvl, "m")
		var m map[string]any
		if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
			t.Fatalf("%s: json unmarshal: %v; line=%s", lvl, err, buf.String())
		}
		if m["level"] != want {
			t.Fatalf("%s: level %v, want %s", lvl, m["level"], want)
		}
	}
}

func TestZerologAdapter_SetLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	a := New(zerolog.New(&buf))
	a.SetLevel(srlog.LevelWarn)

	if n := a.Logf(srlog.LevelInfo, "hidden"); n != 0 || buf.Len() != 0 {
		t.Fatalf("info should be filtered: n=%d out=%q", n, buf.String())
	}
	a.SetLevel(srlog.LevelNone)
	if n := a.Logf(srlog.LevelError, "hidden"); n != 0 || buf.Len() != 0 {
		t.Fatalf("LevelNone should disable output: n=%d out=%q", n, buf.String())
	}
}

func TestZerologAdapter_SetLevelWhileLogging(t *testing.T) {
	a := New(zerolog.New(io.Discard))
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				a.SetLevel(srlog.Level(j % 6))
			}
		}()
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				a.Logf(srlog.LevelInfo, "g%d-%d", i, j)
			}
		}(i)
	}
	wg.Wait()

	a.SetLevel(srlog.LevelError)
	if n := a.Logf(srlog.LevelWarn, "hidden"); n != 0 {
		t.Fatalf("warn passed an error filter: %d", n)
	}
	if n := a.Logf(srlog.LevelError, "shown"); n != len("shown") {
		t.Fatalf("error record returned %d", n)
	}
}

func TestZerologAdapter_KeepsLoggerLevelAsInitialFilter(t *testing.T) {
	var buf bytes.Buffer
	a := New(zerolog.New(&buf).Level(zerolog.WarnLevel))
	if n := a.Logf(srlog.LevelInfo, "hidden"); n != 0 || buf.Len() != 0 {
		t.Fatalf("info should be filtered: n=%d out=%q", n, buf.String())
	}
	a.SetLevel(srlog.LevelSpew)
	a.Logf(srlog.LevelSpew, "shown")
	if buf.Len() == 0 {
		t.Fatal("SetLevel must be able to lower below the logger's own level")
	}
}

func TestUse_BindsDomainAndInstalls(t *testing.T) {
	var buf bytes.Buffer
	f := srlog.New()
	Use(Config{Writer: &buf, Level: srlog.LevelDebug, Domain: "la8", Facility: f})

	f.Debugf("sample rate %d", 1000000)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["domain"] != "la8" || m["message"] != "sample rate 1000000" || m["level"] != "debug" {
		t.Fatalf("unexpected record %v", m)
	}
}

func TestUse_ConsoleSetsTimestampFieldName(t *testing.T) {
	old := zerolog.TimestampFieldName
	defer func() { zerolog.TimestampFieldName = old }()

	var buf bytes.Buffer
	f := srlog.New()
	Use(Config{Writer: &buf, Level: srlog.LevelInfo, Console: true, Facility: f})

	if zerolog.TimestampFieldName != "ts" {
		t.Fatalf("TimestampFieldName = %q, want ts", zerolog.TimestampFieldName)
	}
	f.Infof("console %d", 1)
	if !bytes.Contains(buf.Bytes(), []byte("console 1")) {
		t.Fatalf("message missing from console output %q", buf.String())
	}
}
