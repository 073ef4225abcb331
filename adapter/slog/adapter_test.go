package slogadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/srlog"
	"github.com/trickstertwo/xclock"
)

func TestSlogAdapter_JSONHandler_EmitsTimeAndMessage(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: LevelSpew})
	a := New(slog.New(h))

	if n := a.Logf(srlog.LevelWarn, "temp %d C", 71); n != len("temp 71 C") {
		t.Fatalf("returned %d", n)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["msg"] != "temp 71 C" || m["level"] != "WARN" {
		t.Fatalf("unexpected record %v", m)
	}
	ts, _ := m["time"].(string)
	if got, err := time.Parse(time.RFC3339Nano, ts); err != nil || !got.Equal(ft) {
		t.Fatalf("time mismatch: got %q want %s", ts, ft)
	}
}

func TestSlogAdapter_SpewBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelDebug)
	a := NewWithLevelVar(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: lv})), lv)

	if n := a.Logf(srlog.LevelSpew, "hidden"); n != 0 || buf.Len() != 0 {
		t.Fatalf("spew should be below debug: n=%d out=%q", n, buf.String())
	}
	a.SetLevel(srlog.LevelSpew)
	a.Logf(srlog.LevelSpew, "shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Fatalf("spew not emitted after SetLevel: %q", buf.String())
	}

	buf.Reset()
	a.SetLevel(srlog.LevelNone)
	a.Logf(srlog.LevelError, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("LevelNone should disable output, got %q", buf.String())
	}
}

func TestUse_TextWithDomain(t *testing.T) {
	var buf bytes.Buffer
	f := srlog.New()
	Use(Config{Writer: &buf, Format: FormatText, Level: srlog.LevelInfo, Domain: "fx2", Facility: f})

	f.Infof("found %d devices", 2)
	f.Debugf("filtered")

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one record, got %q", out)
	}
	if !strings.Contains(out, `msg="found 2 devices"`) || !strings.Contains(out, "domain=fx2") {
		t.Fatalf("unexpected record %q", out)
	}
}
