package srlog

import (
	"bytes"
	"testing"
)

func TestGlobalFacade(t *testing.T) {
	old := L()
	defer SetGlobal(old)

	var buf bytes.Buffer
	f, err := NewBuilder().WithOutput(&buf).Build()
	if err != nil {
		t.Fatal(err)
	}
	SetGlobal(f)
	SetGlobal(nil)
	if L() != f {
		t.Fatal("SetGlobal(nil) must be ignored")
	}

	if err := SetLevel(LevelInfo); err != nil {
		t.Fatal(err)
	}
	if err := SetOptions(OptNone); err != nil {
		t.Fatal(err)
	}
	SetDomain("g: ")
	if GetLevel() != LevelInfo || GetOptions() != OptNone || GetDomain() != "g: " {
		t.Fatalf("facade state: %s %s %q", GetLevel(), GetOptions(), GetDomain())
	}

	Infof("hello %s", "world")
	Debugf("hidden")
	if got := buf.String(); got != "g: hello world\n" {
		t.Fatalf("output %q", got)
	}

	stub := &stubTarget{}
	if err := SetTarget(stub); err != nil {
		t.Fatal(err)
	}
	Errorf("e")
	Warnf("w")
	Spewf("s")
	Logf(LevelDebug, "d")
	if got := len(stub.entries()); got != 4 {
		t.Fatalf("stub saw %d records", got)
	}
	ResetTarget()
	if !L().IsDefaultTarget() {
		t.Fatal("ResetTarget did not restore the built-in writer")
	}
}

func TestGlobalInitialState(t *testing.T) {
	if L() == nil {
		t.Fatal("global facility must exist at init")
	}
}
