package srlog_test

import (
	"fmt"
	"os"

	"github.com/trickstertwo/srlog"
)

func Example() {
	f, err := srlog.NewBuilder().WithOutput(os.Stdout).Build()
	if err != nil {
		panic(err)
	}

	f.Infof("not shown at the default threshold")
	f.Warnf("device %s: %d samples dropped", "fx2", 12)

	f.SetDomain("la8: ")
	f.Errorf("open failed")

	f.SetDomain("")
	f.Errorf("boom")
	// Output:
	// sr: device fx2: 12 samples dropped
	// la8: open failed
	// boom
}

func ExampleTargetFunc() {
	f := srlog.New()
	_ = f.SetTarget(srlog.TargetFunc(func(level srlog.Level, format string, args ...any) int {
		n, _ := fmt.Printf("[%s] "+format+"\n", append([]any{level}, args...)...)
		return n
	}))

	f.Spewf("frame %d", 1)
	f.ResetTarget()
	// Output:
	// [spew] frame 1
}
