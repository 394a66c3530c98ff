package bridge

import (
	"runtime"
	"strings"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/global"
)

const bridgePkg = "github.com/philipp01105/sinklog/bridge"

// slotOrDefault returns slot, or global.Default() when it is nil
func slotOrDefault(slot *global.Slot) *global.Slot {
	if slot == nil {
		return global.Default()
	}
	return slot
}

// callerOrigin walks the stack and returns the first package that is not
// this package, the runtime, or one of frontend (matched by path prefix).
// It is the fallback for front-ends that did not capture a caller.
func callerOrigin(frontend ...string) string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if pkg := core.FuncOrigin(f.Function); pkg != "" && !skipPackage(pkg, frontend) {
			return pkg
		}
		if !more {
			return ""
		}
	}
}

func skipPackage(pkg string, frontend []string) bool {
	if pkg == bridgePkg || pkg == "runtime" {
		return true
	}
	for _, p := range frontend {
		if pkg == p || strings.HasPrefix(pkg, p+"/") {
			return true
		}
	}
	return false
}
