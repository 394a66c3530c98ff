package core

import (
	"runtime"
	"strings"
)

// Record is a single log event as delivered by a front-end.
// The logger reads it during dispatch and never keeps it.
type Record struct {
	Level   Level
	Origin  string
	Message string
}

// Origin returns the package path of the function skip frames above the
// caller, e.g. "github.com/acme/app/internal/store". It returns "" when the
// frame cannot be resolved.
func Origin(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return FuncOrigin(frame.Function)
}

// OriginOf returns the package path of the function a return address
// captured with runtime.Callers belongs to, as in slog.Record.PC.
func OriginOf(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return FuncOrigin(frame.Function)
}

// FuncOrigin returns the package path of a fully qualified function name
// as reported by runtime.Frame.Function.
func FuncOrigin(funcName string) string {
	if funcName == "" {
		return ""
	}
	return packagePath(funcName)
}

// packagePath strips the function and receiver from a fully qualified
// function name: "a/b/c.(*T).M.func1" -> "a/b/c". The linker escapes dots
// in the last path element ("yaml%2ev3"), so those are restored.
func packagePath(funcName string) string {
	lastSlash := strings.LastIndexByte(funcName, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}
	path := funcName
	if dot := strings.IndexByte(funcName[lastSlash:], '.'); dot >= 0 {
		path = funcName[:lastSlash+dot]
	}
	return strings.ReplaceAll(path, "%2e", ".")
}
