package log

import (
	"reflect"
	"runtime"
	"strings"
)

// maxExceptionFrames bounds the stack attached to an exception payload.
const maxExceptionFrames = 32

// facadePath is this package's import path, used to skip facade-internal
// frames when walking the call stack.
var facadePath = reflect.TypeOf(Record{}).PkgPath()

// callsite returns the first stack frame outside the facade: the
// caller's package import path (not its file name), line number, and
// function name. Only invoked when callsite capture is enabled, so the
// stack walk is never paid above debug verbosity.
func callsite() (module string, line int, function string, ok bool) {
	var pcs [16]uintptr

	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()

		if frame.Function != "" && !internalFrame(frame.Function) {
			mod, name := splitFunction(frame.Function)

			return mod, frame.Line, name, true
		}

		if !more {
			return "", 0, "", false
		}
	}
}

// captureFrames collects up to limit frames of the current stack,
// skipping facade-internal frames.
func captureFrames(limit int) []StackFrame {
	var pcs [64]uintptr

	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var out []StackFrame

	for {
		frame, more := frames.Next()

		if frame.Function != "" && !internalFrame(frame.Function) {
			_, name := splitFunction(frame.Function)

			out = append(out, StackFrame{
				File:     frame.File,
				Line:     frame.Line,
				Function: name,
			})
		}

		if !more || len(out) >= limit {
			return out
		}
	}
}

func internalFrame(qualified string) bool {
	mod, _ := splitFunction(qualified)

	return mod == facadePath
}

// splitFunction splits a runtime-qualified function name like
// "github.com/soyops/soyctl/asset.FromFile" or
// "github.com/soyops/soyctl/cli.(*CLI).Run" into the package import
// path and the function name.
func splitFunction(qualified string) (pkgPath, name string) {
	slash := strings.LastIndexByte(qualified, '/')

	dot := strings.IndexByte(qualified[slash+1:], '.')
	if dot < 0 {
		return "", qualified
	}

	dot += slash + 1

	return qualified[:dot], qualified[dot+1:]
}
