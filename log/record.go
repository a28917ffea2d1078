package log

import (
	"fmt"
	"maps"
	"runtime"
	"slices"

	"github.com/pkg/errors"
)

// Field is a single structured key/value pair attached to a record.
type Field struct {
	Key   string
	Value any
}

// F constructs a [Field].
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Fields is the plain mapping form of structured context. It is accepted
// as the value of a field named "extra", whose entries are flattened
// into the call's fields with explicitly passed fields winning on key
// collision.
type Fields map[string]any

// Record is a single finalized log record. Built fresh per call and
// never mutated after it is handed to the renderer.
type Record struct {
	Severity  Level
	Event     string
	Fields    []Field
	Timestamp string

	// Callsite metadata, populated only when the configuration was
	// built with a minimum severity below info.
	Module string
	Line   int
	Func   string

	Exception *ExceptionInfo
}

// ExceptionInfo is the structured form of an error attached via
// [Logger.Exception]. Local variable values are deliberately excluded.
type ExceptionInfo struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Frames  []StackFrame `json:"frames"`
}

// StackFrame is one frame of an exception stack.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// stackTracer is satisfied by errors created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// exceptionFromError builds the exception payload for err. Frames come
// from the error itself when it carries a stack, otherwise from the
// callsite of the Exception call.
func exceptionFromError(err error) *ExceptionInfo {
	info := &ExceptionInfo{
		Kind:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}

	var st stackTracer
	if errors.As(err, &st) {
		for _, f := range st.StackTrace() {
			pc := uintptr(f) - 1

			fn := runtime.FuncForPC(pc)
			if fn == nil {
				continue
			}

			file, line := fn.FileLine(pc)
			_, name := splitFunction(fn.Name())

			info.Frames = append(info.Frames, StackFrame{
				File:     file,
				Line:     line,
				Function: name,
			})
		}
	}

	if len(info.Frames) == 0 {
		info.Frames = captureFrames(maxExceptionFrames)
	}

	return info
}

// flattenExtra expands a field named "extra" holding a mapping into
// individual fields. Extra entries come first in sorted key order;
// explicitly passed fields override same-named extra entries.
func flattenExtra(fields []Field) []Field {
	idx := -1

	var extra map[string]any

	for i, f := range fields {
		if f.Key != "extra" {
			continue
		}

		switch v := f.Value.(type) {
		case Fields:
			extra = v
		case map[string]any:
			extra = v
		default:
			continue
		}

		idx = i

		break
	}

	if idx < 0 {
		return fields
	}

	out := make([]Field, 0, len(extra)+len(fields)-1)
	for _, k := range slices.Sorted(maps.Keys(extra)) {
		out = append(out, Field{Key: k, Value: extra[k]})
	}

	rest := make([]Field, 0, len(fields)-1)
	rest = append(rest, fields[:idx]...)
	rest = append(rest, fields[idx+1:]...)

	return mergeFields(out, rest)
}

// mergeFields overlays overlay onto base, preserving base ordering.
// A collision keeps the base position but takes the overlay value.
// Always returns a fresh slice; neither input is mutated.
func mergeFields(base, overlay []Field) []Field {
	out := make([]Field, 0, len(base)+len(overlay))
	out = append(out, base...)

	for _, f := range overlay {
		replaced := false

		for i := range out {
			if out[i].Key == f.Key {
				out[i].Value = f.Value
				replaced = true

				break
			}
		}

		if !replaced {
			out = append(out, f)
		}
	}

	return out
}
