package log

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Renderer turns a finalized record into one output line, including the
// trailing newline.
type Renderer interface {
	Render(r *Record) ([]byte, error)
}

func rendererFor(f Format) Renderer {
	if f == FormatJSON {
		return jsonRenderer{}
	}

	return consoleRenderer{}
}

// jsonRenderer serializes the record as a single flat JSON object:
// event, level, timestamp, all bound and per-call fields in order, then
// lineno/module/func_name when callsite capture ran, then the exception
// payload.
type jsonRenderer struct{}

func (jsonRenderer) Render(r *Record) ([]byte, error) {
	buf := new(bytes.Buffer)

	buf.WriteByte('{')
	writeJSONPair(buf, "event", r.Event, true)
	writeJSONPair(buf, "level", r.Severity.String(), false)
	writeJSONPair(buf, "timestamp", r.Timestamp, false)

	for _, f := range r.Fields {
		writeJSONPair(buf, f.Key, f.Value, false)
	}

	if r.Module != "" || r.Func != "" {
		writeJSONPair(buf, "lineno", r.Line, false)
		writeJSONPair(buf, "module", r.Module, false)
		writeJSONPair(buf, "func_name", r.Func, false)
	}

	if r.Exception != nil {
		writeJSONPair(buf, "exception", r.Exception, false)
	}

	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// writeJSONPair appends one key/value pair. A value that cannot be
// marshaled is rendered as its fmt string form rather than failing the
// whole record.
func writeJSONPair(buf *bytes.Buffer, key string, value any, first bool) {
	if !first {
		buf.WriteByte(',')
	}

	k, err := json.Marshal(key)
	if err != nil {
		k, _ = json.Marshal(fmt.Sprint(key))
	}

	buf.Write(k)
	buf.WriteByte(':')

	v, err := json.Marshal(value)
	if err != nil {
		v, _ = json.Marshal(fmt.Sprint(value))
	}

	buf.Write(v)
}

// ANSI color codes for console output.
const (
	ansiReset   = "\033[0m"
	ansiGray    = "\033[90m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
	ansiRedBg   = "\033[41m"
)

// levelColors is the fixed console palette. Records carrying an
// exception payload are styled magenta regardless of severity.
var levelColors = map[Level]string{
	LevelDebug:    ansiCyan,
	LevelInfo:     ansiGreen,
	LevelWarning:  ansiYellow,
	LevelError:    ansiRed,
	LevelCritical: ansiRedBg,
}

// consoleRenderer produces a human-readable colorized line: timestamp,
// bracketed level, event text, then key=value pairs. Not byte-stable.
type consoleRenderer struct{}

func (consoleRenderer) Render(r *Record) ([]byte, error) {
	buf := new(bytes.Buffer)

	if r.Timestamp != "" {
		buf.WriteString(ansiGray)
		buf.WriteString(r.Timestamp)
		buf.WriteString(ansiReset)
		buf.WriteByte(' ')
	}

	color := levelColors[r.Severity]
	if color == "" {
		color = ansiGreen
	}

	if r.Exception != nil {
		color = ansiMagenta
	}

	fmt.Fprintf(buf, "%s[%-8s]%s %s", color, r.Severity.String(), ansiReset, r.Event)

	for _, f := range r.Fields {
		fmt.Fprintf(buf, " %s%s%s=%s%v%s",
			ansiGray, f.Key, ansiReset,
			ansiCyan, f.Value, ansiReset,
		)
	}

	if r.Module != "" || r.Func != "" {
		fmt.Fprintf(buf, " %s%s:%d (%s)%s",
			ansiGray, r.Module, r.Line, r.Func, ansiReset,
		)
	}

	if r.Exception != nil {
		fmt.Fprintf(buf, "\n%s%s: %s%s",
			ansiMagenta, r.Exception.Kind, r.Exception.Message, ansiReset,
		)

		for _, fr := range r.Exception.Frames {
			fmt.Fprintf(buf, "\n  %s:%d %s", fr.File, fr.Line, fr.Function)
		}
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
