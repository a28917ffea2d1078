package log

import (
	"iter"
	"strings"
)

// Level represents the severity of a log record.
//
// The numeric values match the conventional severity table so that
// external consumers parsing rendered records can compare levels
// numerically. These values are load-bearing; do not renumber.
type Level int

const (
	LevelDebug    Level = 10 // debug
	LevelInfo     Level = 20 // info
	LevelWarning  Level = 30 // warning
	LevelError    Level = 40 // error
	LevelCritical Level = 50 // critical
)

// DefaultLevel is the minimum severity used before any configuration.
const DefaultLevel = LevelInfo

// levelNames and levelValues form the bidirectional level table.
var levelNames = map[Level]string{
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarning:  "warning",
	LevelError:    "error",
	LevelCritical: "critical",
}

var levelValues = map[string]Level{
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warning":  LevelWarning,
	"error":    LevelError,
	"critical": LevelCritical,
}

// String returns the lower-case name of the level, or "" for a value
// outside the table.
func (l Level) String() string {
	return levelNames[l]
}

// Valid reports whether the level is one of the five named severities.
func (l Level) Valid() bool {
	_, ok := levelNames[l]

	return ok
}

// Levels returns an iterator over all defined levels in ascending
// severity order.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for _, level := range []Level{
			LevelDebug,
			LevelInfo,
			LevelWarning,
			LevelError,
			LevelCritical,
		} {
			if !yield(level) {
				return
			}
		}
	}
}

// ParseLevel resolves a case-insensitive level name to its severity.
// Unrecognized names fail with an [*InvalidLevelError] naming the
// offending value.
func ParseLevel(s string) (Level, error) {
	level, ok := levelValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &InvalidLevelError{Value: s}
	}

	return level, nil
}
