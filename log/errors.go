package log

import "fmt"

// InvalidLevelError reports an unrecognized level name passed to
// [ParseLevel] or [Registry.Configure]. The configuration in effect is
// left unchanged.
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level: %q", e.Value)
}

// LegacyInterpolationError reports a printf-style interpolation token in
// a log message. The offending call never reaches the sink; callers must
// use named placeholders instead:
//
//	logger.Info("User {user_id} logged in", log.F("user_id", 123))
type LegacyInterpolationError struct {
	Event string
}

func (e *LegacyInterpolationError) Error() string {
	return fmt.Sprintf(
		"old-style string interpolation detected in log message: %q: "+
			"use named {placeholder} tokens with structured fields instead",
		e.Event,
	)
}
