package log

// Logger is a named handle exposing leveled logging, context binding,
// and delegation to the configured sink. Handles are immutable:
// [Logger.Bind] and [Logger.New] return fresh handles and never mutate
// the receiver, and a handle keeps the configuration snapshot that was
// live when it was fetched, even across reconfiguration.
//
// All logging methods return an error so that legacy-format rejection
// and sink write failures reach the caller instead of being masked.
type Logger struct {
	name       string
	bound      []Field
	cfg        *config
	generation int
}

// Name returns the name the handle was fetched under.
func (l *Logger) Name() string {
	return l.name
}

// Generation returns the configuration generation the handle was built
// against.
func (l *Logger) Generation() int {
	return l.generation
}

// Debug logs an event at debug severity.
func (l *Logger) Debug(event string, fields ...Field) error {
	return l.emit(LevelDebug, event, fields, nil)
}

// Info logs an event at info severity.
func (l *Logger) Info(event string, fields ...Field) error {
	return l.emit(LevelInfo, event, fields, nil)
}

// Warning logs an event at warning severity.
func (l *Logger) Warning(event string, fields ...Field) error {
	return l.emit(LevelWarning, event, fields, nil)
}

// Error logs an event at error severity.
func (l *Logger) Error(event string, fields ...Field) error {
	return l.emit(LevelError, event, fields, nil)
}

// Critical logs an event at critical severity.
func (l *Logger) Critical(event string, fields ...Field) error {
	return l.emit(LevelCritical, event, fields, nil)
}

// Log logs an event at the given severity. A level outside the table
// falls back to info.
func (l *Logger) Log(level Level, event string, fields ...Field) error {
	if !level.Valid() {
		level = LevelInfo
	}

	return l.emit(level, event, fields, nil)
}

// Exception logs an event at error severity with a structured exception
// payload built from err. A nil err emits the record without a payload.
func (l *Logger) Exception(err error, event string, fields ...Field) error {
	return l.emit(LevelError, event, fields, err)
}

// Bind returns a new handle whose bound fields are the receiver's plus
// the given fields, per-call values winning on key collision. Bound
// fields are inherited by every record the new handle emits.
func (l *Logger) Bind(fields ...Field) *Logger {
	return &Logger{
		name:       l.name,
		bound:      mergeFields(l.bound, fields),
		cfg:        l.cfg,
		generation: l.generation,
	}
}

// New is a documented alias of [Logger.Bind].
func (l *Logger) New(fields ...Field) *Logger {
	return l.Bind(fields...)
}

// emit runs the per-call pipeline: extra flattening, legacy-format
// rejection, severity gate, interpolation, optional callsite capture,
// bound-field merging, rendering, and the sink write.
func (l *Logger) emit(level Level, event string, fields []Field, cause error) error {
	fields = flattenExtra(fields)

	// Rejected unconditionally, even below the severity gate, so legacy
	// usage is caught in development regardless of log level.
	if detectLegacyFormat(event) {
		return &LegacyInterpolationError{Event: event}
	}

	cfg := l.cfg
	if level < cfg.minLevel {
		return nil
	}

	rec := &Record{
		Severity:  level,
		Event:     interpolate(event, fields),
		Fields:    mergeFields(l.bound, fields),
		Timestamp: cfg.now().Format(timestampLayout),
	}

	if cfg.callsite {
		if module, line, function, ok := callsite(); ok {
			rec.Module = module
			rec.Line = line
			rec.Func = function
		}
	}

	if cause != nil {
		rec.Exception = exceptionFromError(cause)
	}

	line, err := cfg.renderer.Render(rec)
	if err != nil {
		return err
	}

	return cfg.sink.Write(line)
}
