package log

import (
	"io"
	"os"
	"time"
)

// Format represents the output format for rendered records.
type Format int

const (
	FormatConsole Format = iota // console
	FormatJSON                  // json
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}

	return "console"
}

// timestampLayout is the fixed record timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// config is a configuration snapshot. Exactly one snapshot is live per
// registry; [Registry.Configure] replaces it wholesale rather than
// mutating it, so a reader can never observe a minimum level that does
// not match its renderer or callsite setting. Loggers hold the snapshot
// that was live when they were fetched.
type config struct {
	minLevel Level
	format   Format
	callsite bool
	renderer Renderer
	sink     Sink
	now      func() time.Time
}

// Option overrides an optional configuration value during
// [NewRegistry] or [Registry.Configure].
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

func defaultConfig() config {
	return config{
		minLevel: DefaultLevel,
		format:   FormatConsole,
		renderer: consoleRenderer{},
		sink:     NewWriterSink(os.Stdout),
		now:      time.Now,
	}
}

// WithSink returns an option that sets the sink receiving rendered
// records. The sink is carried across reconfigurations until replaced.
func WithSink(s Sink) Option {
	return func(c config) config {
		if s != nil {
			c.sink = s
		}

		return c
	}
}

// WithOutput returns an option that directs rendered records to w.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		c.sink = NewWriterSink(w)

		return c
	}
}

// WithClock returns an option that overrides the timestamp source.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c config) config {
		if now != nil {
			c.now = now
		}

		return c
	}
}
