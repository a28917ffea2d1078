package log

import "sync"

// Registry is the process-wide cache mapping logger names to live
// handles, paired with the current configuration snapshot. It is safe
// for concurrent use. Most programs use the package default through
// [Configure] and [GetLogger]; independent registries exist for tests
// and embedded use.
type Registry struct {
	mu         sync.RWMutex
	cfg        *config
	entries    map[string]*Logger
	generation int
}

// NewRegistry constructs a registry with the default configuration
// (console format, info level, stdout sink) overridden by any options.
func NewRegistry(opts ...Option) *Registry {
	cfg := apply(defaultConfig(), opts...)
	cfg.renderer = rendererFor(cfg.format)

	return &Registry{
		cfg:     &cfg,
		entries: make(map[string]*Logger),
	}
}

// Configure installs a new configuration snapshot and invalidates all
// cached handles as a single atomic step. The minimum severity is
// resolved from the case-insensitive level name; an unrecognized name
// fails with [*InvalidLevelError] and leaves the configuration
// unchanged. Callsite capture is enabled only when the resolved level
// is below info, so the stack walk is never paid in production.
//
// Handles fetched before the call keep the snapshot they were built
// with; only subsequent [Registry.GetLogger] calls observe the new
// configuration.
func (r *Registry) Configure(useJSON bool, level string, opts ...Option) error {
	minLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	format := FormatConsole
	if useJSON {
		format = FormatJSON
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Carry the sink and clock forward; level, format, and callsite are
	// the knobs this call owns.
	cfg := *r.cfg
	cfg.minLevel = minLevel
	cfg.callsite = minLevel < LevelInfo
	cfg.format = format

	cfg = apply(cfg, opts...)
	cfg.renderer = rendererFor(cfg.format)

	r.cfg = &cfg
	r.generation++
	clear(r.entries)

	return nil
}

// GetLogger returns the cached handle for name under the current
// generation, lazily constructing one bound to the live configuration
// on a miss.
func (r *Registry) GetLogger(name string) *Logger {
	r.mu.RLock()
	cached, ok := r.entries[name]
	r.mu.RUnlock()

	if ok {
		return cached
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have won the race; duplicate construction is
	// benign but the cache must stay consistent.
	if cached, ok := r.entries[name]; ok {
		return cached
	}

	logger := &Logger{
		name:       name,
		cfg:        r.cfg,
		generation: r.generation,
	}
	r.entries[name] = logger

	return logger
}

// Generation returns the current configuration generation. It increases
// by one on every successful [Registry.Configure] call.
func (r *Registry) Generation() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.generation
}

// std is the package default registry, created at process start.
var std = NewRegistry()

// Default returns the package default registry.
func Default() *Registry {
	return std
}

// Configure reconfigures the default registry. See
// [Registry.Configure].
func Configure(useJSON bool, level string, opts ...Option) error {
	return std.Configure(useJSON, level, opts...)
}

// GetLogger fetches a handle from the default registry. See
// [Registry.GetLogger].
func GetLogger(name string) *Logger {
	return std.GetLogger(name)
}
