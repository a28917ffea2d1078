// Package log provides a concurrency-safe structured-logging facade
// with a strict contract for how messages and fields are produced,
// filtered, and rendered.
//
// # Basic Usage
//
// Configure the facade once at startup, then fetch named handles:
//
//	if err := log.Configure(false, "INFO"); err != nil {
//		return err
//	}
//
//	logger := log.GetLogger("soyctl.asset")
//	logger.Info("asset loaded", log.F("asset", name))
//
// # Placeholders
//
// Messages may carry named {placeholder} tokens, substituted
// best-effort from the call's fields. Substitution never fails: a token
// without a matching field is left verbatim, and a malformed template
// falls back to the literal message. Every field remains in structured
// output whether or not it was consumed:
//
//	logger.Info("User {user_id} performed {action}",
//		log.F("user_id", 123), log.F("action", "login"))
//
// Printf-style interpolation is forbidden: any message containing a
// token such as %s, %d, or %(name)s is rejected with a
// [*LegacyInterpolationError] before it can reach the sink, regardless
// of the configured level.
//
// # Binding
//
// [Logger.Bind] returns a new immutable handle whose bound fields are
// inherited by every record it emits:
//
//	reqLog := logger.Bind(log.F("request_id", id))
//	reqLog.Info("request received")
//
// # Levels and Rendering
//
// Severity order is fixed: debug(10) < info(20) < warning(30) <
// error(40) < critical(50). A record is emitted iff its severity is at
// least the configured minimum. Records render either as flat JSON
// objects (one per line) or as colorized console text, selected by the
// first argument to [Configure]. Callsite metadata (module import path,
// line, function) is collected only when the minimum level is below
// info.
//
// # Reconfiguration
//
// [Configure] atomically installs a fresh configuration and clears the
// handle cache, bumping the registry generation. Handles fetched before
// the call keep the configuration they were built with; fetch a fresh
// handle to observe the new one.
package log
