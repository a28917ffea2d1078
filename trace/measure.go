// Package trace provides a timing helper that reports execution
// durations through the logging facade.
package trace

import (
	"time"

	"github.com/soyops/soyctl/log"
)

// Measure starts a timer and returns a completion function intended for
// defer. On success it emits a debug record carrying the elapsed time
// in seconds; when *errp holds an error at completion it emits an
// exception record instead. Both go through a handle bound with the
// measured name.
//
//	func (c *Check) Run(ctx context.Context) (err error) {
//		defer trace.Measure(logger, "Check.Run")(&err)
//		...
//	}
//
// A nil errp measures an operation that cannot fail.
func Measure(logger *log.Logger, name string) func(errp *error) {
	start := time.Now()
	bound := logger.Bind(log.F("func_name", name))

	return func(errp *error) {
		elapsed := time.Since(start).Seconds()

		if errp != nil && *errp != nil {
			_ = bound.Exception(*errp, "failed to execute function",
				log.F("execution_time", elapsed),
			)

			return
		}

		_ = bound.Debug("execution details for function '{func_name}'",
			log.F("func_name", name),
			log.F("execution_time", elapsed),
		)
	}
}
