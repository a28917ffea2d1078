package log_test

import (
	"github.com/soyops/soyctl/log"
)

func Example_basic() {
	_ = log.Configure(false, "INFO")

	logger := log.GetLogger("soyctl.tasks")
	_ = logger.Info("transformation started", log.F("asset", "daily_yield"))
}

func Example_placeholders() {
	logger := log.GetLogger("soyctl.tasks")

	// Placeholders are substituted from the call's fields; every field
	// also remains in structured output.
	_ = logger.Info("User {user_id} performed {action}",
		log.F("user_id", 123),
		log.F("action", "login"),
	)
}

func Example_bind() {
	logger := log.GetLogger("soyctl.tasks")

	runLog := logger.Bind(log.F("run_id", "r-42"))
	_ = runLog.Info("step finished", log.F("step", "extract"))
	_ = runLog.Info("step finished", log.F("step", "load"))
}

func Example_json() {
	// JSON rendering with callsite metadata enabled by debug verbosity.
	_ = log.Configure(true, "DEBUG")

	logger := log.GetLogger("soyctl.tasks")
	_ = logger.Debug("cluster state polled", log.F("state", "RUNNING"))
}

func Example_exception() {
	logger := log.GetLogger("soyctl.tasks")

	if err := loadSettings(); err != nil {
		_ = logger.Exception(err, "failed to load settings", log.F("env", "dev"))
	}
}

func loadSettings() error {
	return nil
}
