package cli

import (
	"github.com/alecthomas/kong"

	"github.com/soyops/soyctl/log"
)

type logConfig struct {
	Level string `default:"info"  enum:"debug,info,warning,error,critical" help:"Set log level."`
	JSON  bool   `default:"false"                                          help:"Render records as JSON objects."       negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start installs the facade configuration from the parsed flags.
func (f *logConfig) start() error {
	if err := log.Configure(f.JSON, f.Level); err != nil {
		return err
	}

	_ = log.GetLogger("soyctl.cli").Debug("logger initialized",
		log.F("level", f.Level),
		log.F("json", f.JSON),
	)

	return nil
}
