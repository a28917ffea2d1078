package cmd

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/soyops/soyctl/config"
	"github.com/soyops/soyctl/log"
)

// Env prints the resolved environment settings.
type Env struct {
	Dir string `default:"." help:"Directory containing env.<name>.yaml files." type:"existingdir"`
}

// Run implements the env command.
func (e *Env) Run(_ context.Context) error {
	logger := log.GetLogger("soyctl.cli.env")

	settings, err := config.Load(e.Dir)
	if err != nil {
		_ = logger.Exception(err, "failed to load environment settings",
			log.F("dir", e.Dir),
		)

		return err
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "encoding settings")
	}

	fmt.Printf("environment: %s\n%s", settings.Environment, out)

	_ = logger.Info("environment settings resolved",
		log.F("env", string(settings.Environment)),
		log.F("log_level", settings.LogLevel),
		log.F("log_to_json", settings.LogToJSON),
	)

	return nil
}
