package cmd

import (
	"context"

	"github.com/soyops/soyctl/asset"
	"github.com/soyops/soyctl/config"
	"github.com/soyops/soyctl/log"
	"github.com/soyops/soyctl/trace"
)

// Check validates an asset definition against the resolved environment
// settings.
type Check struct {
	Dir      string `arg:""      help:"Asset directory containing io.yaml." type:"existingdir"`
	Settings string `default:"." help:"Directory containing env.<name>.yaml files." type:"existingdir"`
}

// Run implements the check command.
func (c *Check) Run(_ context.Context) (err error) {
	logger := log.GetLogger("soyctl.cli.check")

	defer trace.Measure(logger, "Check.Run")(&err)

	settings, err := config.Load(c.Settings)
	if err != nil {
		_ = logger.Exception(err, "failed to load environment settings",
			log.F("dir", c.Settings),
		)

		return err
	}

	cfg, err := asset.FromDir(c.Dir, settings.TemplateVars())
	if err != nil {
		_ = logger.Exception(err, "asset definition invalid",
			log.F("dir", c.Dir),
		)

		return err
	}

	_ = logger.Info("asset definition {name} is valid",
		log.F("name", cfg.Name),
		log.F("inputs", len(cfg.Inputs)),
		log.F("outputs", len(cfg.Outputs)),
	)

	return nil
}
