package main

import (
	"context"
	"os"

	"github.com/soyops/soyctl/cli"
	"github.com/soyops/soyctl/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		_ = log.GetLogger("soyctl.main").Error(
			"run failed",
			log.F("error", err.Error()),
		)
		os.Exit(1)
	}
}
