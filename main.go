package main

import (
	"os"

	"github.com/firefly-engineering/worldclock/cmd"
	"github.com/firefly-engineering/worldclock/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
