package main

import (
	"os"

	"github.com/abdigaliarsen/api-gateway/cmd"
	"github.com/abdigaliarsen/api-gateway/internal/errors"
	"github.com/abdigaliarsen/api-gateway/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.UserError("%v", err)
		os.Exit(errors.GetExitCode(err))
	}
}
