package commands

import (
	"os"

	"sitesnap/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("sitesnap error", "err", err.Error())
	os.Exit(1)
}
