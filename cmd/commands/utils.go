package commands

import (
	"errors"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"

	"assetgate"
	"assetgate/config"
)

func ExitOnError(err error) {
	logger.Error("assetgate error", "err", err.Error())
	os.Exit(1)
}

func versionString() string {
	return assetgate.StringVersion()
}

// loadConfig loads the config named by args[2] and initialises the global logger.
func loadConfig(args []string) *config.Config {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	return cfg
}
