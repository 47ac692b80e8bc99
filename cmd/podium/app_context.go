package main

import (
	"github.com/alexisbeaulieu97/podium/internal/config"
	"github.com/alexisbeaulieu97/podium/internal/layout"
	"github.com/alexisbeaulieu97/podium/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger *logger.Logger
}

var app = &AppContext{Logger: logger.Nop()}

func setAppLogger(log *logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	app.Logger = log
}

// loadCatalogue reads the device catalogue named by --config and builds a
// resolver from its tuning section.
func loadCatalogue(operation string, flags *rootFlags) (*config.Config, *layout.Resolver, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		app.Logger.Error(err, "device catalogue load failed", "path", flags.configPath)
		return nil, nil, newCommandError(operation, "loading device catalogue", err, "Check the catalogue path and fix the errors shown above.")
	}

	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, nil, newCommandError(operation, "building layout resolver", err, "Check the tuning section of the device catalogue.")
	}

	return cfg, resolver, nil
}
