package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/praxis/internal/config"
	"github.com/alexanderramin/praxis/internal/intelligence"
	"github.com/alexanderramin/praxis/internal/keyring"
	"github.com/alexanderramin/praxis/internal/llm"
	"github.com/alexanderramin/praxis/internal/logger"
	"github.com/alexanderramin/praxis/internal/service"
	"github.com/alexanderramin/praxis/internal/store"
)

// buildApp wires the store, the LLM client, and the services. A provider
// that cannot be constructed degrades to a disabled client rather than
// failing startup, so the rest of the app stays usable.
func buildApp(ctx context.Context, cfg config.Config, version string) (*App, error) {
	if err := logger.Init(logger.Config{
		Level:   cfg.Log.Level,
		Debug:   cfg.Log.Debug,
		DataDir: cfg.DataDir,
	}); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg.LLM = resolveAPIKey(cfg.LLM)
	st := store.New(cfg.DataDir)

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	client := llm.NewDisabledClient()
	if cfg.LLM.Enabled {
		c, err := llm.NewClient(ctx, cfg.LLM, observer)
		if err != nil {
			logger.Warn("llm provider unusable, generation will fail",
				"provider", cfg.LLM.Provider, "error", err)
		} else {
			client = c
		}
	}

	planner := intelligence.NewPlanner(client, observer)
	reviewer := intelligence.NewReviewer(client, observer)
	adjuster := intelligence.NewAdjuster(client, observer)

	app := &App{
		Config:   cfg,
		Store:    st,
		LLM:      client,
		Profiles: service.NewProfileService(st),
		Plans:    service.NewPlanService(st, planner, adjuster),
		Reality:  service.NewRealityService(st, reviewer),
		Status:   service.NewStatusService(st, cfg.LLM),
		Version:  version,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	return app, nil
}

// resolveAPIKey fills cfg.APIKey from the OS keyring when neither the
// environment nor the config file provided one.
func resolveAPIKey(cfg llm.LLMConfig) llm.LLMConfig {
	if cfg.APIKey != "" {
		return cfg
	}
	if key, err := keyring.APIKey(string(cfg.Provider)); err == nil {
		cfg.APIKey = key
	}
	return cfg
}

// appFor is the common entry point for commands: resolve config, apply
// flags, wire the app.
func appFor(ctx context.Context, flags *rootFlags, version string) (*App, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	return buildApp(ctx, cfg, version)
}
