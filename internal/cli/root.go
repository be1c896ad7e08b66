package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/praxis/internal/config"
	"github.com/alexanderramin/praxis/internal/llm"
	"github.com/alexanderramin/praxis/internal/service"
	"github.com/alexanderramin/praxis/internal/store"
)

// App holds everything commands need. serve mounts the HTTP layer on
// top of the same services the local commands call directly.
type App struct {
	Config config.Config
	Store  *store.Store
	LLM    llm.LLMClient

	Profiles service.ProfileService
	Plans    service.PlanService
	Reality  service.RealityService
	Status   service.StatusService

	// IsInteractive gates wizard-style commands to real terminals.
	IsInteractive func() bool
	Version       string
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	dataDir    string
	debug      bool
}

// NewRootCmd creates the top-level "praxis" command and registers all
// subcommands.
func NewRootCmd(version string) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "praxis",
		Short:         "Weekly execution coach: plan the week, confront it with reality, adjust",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept snake_case spellings of flag names (--data_dir == --data-dir).
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ~/.praxis/config.yaml)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory for state and logs (default ~/.praxis)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Verbose logging, mirrored to stderr")

	root.AddCommand(
		newServeCmd(flags, version),
		newInitCmd(flags, version),
		newKeyCmd(flags),
		newResetCmd(flags, version),
		newDashboardCmd(flags, version),
		newVersionCmd(version),
	)

	return root
}

// loadConfig resolves the layered configuration and applies the
// command-line flags on top.
func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}
	if flags.debug {
		cfg.Log.Debug = true
	}
	return cfg, nil
}
