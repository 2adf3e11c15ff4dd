// Root command for the lifelog CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/internal/logging"
	"github.com/mesh-intelligence/lifelog/internal/paths"
	"github.com/mesh-intelligence/lifelog/pkg/lifelog"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagOwner     string
	flagJSON      bool
	flagLogLevel  string
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configOwner   string
)

var rootCmd = &cobra.Command{
	Use:   "lifelog",
	Short: "Lifelog is a local-first journal of life events",
	Long: `Lifelog records discrete life events, optionally nested one level
deep into parent/sub-event pairs, attaches free-form analytic notes to
any event, and derives statistics (daily intensity/importance averages,
emotion frequency, volatility, calendar and timeline groupings) over a
chosen time window.`,
	Version:       lifelog.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configOwner = cfg.GetString(cfgKeyOwner)

		level := flagLogLevel
		if level == "" {
			level = cfg.GetString(cfgKeyLogLevel)
		}
		logging.Init(flagJSON, logging.ParseLevel(level))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.lifelog-db)")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", "", "owning-user id (default: $LIFELOG_OWNER or config.yaml owner)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default: info)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newEventCmd())
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(emotionsCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(seedCmd)
}

// resolveDataDir returns the data directory path following the
// precedence chain flag > config.yaml > env > CWD default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain flag > env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
