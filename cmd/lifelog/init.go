// Init command for the lifelog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lifelog storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		// Attach creates the data directory and the database schema.
		backend, err := attachBackend()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer backend.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}

		fmt.Println("Lifelog initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
