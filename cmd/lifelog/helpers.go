// Shared helpers for lifelog CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/lifelog/internal/sqlite"
	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// resolveOwner returns the owning-user id following the precedence
// chain --owner flag > LIFELOG_OWNER env > config.yaml owner.
func resolveOwner() (string, error) {
	if flagOwner != "" {
		return flagOwner, nil
	}
	if env := os.Getenv("LIFELOG_OWNER"); env != "" {
		return env, nil
	}
	if configOwner != "" {
		return configOwner, nil
	}
	return "", fmt.Errorf("%w: owner id is required (--owner, $LIFELOG_OWNER, or config.yaml)", types.ErrInvalidInput)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// stringPtr returns a pointer to s. Used when building patches from
// changed flags.
func stringPtr(s string) *string { return &s }

// intPtr returns a pointer to n.
func intPtr(n int) *int { return &n }

// slicePtr returns a pointer to v.
func slicePtr(v []string) *[]string { return &v }
