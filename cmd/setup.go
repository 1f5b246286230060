package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stagelink/apctl/internal/brand"
	"github.com/stagelink/apctl/internal/config"
)

// RunSetup seeds a config file with the built-in defaults (plus any APCTL_*
// environment overrides) so the user has something to edit.
func RunSetup(configDir string, force bool) error {
	if configDir == "" {
		configDir = brand.GetConfigDir()
	}
	path := filepath.Join(configDir, brand.ConfigFileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	cfg := config.Default()
	cfg.ApplyEnv()

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, config.ExampleHCL(cfg), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	Printer.Printf("Wrote %s\n", path)
	return nil
}
