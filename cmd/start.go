package cmd

import (
	"errors"
	"fmt"

	"github.com/stagelink/apctl/internal/ap"
	"github.com/stagelink/apctl/internal/brand"
)

// RunStart brings the access point up.
func RunStart(configFile string, dryRun bool) error {
	c, cfg, err := buildController(configFile, dryRun)
	if err != nil {
		return err
	}

	rep, err := c.Start()
	reportIgnored(rep)
	if err != nil {
		if errors.Is(err, ap.ErrDaemonInactive) {
			return fmt.Errorf("%w\nCheck the daemon log: journalctl -u %s", err, brand.HostapdUnit)
		}
		return err
	}

	if dryRun {
		Printer.Println("Dry run complete. No changes were applied.")
		return nil
	}
	Printer.Printf("Access point %q is up on bridge %s.\n", cfg.SSID, cfg.BridgeName)
	return nil
}
