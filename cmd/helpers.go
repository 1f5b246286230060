// Package cmd implements the apctl subcommands.
package cmd

import (
	"fmt"

	"github.com/stagelink/apctl/internal/ap"
	"github.com/stagelink/apctl/internal/config"
	"github.com/stagelink/apctl/internal/execx"
	"github.com/stagelink/apctl/internal/i18n"
	"github.com/stagelink/apctl/internal/logging"
	"github.com/stagelink/apctl/internal/netif"
)

// Printer is the locale-aware printer used for all CLI output.
var Printer = i18n.NewCLIPrinter()

// buildController loads and validates the config, then wires a controller.
// In dry-run mode netlink and command effects are replaced by loggers.
func buildController(configFile string, dryRun bool) (*ap.Controller, *config.Config, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("configuration error: %w", err)
	}

	nl := netif.DefaultNetlinker
	exec := execx.Default
	if dryRun {
		nl = &netif.DryRunNetlinker{}
		exec = &execx.DryRunCommandExecutor{Log: logging.WithComponent("dry-run")}
	}

	c := ap.New(cfg, nl, exec, logging.WithComponent("ap"))
	c.DryRun = dryRun
	return c, cfg, nil
}

// reportIgnored surfaces suppressed best-effort failures to the user.
func reportIgnored(rep *ap.Report) {
	for _, step := range rep.IgnoredFailures() {
		Printer.Printf("note: %s failed (ignored): %v\n", step.Name, step.Err)
	}
}
