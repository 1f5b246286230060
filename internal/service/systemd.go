// Package service drives systemd units and NetworkManager around the
// hostapd daemon.
package service

import (
	"fmt"
	"strings"

	"github.com/stagelink/apctl/internal/execx"
	"github.com/stagelink/apctl/internal/logging"
)

// Systemd controls systemd units through systemctl.
type Systemd struct {
	exec execx.CommandExecutor
	log  *logging.Logger
}

// NewSystemd returns a Systemd using the given executor.
func NewSystemd(exec execx.CommandExecutor, log *logging.Logger) *Systemd {
	if log == nil {
		log = logging.WithComponent("service")
	}
	return &Systemd{exec: exec, log: log}
}

// Unmask unmasks the unit. Debian ships hostapd masked by default.
func (s *Systemd) Unmask(unit string) error {
	if _, err := s.exec.RunCommand("systemctl", "unmask", unit); err != nil {
		return fmt.Errorf("failed to unmask %s: %w", unit, err)
	}
	return nil
}

// Start starts the unit.
func (s *Systemd) Start(unit string) error {
	s.log.Info("starting unit", "unit", unit)
	if _, err := s.exec.RunCommand("systemctl", "start", unit); err != nil {
		return fmt.Errorf("failed to start %s: %w", unit, err)
	}
	return nil
}

// Stop stops the unit.
func (s *Systemd) Stop(unit string) error {
	s.log.Info("stopping unit", "unit", unit)
	if _, err := s.exec.RunCommand("systemctl", "stop", unit); err != nil {
		return fmt.Errorf("failed to stop %s: %w", unit, err)
	}
	return nil
}

// IsActive reports whether the unit is active. systemctl exits nonzero for
// inactive units, so the output is consulted before the error.
func (s *Systemd) IsActive(unit string) (bool, error) {
	out, err := s.exec.RunCommand("systemctl", "is-active", unit)
	state := strings.TrimSpace(out)
	if state == "active" {
		return true, nil
	}
	switch state {
	case "inactive", "failed", "activating", "deactivating", "unknown":
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", unit, err)
	}
	return false, nil
}
