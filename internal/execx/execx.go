// Package execx abstracts external command execution so OS glue
// (systemctl, nmcli, dpkg, apt-get) can be faked in tests and logged in
// dry-run mode.
package execx

import (
	"fmt"
	"os/exec"

	"github.com/stagelink/apctl/internal/logging"
)

// CommandExecutor is an interface that abstracts executing shell commands.
type CommandExecutor interface {
	RunCommand(name string, arg ...string) (string, error)
}

// Default is the default RealCommandExecutor instance.
var Default CommandExecutor = &RealCommandExecutor{}

// RealCommandExecutor is a concrete implementation of CommandExecutor using os/exec.
type RealCommandExecutor struct{}

// RunCommand runs a command and returns its combined output.
func (r *RealCommandExecutor) RunCommand(name string, arg ...string) (string, error) {
	cmd := exec.Command(name, arg...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("command %s %v failed: %w, output: %s", name, arg, err, string(output))
	}
	return string(output), nil
}

// DryRunCommandExecutor logs commands instead of running them. Queries
// succeed with empty output.
type DryRunCommandExecutor struct {
	Log *logging.Logger
}

// RunCommand logs the command and returns empty output.
func (d *DryRunCommandExecutor) RunCommand(name string, arg ...string) (string, error) {
	log := d.Log
	if log == nil {
		log = logging.Default()
	}
	log.Info("DRY-RUN: would execute", "cmd", name, "args", fmt.Sprintf("%v", arg))
	return "", nil
}
