// Package sysdeps ensures the Debian packages the AP needs are installed.
package sysdeps

import (
	"fmt"
	"strings"

	"github.com/stagelink/apctl/internal/execx"
	"github.com/stagelink/apctl/internal/logging"
)

// DefaultPackages are required for a bridged hostapd AP.
var DefaultPackages = []string{"hostapd", "bridge-utils"}

const installedStatus = "install ok installed"

// Ensure installs any of pkgs that dpkg does not report as installed.
// Already-installed packages are left untouched.
func Ensure(exec execx.CommandExecutor, log *logging.Logger, pkgs ...string) error {
	if log == nil {
		log = logging.WithComponent("sysdeps")
	}

	var missing []string
	for _, pkg := range pkgs {
		out, err := exec.RunCommand("dpkg-query", "-W", "-f=${Status}", pkg)
		if err != nil || !strings.Contains(out, installedStatus) {
			missing = append(missing, pkg)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	log.Info("installing missing packages", "packages", strings.Join(missing, " "))
	args := append([]string{"install", "-y", "--no-install-recommends"}, missing...)
	if _, err := exec.RunCommand("apt-get", args...); err != nil {
		return fmt.Errorf("failed to install %s: %w", strings.Join(missing, " "), err)
	}
	return nil
}
