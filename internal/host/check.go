// Package host verifies the fatal preconditions: root privilege and the
// presence of the interfaces the AP needs. Checks run before any mutation.
package host

import (
	"fmt"
	"os"

	"github.com/stagelink/apctl/internal/brand"
	"github.com/stagelink/apctl/internal/netif"
)

// overridable in tests
var (
	geteuid    = os.Geteuid
	isWireless = netif.IsWireless
)

// RequireRoot fails unless the process runs with effective UID 0.
func RequireRoot() error {
	if geteuid() != 0 {
		return fmt.Errorf("%s must be run as root", brand.BinaryName)
	}
	return nil
}

// RequireInterface fails unless the named link exists.
func RequireInterface(nl netif.Netlinker, name string) error {
	if !netif.InterfaceExists(nl, name) {
		return fmt.Errorf("interface %s not found", name)
	}
	return nil
}

// RequireWireless fails unless the named link exists and carries a radio.
func RequireWireless(nl netif.Netlinker, name string) error {
	if err := RequireInterface(nl, name); err != nil {
		return err
	}
	if !isWireless(name) {
		return fmt.Errorf("interface %s is not a wireless device", name)
	}
	return nil
}
