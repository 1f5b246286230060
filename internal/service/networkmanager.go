package service

import (
	"fmt"

	"github.com/stagelink/apctl/internal/execx"
	"github.com/stagelink/apctl/internal/logging"
)

// NetworkManager releases and reclaims the radio via nmcli so hostapd can
// own the interface while the AP is up.
type NetworkManager struct {
	exec execx.CommandExecutor
	log  *logging.Logger
}

// NewNetworkManager returns a NetworkManager using the given executor.
func NewNetworkManager(exec execx.CommandExecutor, log *logging.Logger) *NetworkManager {
	if log == nil {
		log = logging.WithComponent("service")
	}
	return &NetworkManager{exec: exec, log: log}
}

// Disconnect detaches the interface from whatever network it joined.
func (n *NetworkManager) Disconnect(iface string) error {
	if _, err := n.exec.RunCommand("nmcli", "device", "disconnect", iface); err != nil {
		return fmt.Errorf("failed to disconnect %s: %w", iface, err)
	}
	return nil
}

// SetManaged toggles NetworkManager's ownership of the interface.
func (n *NetworkManager) SetManaged(iface string, managed bool) error {
	state := "no"
	if managed {
		state = "yes"
	}
	if _, err := n.exec.RunCommand("nmcli", "device", "set", iface, "managed", state); err != nil {
		return fmt.Errorf("failed to set %s managed=%s: %w", iface, state, err)
	}
	return nil
}
