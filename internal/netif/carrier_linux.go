package netif

import (
	"fmt"

	"github.com/safchain/ethtool"
)

// Carrier reports whether the named interface has link-layer carrier.
func Carrier(name string) (bool, error) {
	e, err := ethtool.NewEthtool()
	if err != nil {
		return false, fmt.Errorf("ethtool init failed: %w", err)
	}
	defer e.Close()

	state, err := e.LinkState(name)
	if err != nil {
		return false, fmt.Errorf("failed to read link state of %s: %w", name, err)
	}
	return state != 0, nil
}

// DriverName returns the kernel driver bound to the named interface.
func DriverName(name string) (string, error) {
	e, err := ethtool.NewEthtool()
	if err != nil {
		return "", fmt.Errorf("ethtool init failed: %w", err)
	}
	defer e.Close()

	return e.DriverName(name)
}
