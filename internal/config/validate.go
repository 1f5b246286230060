package config

import (
	"fmt"
	"strings"
)

// valid 5 GHz channels hostapd will accept for hw_mode=a without DFS games.
var channels5GHz = map[int]bool{
	36: true, 40: true, 44: true, 48: true,
	149: true, 153: true, 157: true, 161: true, 165: true,
}

// Validate checks the configuration for values hostapd or the kernel would
// reject. It reports the first problem found.
func (c *Config) Validate() error {
	if n := len(c.SSID); n == 0 || n > 32 {
		return fmt.Errorf("ssid must be 1-32 bytes, got %d", n)
	}

	if !isHexPSK(c.Passphrase) {
		if n := len(c.Passphrase); n < 8 || n > 63 {
			return fmt.Errorf("passphrase must be 8-63 characters or a 64-digit hex PSK, got %d characters", n)
		}
	}

	for _, iface := range []struct{ name, field string }{
		{c.WifiInterface, "wifi_interface"},
		{c.LanInterface, "lan_interface"},
		{c.BridgeName, "bridge_name"},
	} {
		if err := validateIfaceName(iface.name); err != nil {
			return fmt.Errorf("%s: %w", iface.field, err)
		}
	}

	if c.BridgeName == c.WifiInterface || c.BridgeName == c.LanInterface {
		return fmt.Errorf("bridge_name %q must differ from its member interfaces", c.BridgeName)
	}
	if c.WifiInterface == c.LanInterface {
		return fmt.Errorf("wifi_interface and lan_interface are both %q", c.WifiInterface)
	}

	switch c.HWMode {
	case "g":
		if c.Channel < 1 || c.Channel > 14 {
			return fmt.Errorf("channel %d is not valid for hw_mode=g (1-14)", c.Channel)
		}
	case "a":
		if !channels5GHz[c.Channel] {
			return fmt.Errorf("channel %d is not valid for hw_mode=a", c.Channel)
		}
	default:
		return fmt.Errorf("hw_mode must be \"g\" or \"a\", got %q", c.HWMode)
	}

	if c.Wpa != 2 && c.Wpa != 3 {
		return fmt.Errorf("wpa must be 2 (WPA2) or 3 (WPA2/WPA3 mixed), got %d", c.Wpa)
	}

	if c.CountryCode != "" && len(c.CountryCode) != 2 {
		return fmt.Errorf("country_code must be a 2-letter ISO code, got %q", c.CountryCode)
	}

	return nil
}

// isHexPSK reports whether s is a raw 256-bit WPA PSK in hex form.
func isHexPSK(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func validateIfaceName(name string) error {
	if name == "" {
		return fmt.Errorf("interface name is empty")
	}
	if len(name) > 15 {
		return fmt.Errorf("interface name %q exceeds 15 characters", name)
	}
	if strings.ContainsAny(name, "/ \t\n") {
		return fmt.Errorf("interface name %q contains invalid characters", name)
	}
	return nil
}
