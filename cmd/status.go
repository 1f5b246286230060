package cmd

import (
	"strings"

	"github.com/stagelink/apctl/internal/brand"
)

// RunStatus prints the AP state. It is read-only: nothing is written or
// installed on this path.
func RunStatus(configFile string) error {
	c, cfg, err := buildController(configFile, false)
	if err != nil {
		return err
	}

	st, err := c.Status()
	if err != nil {
		return err
	}

	Printer.Printf("=== %s Status ===\n", brand.Name)
	Printer.Printf("SSID:    %s\n", st.SSID)

	switch {
	case !st.BridgeExists:
		Printer.Printf("Bridge:  %s (absent)\n", st.BridgeName)
	case st.BridgeUp:
		Printer.Printf("Bridge:  %s (up, members: %s)\n", st.BridgeName, joinOrNone(st.Members))
	default:
		Printer.Printf("Bridge:  %s (down, members: %s)\n", st.BridgeName, joinOrNone(st.Members))
	}

	state := "inactive"
	if st.DaemonActive {
		state = "active"
	}
	Printer.Printf("hostapd: %s\n", state)

	carrier := "no carrier"
	if st.WifiCarrier {
		carrier = "carrier"
	}
	if st.WifiDriver != "" {
		Printer.Printf("Radio:   %s (%s, driver %s)\n", cfg.WifiInterface, carrier, st.WifiDriver)
	} else {
		Printer.Printf("Radio:   %s (%s)\n", cfg.WifiInterface, carrier)
	}
	return nil
}

func joinOrNone(members []string) string {
	if len(members) == 0 {
		return "none"
	}
	return strings.Join(members, " ")
}
