// Package hostapd renders the hostapd configuration for a bridged AP and
// keeps the Debian default file pointing at it.
package hostapd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stagelink/apctl/internal/config"
)

// Render produces the complete hostapd.conf content for cfg. The output is
// deterministic; writing it replaces any previous configuration wholesale.
func Render(cfg *config.Config) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "interface=%s\n", cfg.WifiInterface)
	fmt.Fprintf(&b, "bridge=%s\n", cfg.BridgeName)
	fmt.Fprintf(&b, "driver=%s\n", cfg.Driver)
	fmt.Fprintf(&b, "ssid=%s\n", cfg.SSID)
	fmt.Fprintf(&b, "hw_mode=%s\n", cfg.HWMode)
	fmt.Fprintf(&b, "channel=%d\n", cfg.Channel)
	b.WriteString("ieee80211n=1\n")
	b.WriteString("wmm_enabled=1\n")

	if cfg.CountryCode != "" {
		fmt.Fprintf(&b, "country_code=%s\n", cfg.CountryCode)
		b.WriteString("ieee80211d=1\n")
	}
	if cfg.HiddenSSID {
		b.WriteString("ignore_broadcast_ssid=1\n")
	}
	if cfg.IsolateClients {
		b.WriteString("ap_isolate=1\n")
	}

	b.WriteString("auth_algs=1\n")
	// WPA3-SAE is RSN, so wpa=2 covers both modes; the key_mgmt list is
	// what selects pure WPA2 or WPA2/WPA3 transition.
	b.WriteString("wpa=2\n")
	if len(cfg.Passphrase) == 64 {
		fmt.Fprintf(&b, "wpa_psk=%s\n", cfg.Passphrase)
	} else {
		fmt.Fprintf(&b, "wpa_passphrase=%s\n", cfg.Passphrase)
	}
	if cfg.Wpa == 3 {
		b.WriteString("wpa_key_mgmt=WPA-PSK SAE\n")
		b.WriteString("ieee80211w=1\n")
		b.WriteString("sae_require_mfp=1\n")
	} else {
		b.WriteString("wpa_key_mgmt=WPA-PSK\n")
	}
	b.WriteString("wpa_pairwise=CCMP\n")
	b.WriteString("rsn_pairwise=CCMP\n")

	return []byte(b.String())
}

// WriteConfig atomically overwrites path with data. The config carries the
// passphrase, so it is written 0600. The containing directory is created if
// needed.
func WriteConfig(path string, data []byte) error {
	return writeFileAtomic(path, data, 0600)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// EnsureDefaultFile inserts or replaces the DAEMON_CONF line in the hostapd
// default file (usually /etc/default/hostapd) so the packaged unit picks up
// the rendered config. Unrelated lines are preserved; a commented-out
// DAEMON_CONF line is replaced in place.
func EnsureDefaultFile(path, confPath string) error {
	want := fmt.Sprintf("DAEMON_CONF=%q", confPath)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := []string{}
	if len(data) > 0 {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	replaced := false
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, "# \t")
		if strings.HasPrefix(trimmed, "DAEMON_CONF=") {
			lines[i] = want
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, want)
	}

	out := strings.Join(lines, "\n") + "\n"
	return writeFileAtomic(path, []byte(out), 0644)
}
