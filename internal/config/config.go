// Package config provides the access point configuration: loading from HCL
// (with JSON fallback), built-in defaults, environment overrides, and
// validation.
package config

import (
	"os"
	"strconv"

	"github.com/stagelink/apctl/internal/brand"
)

// Config describes the bridged access point.
type Config struct {
	SSID           string `hcl:"ssid,optional" json:"ssid"`
	Passphrase     string `hcl:"passphrase,optional" json:"passphrase"`
	WifiInterface  string `hcl:"wifi_interface,optional" json:"wifi_interface"`
	LanInterface   string `hcl:"lan_interface,optional" json:"lan_interface"`
	BridgeName     string `hcl:"bridge_name,optional" json:"bridge_name"`
	Channel        int    `hcl:"channel,optional" json:"channel"`
	HWMode         string `hcl:"hw_mode,optional" json:"hw_mode"`
	Wpa            int    `hcl:"wpa,optional" json:"wpa,omitempty"`
	CountryCode    string `hcl:"country_code,optional" json:"country_code,omitempty"`
	HiddenSSID     bool   `hcl:"hidden_ssid,optional" json:"hidden_ssid,omitempty"`
	IsolateClients bool   `hcl:"isolate_clients,optional" json:"isolate_clients,omitempty"`
	Driver         string `hcl:"driver,optional" json:"driver,omitempty"`

	// Paths of the rendered hostapd files. Overridable for tests and
	// non-Debian layouts.
	HostapdConf    string `hcl:"hostapd_conf,optional" json:"hostapd_conf,omitempty"`
	HostapdDefault string `hcl:"hostapd_default,optional" json:"hostapd_default,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SSID:           "tally-net",
		Passphrase:     "tallylight",
		WifiInterface:  "wlan0",
		LanInterface:   "eth0",
		BridgeName:     "br0",
		Channel:        6,
		HWMode:         "g",
		Wpa:            2,
		Driver:         "nl80211",
		HostapdConf:    brand.HostapdConfPath,
		HostapdDefault: brand.HostapdDefaultPath,
	}
}

// ApplyEnv overrides fields from APCTL_* environment variables.
// Invalid numeric values are ignored.
func (c *Config) ApplyEnv() {
	p := brand.ConfigEnvPrefix
	if v := os.Getenv(p + "_SSID"); v != "" {
		c.SSID = v
	}
	if v := os.Getenv(p + "_PASSPHRASE"); v != "" {
		c.Passphrase = v
	}
	if v := os.Getenv(p + "_WIFI_IFACE"); v != "" {
		c.WifiInterface = v
	}
	if v := os.Getenv(p + "_LAN_IFACE"); v != "" {
		c.LanInterface = v
	}
	if v := os.Getenv(p + "_BRIDGE"); v != "" {
		c.BridgeName = v
	}
	if v := os.Getenv(p + "_CHANNEL"); v != "" {
		if ch, err := strconv.Atoi(v); err == nil {
			c.Channel = ch
		}
	}
}

// fillDefaults replaces zero-valued fields with the built-in defaults.
// Booleans are deliberately left alone: false is a valid setting.
func (c *Config) fillDefaults() {
	d := Default()
	if c.SSID == "" {
		c.SSID = d.SSID
	}
	if c.Passphrase == "" {
		c.Passphrase = d.Passphrase
	}
	if c.WifiInterface == "" {
		c.WifiInterface = d.WifiInterface
	}
	if c.LanInterface == "" {
		c.LanInterface = d.LanInterface
	}
	if c.BridgeName == "" {
		c.BridgeName = d.BridgeName
	}
	if c.Channel == 0 {
		c.Channel = d.Channel
	}
	if c.HWMode == "" {
		c.HWMode = d.HWMode
	}
	if c.Wpa == 0 {
		c.Wpa = d.Wpa
	}
	if c.Driver == "" {
		c.Driver = d.Driver
	}
	if c.HostapdConf == "" {
		c.HostapdConf = d.HostapdConf
	}
	if c.HostapdDefault == "" {
		c.HostapdDefault = d.HostapdDefault
	}
}
