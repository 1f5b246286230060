// Package brand provides centralized branding constants for apctl.
// The identity is loaded from brand.json at compile time via go:embed so
// other tools (packaging scripts, docs) can read the same file.
package brand

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all branding information
type Brand struct {
	Name               string `json:"name"`
	LowerName          string `json:"lowerName"`
	Vendor             string `json:"vendor"`
	Description        string `json:"description"`
	ConfigEnvPrefix    string `json:"configEnvPrefix"`
	DefaultConfigDir   string `json:"defaultConfigDir"`
	ConfigFileName     string `json:"configFileName"`
	BinaryName         string `json:"binaryName"`
	HostapdUnit        string `json:"hostapdUnit"`
	HostapdConfPath    string `json:"hostapdConfPath"`
	HostapdDefaultPath string `json:"hostapdDefaultPath"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	LowerName = b.LowerName
	Vendor = b.Vendor
	Description = b.Description
	ConfigEnvPrefix = b.ConfigEnvPrefix
	DefaultConfigDir = b.DefaultConfigDir
	ConfigFileName = b.ConfigFileName
	BinaryName = b.BinaryName
	HostapdUnit = b.HostapdUnit
	HostapdConfPath = b.HostapdConfPath
	HostapdDefaultPath = b.HostapdDefaultPath
}

// Exported variables for convenience
var (
	Name               string
	LowerName          string
	Vendor             string
	Description        string
	ConfigEnvPrefix    string
	DefaultConfigDir   string
	ConfigFileName     string
	BinaryName         string
	HostapdUnit        string
	HostapdConfPath    string
	HostapdDefaultPath string

	// Version is set at build time via -ldflags
	Version   = "dev"
	BuildTime = "unknown"
)

// Get returns the full Brand struct
func Get() Brand {
	return b
}

// GetConfigDir returns the config directory, checking env vars first.
// Priority: APCTL_CONFIG_DIR > APCTL_PREFIX/config > DefaultConfigDir
func GetConfigDir() string {
	if dir := os.Getenv(ConfigEnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	if prefix := os.Getenv(ConfigEnvPrefix + "_PREFIX"); prefix != "" {
		return filepath.Join(prefix, "config")
	}
	return DefaultConfigDir
}

// GetConfigPath returns the full path of the primary config file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), ConfigFileName)
}
