package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/stagelink/apctl/internal/brand"
)

// LoadFile loads the config file at path. An empty path means the default
// location. A missing file is not an error: the built-in defaults are used.
// Environment overrides are applied in both cases.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = brand.GetConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.ApplyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	cfg.ApplyEnv()
	return cfg, nil
}

// decode parses HCL or JSON depending on the file extension. Unknown
// extensions try HCL first and fall back to JSON.
func decode(path string, data []byte) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".hcl":
		return decodeHCL(path, data)
	case ".json":
		return decodeJSON(data)
	default:
		cfg, err := decodeHCL(path+".hcl", data)
		if err != nil {
			return decodeJSON(data)
		}
		return cfg, nil
	}
}

func decodeHCL(filename string, data []byte) (*Config, error) {
	var cfg Config
	if err := hclsimple.Decode(filename, data, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func decodeJSON(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode JSON config: %w", err)
	}
	return &cfg, nil
}
