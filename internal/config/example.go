package config

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// ExampleHCL renders cfg as an HCL document suitable for seeding
// /etc/apctl/apctl.hcl. Only the commonly edited attributes are emitted;
// everything else keeps its built-in default.
func ExampleHCL(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeValue("ssid", cty.StringVal(cfg.SSID))
	body.SetAttributeValue("passphrase", cty.StringVal(cfg.Passphrase))
	body.SetAttributeValue("wifi_interface", cty.StringVal(cfg.WifiInterface))
	body.SetAttributeValue("lan_interface", cty.StringVal(cfg.LanInterface))
	body.SetAttributeValue("bridge_name", cty.StringVal(cfg.BridgeName))
	body.SetAttributeValue("channel", cty.NumberIntVal(int64(cfg.Channel)))
	body.SetAttributeValue("hw_mode", cty.StringVal(cfg.HWMode))
	if cfg.Wpa == 3 {
		body.SetAttributeValue("wpa", cty.NumberIntVal(3))
	}
	if cfg.CountryCode != "" {
		body.SetAttributeValue("country_code", cty.StringVal(cfg.CountryCode))
	}
	if cfg.HiddenSSID {
		body.SetAttributeValue("hidden_ssid", cty.True)
	}
	if cfg.IsolateClients {
		body.SetAttributeValue("isolate_clients", cty.True)
	}

	return f.Bytes()
}
