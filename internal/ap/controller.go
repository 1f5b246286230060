// Package ap orchestrates the access point lifecycle: preconditions,
// package install, hostapd config rendering, bridge provisioning, and
// daemon control.
package ap

import (
	"errors"
	"fmt"

	"github.com/stagelink/apctl/internal/brand"
	"github.com/stagelink/apctl/internal/config"
	"github.com/stagelink/apctl/internal/execx"
	"github.com/stagelink/apctl/internal/host"
	"github.com/stagelink/apctl/internal/hostapd"
	"github.com/stagelink/apctl/internal/logging"
	"github.com/stagelink/apctl/internal/netif"
	"github.com/stagelink/apctl/internal/service"
	"github.com/stagelink/apctl/internal/sysdeps"
)

// ErrDaemonInactive is returned when hostapd was started but systemd does
// not report it active. The bridge is left standing in that case.
var ErrDaemonInactive = errors.New("hostapd started but is not reported active")

// Controller ties the AP components together.
type Controller struct {
	cfg  *config.Config
	nl   netif.Netlinker
	exec execx.CommandExecutor
	log  *logging.Logger

	bridge  *netif.Provisioner
	systemd *service.Systemd
	nm      *service.NetworkManager

	// DryRun skips file writes, the privilege check, and the sysfs radio
	// check; netlink and command effects are already neutralized by the
	// injected fakes.
	DryRun bool

	// overridable for tests
	requireRoot     func() error
	requireWireless func(netif.Netlinker, string) error
	requireIface    func(netif.Netlinker, string) error
	carrier         func(string) (bool, error)
	driverName      func(string) (string, error)
	writeConfig     func(string, []byte) error
	ensureDefault   func(string, string) error
	ensurePackages  func(execx.CommandExecutor, *logging.Logger, ...string) error
}

// New returns a Controller for cfg using the given netlink and command
// implementations.
func New(cfg *config.Config, nl netif.Netlinker, exec execx.CommandExecutor, log *logging.Logger) *Controller {
	if log == nil {
		log = logging.WithComponent("ap")
	}
	return &Controller{
		cfg:  cfg,
		nl:   nl,
		exec: exec,
		log:  log,

		bridge:  netif.NewProvisioner(nl, log),
		systemd: service.NewSystemd(exec, log),
		nm:      service.NewNetworkManager(exec, log),

		requireRoot:     host.RequireRoot,
		requireWireless: host.RequireWireless,
		requireIface:    host.RequireInterface,
		carrier:         netif.Carrier,
		driverName:      netif.DriverName,
		writeConfig:     hostapd.WriteConfig,
		ensureDefault:   hostapd.EnsureDefaultFile,
		ensurePackages:  sysdeps.Ensure,
	}
}

// ignore runs a best-effort step: the error is logged and recorded but
// never propagated.
func (c *Controller) ignore(rep *Report, name string, err error) {
	rep.add(name, err, err != nil)
	if err != nil {
		c.log.Warn("ignoring failure", "step", name, "error", err)
	}
}

func (c *Controller) preconditions() error {
	if c.DryRun {
		// sysfs stays real even when netlink is faked, so only link
		// existence is checked here, through the injected netlinker.
		if err := c.requireIface(c.nl, c.cfg.WifiInterface); err != nil {
			return err
		}
		return c.requireIface(c.nl, c.cfg.LanInterface)
	}
	if err := c.requireRoot(); err != nil {
		return err
	}
	if err := c.requireWireless(c.nl, c.cfg.WifiInterface); err != nil {
		return err
	}
	return c.requireIface(c.nl, c.cfg.LanInterface)
}

// Start brings the AP up. Precondition, package, config, bridge and daemon
// start failures are fatal; everything that tears down prior state is
// best-effort. A daemon that starts but does not report active yields
// ErrDaemonInactive without rolling back the bridge.
func (c *Controller) Start() (*Report, error) {
	rep := &Report{}

	if err := c.preconditions(); err != nil {
		return rep, err
	}

	if err := c.ensurePackages(c.exec, c.log, sysdeps.DefaultPackages...); err != nil {
		return rep, err
	}

	if c.DryRun {
		c.log.Info("DRY-RUN: would write hostapd config", "path", c.cfg.HostapdConf)
	} else {
		if err := c.writeConfig(c.cfg.HostapdConf, hostapd.Render(c.cfg)); err != nil {
			return rep, err
		}
		if err := c.ensureDefault(c.cfg.HostapdDefault, c.cfg.HostapdConf); err != nil {
			return rep, err
		}
	}

	// Clear whatever currently owns the radio.
	c.ignore(rep, "stop hostapd", c.systemd.Stop(brand.HostapdUnit))
	c.ignore(rep, "disconnect radio", c.nm.Disconnect(c.cfg.WifiInterface))
	c.ignore(rep, "unmanage radio", c.nm.SetManaged(c.cfg.WifiInterface, false))
	c.ignore(rep, "stop wpa_supplicant", c.systemd.Stop("wpa_supplicant"))

	if err := c.bridge.EnsureBridge(c.cfg.BridgeName, c.cfg.LanInterface, c.cfg.WifiInterface); err != nil {
		return rep, err
	}

	c.ignore(rep, "unmask hostapd", c.systemd.Unmask(brand.HostapdUnit))
	if err := c.systemd.Start(brand.HostapdUnit); err != nil {
		return rep, err
	}

	if c.DryRun {
		return rep, nil
	}

	active, err := c.systemd.IsActive(brand.HostapdUnit)
	if err != nil {
		return rep, fmt.Errorf("failed to verify hostapd state: %w", err)
	}
	if !active {
		return rep, ErrDaemonInactive
	}

	c.log.Info("access point up", "ssid", c.cfg.SSID, "bridge", c.cfg.BridgeName)
	return rep, nil
}

// Stop tears the AP down. Everything past the preconditions is
// best-effort: a daemon or bridge that is already gone is not an error.
func (c *Controller) Stop() (*Report, error) {
	rep := &Report{}

	if err := c.preconditions(); err != nil {
		return rep, err
	}

	c.ignore(rep, "stop hostapd", c.systemd.Stop(brand.HostapdUnit))
	c.ignore(rep, "manage radio", c.nm.SetManaged(c.cfg.WifiInterface, true))
	c.ignore(rep, "bridge down", c.bridge.BridgeDown(c.cfg.BridgeName))

	c.log.Info("access point down", "bridge", c.cfg.BridgeName)
	return rep, nil
}

// Status describes the AP state for read-only reporting.
type Status struct {
	SSID         string
	BridgeName   string
	BridgeExists bool
	BridgeUp     bool
	Members      []string
	DaemonActive bool
	WifiCarrier  bool
	WifiDriver   string
}

// Status reports the current state without mutating anything: no config
// rewrite, no package install.
func (c *Controller) Status() (*Status, error) {
	if err := c.preconditions(); err != nil {
		return nil, err
	}

	info, err := c.bridge.InspectBridge(c.cfg.BridgeName)
	if err != nil {
		return nil, err
	}

	active, err := c.systemd.IsActive(brand.HostapdUnit)
	if err != nil {
		return nil, err
	}

	st := &Status{
		SSID:         c.cfg.SSID,
		BridgeName:   c.cfg.BridgeName,
		BridgeExists: info.Exists,
		BridgeUp:     info.Up,
		Members:      info.Members,
		DaemonActive: active,
	}

	// Carrier and driver are cosmetic; failures are not worth failing
	// status over.
	if carrier, err := c.carrier(c.cfg.WifiInterface); err == nil {
		st.WifiCarrier = carrier
	}
	if driver, err := c.driverName(c.cfg.WifiInterface); err == nil {
		st.WifiDriver = driver
	}
	return st, nil
}
