package ap

import (
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"

	"github.com/stagelink/apctl/internal/config"
	"github.com/stagelink/apctl/internal/execx"
	"github.com/stagelink/apctl/internal/logging"
	"github.com/stagelink/apctl/internal/netif"
)

type writeRecorder struct {
	configWrites  []string
	defaultWrites []string
	installs      int
}

func newTestController(cfg *config.Config, nl netif.Netlinker, ex execx.CommandExecutor) (*Controller, *writeRecorder) {
	log := logging.New(logging.Config{Level: logging.LevelError, Output: io.Discard})
	c := New(cfg, nl, ex, log)
	rec := &writeRecorder{}

	c.requireRoot = func() error { return nil }
	c.requireWireless = func(netif.Netlinker, string) error { return nil }
	c.requireIface = func(netif.Netlinker, string) error { return nil }
	c.carrier = func(string) (bool, error) { return true, nil }
	c.driverName = func(string) (string, error) { return "brcmfmac", nil }
	c.writeConfig = func(path string, data []byte) error {
		rec.configWrites = append(rec.configWrites, path)
		return nil
	}
	c.ensureDefault = func(path, conf string) error {
		rec.defaultWrites = append(rec.defaultWrites, path)
		return nil
	}
	c.ensurePackages = func(execx.CommandExecutor, *logging.Logger, ...string) error {
		rec.installs++
		return nil
	}
	return c, rec
}

func upBridge() *netlink.Bridge {
	return &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "br0", Index: 10, Flags: net.FlagUp}}
}

func member(name string, index int) *netlink.Device {
	return &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: name, Index: index, MasterIndex: 10}}
}

// expectRadioRelease registers the best-effort teardown commands Start
// issues before provisioning the bridge.
func expectRadioRelease(ex *execx.MockCommandExecutor) {
	ex.On("RunCommand", "systemctl", "stop", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "nmcli", "device", "disconnect", "wlan0").Return("", nil).Once()
	ex.On("RunCommand", "nmcli", "device", "set", "wlan0", "managed", "no").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "stop", "wpa_supplicant").Return("", nil).Once()
}

func expectBridgeEnsure(nl *netif.MockNetlinker) {
	br := upBridge()
	eth := member("eth0", 2)
	wlan := member("wlan0", 3)
	nl.On("LinkByName", "br0").Return(br, nil).Once()
	nl.On("LinkByName", "eth0").Return(eth, nil).Once()
	nl.On("LinkSetUp", eth).Return(nil).Once()
	nl.On("LinkByName", "wlan0").Return(wlan, nil).Once()
	nl.On("LinkSetUp", wlan).Return(nil).Once()
	nl.On("LinkSetUp", br).Return(nil).Once()
}

func TestStartHappyPath(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, rec := newTestController(config.Default(), nl, ex)

	expectRadioRelease(ex)
	expectBridgeEnsure(nl)
	ex.On("RunCommand", "systemctl", "unmask", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "start", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "is-active", "hostapd").Return("active\n", nil).Once()

	rep, err := c.Start()
	require.NoError(t, err)
	assert.Empty(t, rep.IgnoredFailures())
	assert.Equal(t, 1, rec.installs)
	assert.Equal(t, []string{"/etc/hostapd/hostapd.conf"}, rec.configWrites)
	assert.Equal(t, []string{"/etc/default/hostapd"}, rec.defaultWrites)
	ex.AssertExpectations(t)
	nl.AssertExpectations(t)
}

func TestStartDaemonInactive(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, _ := newTestController(config.Default(), nl, ex)

	expectRadioRelease(ex)
	expectBridgeEnsure(nl)
	ex.On("RunCommand", "systemctl", "unmask", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "start", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "is-active", "hostapd").Return("failed\n", errors.New("exit status 3")).Once()

	_, err := c.Start()
	assert.ErrorIs(t, err, ErrDaemonInactive)
	// no rollback: the bridge is left standing
	nl.AssertNotCalled(t, "LinkDel", mock.Anything)
}

func TestStartPreconditionFailsBeforeMutation(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, rec := newTestController(config.Default(), nl, ex)
	c.requireWireless = func(netif.Netlinker, string) error {
		return errors.New("interface wlan0 not found")
	}

	_, err := c.Start()
	assert.ErrorContains(t, err, "wlan0 not found")
	assert.Zero(t, rec.installs)
	assert.Empty(t, rec.configWrites)
	ex.AssertNotCalled(t, "RunCommand", mock.Anything, mock.Anything, mock.Anything)
}

func TestStartSuppressesRadioReleaseFailures(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, _ := newTestController(config.Default(), nl, ex)

	ex.On("RunCommand", "systemctl", "stop", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "nmcli", "device", "disconnect", "wlan0").
		Return("", errors.New("exit status 10")).Once()
	ex.On("RunCommand", "nmcli", "device", "set", "wlan0", "managed", "no").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "stop", "wpa_supplicant").
		Return("", errors.New("exit status 5")).Once()
	expectBridgeEnsure(nl)
	ex.On("RunCommand", "systemctl", "unmask", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "start", "hostapd").Return("", nil).Once()
	ex.On("RunCommand", "systemctl", "is-active", "hostapd").Return("active\n", nil).Once()

	rep, err := c.Start()
	require.NoError(t, err)

	ignored := rep.IgnoredFailures()
	require.Len(t, ignored, 2)
	names := []string{ignored[0].Name, ignored[1].Name}
	assert.Contains(t, names, "disconnect radio")
	assert.Contains(t, names, "stop wpa_supplicant")
}

func TestStartBridgeFailureIsFatal(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, _ := newTestController(config.Default(), nl, ex)

	expectRadioRelease(ex)
	nl.On("LinkByName", "br0").Return(nil, errors.New("Link not found")).Once()
	nl.On("LinkAdd", mock.AnythingOfType("*netlink.Bridge")).
		Return(errors.New("operation not supported")).Once()

	_, err := c.Start()
	assert.ErrorContains(t, err, "failed to create bridge")
	ex.AssertNotCalled(t, "RunCommand", "systemctl", "start", "hostapd")
}

func TestStopIsBestEffort(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, rec := newTestController(config.Default(), nl, ex)

	ex.On("RunCommand", "systemctl", "stop", "hostapd").
		Return("", errors.New("unit not loaded")).Once()
	ex.On("RunCommand", "nmcli", "device", "set", "wlan0", "managed", "yes").Return("", nil).Once()
	// bridge already gone
	nl.On("LinkByName", "br0").Return(nil, errors.New("Link not found")).Once()

	rep, err := c.Stop()
	require.NoError(t, err)
	require.Len(t, rep.IgnoredFailures(), 1)
	assert.Equal(t, "stop hostapd", rep.IgnoredFailures()[0].Name)

	// stop never renders config or installs packages
	assert.Zero(t, rec.installs)
	assert.Empty(t, rec.configWrites)
}

func TestStatusIsReadOnly(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, rec := newTestController(config.Default(), nl, ex)

	br := upBridge()
	nl.On("LinkByName", "br0").Return(br, nil).Once()
	nl.On("LinkList").Return([]netlink.Link{br, member("eth0", 2), member("wlan0", 3)}, nil).Once()
	ex.On("RunCommand", "systemctl", "is-active", "hostapd").Return("active\n", nil).Once()

	st, err := c.Status()
	require.NoError(t, err)

	assert.Equal(t, "tally-net", st.SSID)
	assert.True(t, st.BridgeExists)
	assert.True(t, st.BridgeUp)
	assert.ElementsMatch(t, []string{"eth0", "wlan0"}, st.Members)
	assert.True(t, st.DaemonActive)
	assert.True(t, st.WifiCarrier)
	assert.Equal(t, "brcmfmac", st.WifiDriver)

	assert.Zero(t, rec.installs)
	assert.Empty(t, rec.configWrites)
	assert.Empty(t, rec.defaultWrites)
	nl.AssertNotCalled(t, "LinkAdd", mock.Anything)
	nl.AssertNotCalled(t, "LinkSetUp", mock.Anything)
}

func TestStatusDaemonInactive(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, _ := newTestController(config.Default(), nl, ex)

	nl.On("LinkByName", "br0").Return(nil, errors.New("Link not found")).Once()
	ex.On("RunCommand", "systemctl", "is-active", "hostapd").
		Return("inactive\n", errors.New("exit status 3")).Once()

	st, err := c.Status()
	require.NoError(t, err)
	assert.False(t, st.BridgeExists)
	assert.False(t, st.DaemonActive)
}

func TestStartDryRunSkipsHostChecks(t *testing.T) {
	log := logging.New(logging.Config{Level: logging.LevelError, Output: io.Discard})
	nl := new(netif.DryRunNetlinker)
	ex := &execx.DryRunCommandExecutor{Log: log}

	c := New(config.Default(), nl, ex, log)
	c.DryRun = true
	// neither check may run without the radio or root
	c.requireRoot = func() error { return errors.New("must be run as root") }
	c.requireWireless = func(netif.Netlinker, string) error {
		return errors.New("interface wlan0 is not a wireless device")
	}

	rep, err := c.Start()
	require.NoError(t, err)
	assert.Empty(t, rep.IgnoredFailures())
	assert.NotEmpty(t, nl.Ops)
}

func TestStartTwiceIdempotent(t *testing.T) {
	nl := new(netif.MockNetlinker)
	ex := new(execx.MockCommandExecutor)
	c, _ := newTestController(config.Default(), nl, ex)

	for i := 0; i < 2; i++ {
		expectRadioRelease(ex)
		expectBridgeEnsure(nl)
		ex.On("RunCommand", "systemctl", "unmask", "hostapd").Return("", nil).Once()
		ex.On("RunCommand", "systemctl", "start", "hostapd").Return("", nil).Once()
		ex.On("RunCommand", "systemctl", "is-active", "hostapd").Return("active\n", nil).Once()
	}

	for i := 0; i < 2; i++ {
		_, err := c.Start()
		require.NoError(t, err)
	}

	// the bridge is never re-created or re-enslaved
	nl.AssertNotCalled(t, "LinkAdd", mock.Anything)
	nl.AssertNotCalled(t, "LinkSetMaster", mock.Anything, mock.Anything)
}
