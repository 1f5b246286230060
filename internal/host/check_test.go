package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishvananda/netlink"

	"github.com/stagelink/apctl/internal/netif"
)

func TestRequireRoot(t *testing.T) {
	old := geteuid
	defer func() { geteuid = old }()

	geteuid = func() int { return 0 }
	assert.NoError(t, RequireRoot())

	geteuid = func() int { return 1000 }
	assert.ErrorContains(t, RequireRoot(), "must be run as root")
}

func TestRequireInterface(t *testing.T) {
	nl := new(netif.MockNetlinker)
	link := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "eth0"}}
	nl.On("LinkByName", "eth0").Return(link, nil).Once()
	nl.On("LinkByName", "nope0").Return(nil, errors.New("Link not found")).Once()

	assert.NoError(t, RequireInterface(nl, "eth0"))
	assert.ErrorContains(t, RequireInterface(nl, "nope0"), "interface nope0 not found")
}

func TestRequireWireless(t *testing.T) {
	oldWireless := isWireless
	defer func() { isWireless = oldWireless }()

	nl := new(netif.MockNetlinker)
	link := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "wlan0"}}
	nl.On("LinkByName", "wlan0").Return(link, nil)

	isWireless = func(string) bool { return true }
	assert.NoError(t, RequireWireless(nl, "wlan0"))

	isWireless = func(string) bool { return false }
	assert.ErrorContains(t, RequireWireless(nl, "wlan0"), "not a wireless device")
}
