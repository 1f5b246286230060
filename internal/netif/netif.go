// Package netif manages the kernel bridge and its member links via netlink.
package netif

import (
	"os"
	"path/filepath"

	"github.com/vishvananda/netlink"
)

// Netlinker is an interface that abstracts netlink interactions.
type Netlinker interface {
	LinkByName(name string) (netlink.Link, error)
	LinkList() ([]netlink.Link, error)
	LinkAdd(link netlink.Link) error
	LinkDel(link netlink.Link) error
	LinkSetUp(link netlink.Link) error
	LinkSetDown(link netlink.Link) error
	LinkSetMaster(slave, master netlink.Link) error
}

// sysClassNet is overridable in tests.
var sysClassNet = "/sys/class/net"

// InterfaceExists reports whether a link with the given name exists.
func InterfaceExists(nl Netlinker, name string) bool {
	_, err := nl.LinkByName(name)
	return err == nil
}

// IsWireless reports whether the named interface has an 802.11 radio,
// judged by the sysfs wireless directory the kernel exposes for it.
func IsWireless(name string) bool {
	info, err := os.Stat(filepath.Join(sysClassNet, name, "wireless"))
	return err == nil && info.IsDir()
}
