package netif

import (
	"fmt"
	"sync"

	"github.com/vishvananda/netlink"
)

// DryRunNetlinker logs netlink operations instead of applying them.
type DryRunNetlinker struct {
	mu  sync.Mutex
	Ops []string
}

func (n *DryRunNetlinker) log(op string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Ops = append(n.Ops, fmt.Sprintf("ip %s", op))
}

func (n *DryRunNetlinker) LinkByName(name string) (netlink.Link, error) {
	return &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: name}}, nil
}

func (n *DryRunNetlinker) LinkList() ([]netlink.Link, error) { return nil, nil }

func (n *DryRunNetlinker) LinkAdd(link netlink.Link) error {
	n.log(fmt.Sprintf("link add %s type %s", link.Attrs().Name, link.Type()))
	return nil
}

func (n *DryRunNetlinker) LinkDel(link netlink.Link) error {
	n.log(fmt.Sprintf("link del %s", link.Attrs().Name))
	return nil
}

func (n *DryRunNetlinker) LinkSetUp(link netlink.Link) error {
	n.log(fmt.Sprintf("link set %s up", link.Attrs().Name))
	return nil
}

func (n *DryRunNetlinker) LinkSetDown(link netlink.Link) error {
	n.log(fmt.Sprintf("link set %s down", link.Attrs().Name))
	return nil
}

func (n *DryRunNetlinker) LinkSetMaster(slave, master netlink.Link) error {
	n.log(fmt.Sprintf("link set %s master %s", slave.Attrs().Name, master.Attrs().Name))
	return nil
}
