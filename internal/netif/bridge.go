package netif

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"

	"github.com/stagelink/apctl/internal/logging"
)

// Provisioner creates and tears down the AP bridge.
type Provisioner struct {
	nl  Netlinker
	log *logging.Logger
}

// NewProvisioner returns a Provisioner using the given Netlinker.
func NewProvisioner(nl Netlinker, log *logging.Logger) *Provisioner {
	if log == nil {
		log = logging.WithComponent("netif")
	}
	return &Provisioner{nl: nl, log: log}
}

// EnsureBridge makes sure the named bridge exists, has the given members
// enslaved, and is up. Repeated invocation is a no-op beyond re-issuing
// LinkSetUp.
func (p *Provisioner) EnsureBridge(name string, members ...string) error {
	br, err := p.nl.LinkByName(name)
	if err != nil {
		p.log.Info("creating bridge", "bridge", name)
		bridge := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: name}}
		if err := p.nl.LinkAdd(bridge); err != nil {
			return fmt.Errorf("failed to create bridge %s: %w", name, err)
		}
		br, err = p.nl.LinkByName(name)
		if err != nil {
			return fmt.Errorf("failed to get newly created bridge %s: %w", name, err)
		}
	}

	for _, member := range members {
		link, err := p.nl.LinkByName(member)
		if err != nil {
			return fmt.Errorf("bridge member %s not found: %w", member, err)
		}
		if link.Attrs().MasterIndex != br.Attrs().Index {
			p.log.Info("enslaving interface", "bridge", name, "member", member)
			if err := p.nl.LinkSetMaster(link, br); err != nil {
				return fmt.Errorf("failed to enslave %s to %s: %w", member, name, err)
			}
		}
		if err := p.nl.LinkSetUp(link); err != nil {
			return fmt.Errorf("failed to bring up %s: %w", member, err)
		}
	}

	if err := p.nl.LinkSetUp(br); err != nil {
		return fmt.Errorf("failed to bring up bridge %s: %w", name, err)
	}
	return nil
}

// BridgeDown brings the bridge down and deletes it. A missing bridge is
// not an error.
func (p *Provisioner) BridgeDown(name string) error {
	br, err := p.nl.LinkByName(name)
	if err != nil {
		return nil
	}
	if err := p.nl.LinkSetDown(br); err != nil {
		p.log.Warn("failed to bring bridge down", "bridge", name, "error", err)
	}
	if err := p.nl.LinkDel(br); err != nil {
		return fmt.Errorf("failed to delete bridge %s: %w", name, err)
	}
	return nil
}

// BridgeInfo describes the current state of a bridge for status reporting.
type BridgeInfo struct {
	Exists  bool
	Up      bool
	Members []string
}

// InspectBridge returns the bridge state and its member interface names.
func (p *Provisioner) InspectBridge(name string) (BridgeInfo, error) {
	var info BridgeInfo

	br, err := p.nl.LinkByName(name)
	if err != nil {
		return info, nil
	}
	info.Exists = true
	info.Up = br.Attrs().Flags&net.FlagUp != 0

	links, err := p.nl.LinkList()
	if err != nil {
		return info, fmt.Errorf("failed to list links: %w", err)
	}
	for _, link := range links {
		if link.Attrs().MasterIndex == br.Attrs().Index && link.Attrs().Name != name {
			info.Members = append(info.Members, link.Attrs().Name)
		}
	}
	return info, nil
}
