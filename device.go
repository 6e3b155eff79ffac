package main

import (
	"fmt"
	"net/netip"

	"go.uber.org/zap"
)

// Role identifies a device's tier in the topology.
type Role string

const (
	RoleWAN          Role = "wan"
	RoleDistribution Role = "distribution"
	RoleAccess       Role = "access"
)

// RoutedVLAN binds a device address inside a VLAN's subnet. The VLAN is
// shared with the device that allocated it, not owned.
type RoutedVLAN struct {
	VLAN *VLAN
	Addr netip.Addr
}

// Device is one network element: an ordered SVI list and a routing table.
// SVI 0 is always the device's own VLAN, bound to the subnet's first host
// address; any further SVIs are uplinks into a parent device's VLAN.
type Device struct {
	Name  string
	Role  Role
	SVIs  []RoutedVLAN
	Table *RoutingTable
}

// newDevice allocates the device's own VLAN and binds its first host address.
func newDevice(name string, role Role, alloc *Allocator) (*Device, error) {
	vlan, err := alloc.Allocate()
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", name, err)
	}
	addr, err := hostAddr(vlan.Prefix, 1)
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", name, err)
	}

	d := &Device{
		Name:  name,
		Role:  role,
		SVIs:  []RoutedVLAN{{VLAN: vlan, Addr: addr}},
		Table: &RoutingTable{},
	}
	zap.S().Infof("switch %s created on vlan %d", name, vlan.ID)
	return d, nil
}

// OwnVLAN returns the device's default VLAN.
func (d *Device) OwnVLAN() *VLAN {
	return d.SVIs[0].VLAN
}

// OwnAddr returns the device's address on its default VLAN.
func (d *Device) OwnAddr() netip.Addr {
	return d.SVIs[0].Addr
}

// UplinkAddr returns the device's address inside its parent's VLAN. Only
// distribution and access devices carry an uplink SVI.
func (d *Device) UplinkAddr() netip.Addr {
	return d.SVIs[1].Addr
}

// attachUplink binds an additional address inside a parent device's VLAN.
func (d *Device) attachUplink(vlan *VLAN, addr netip.Addr) {
	d.SVIs = append(d.SVIs, RoutedVLAN{VLAN: vlan, Addr: addr})
}
