package main

import (
	"errors"
	"fmt"
	"net/netip"

	"go.uber.org/zap"
)

// MaxVLANID is the highest id the 10.x.y.0/24 derivation can encode before
// the second octet leaves the 0-255 range.
const MaxVLANID = 255 * 255

// ErrVLANsExhausted is returned when an allocator runs out of ids.
var ErrVLANsExhausted = errors.New("vlan ids exhausted")

// VLAN is a broadcast domain bound to exactly one /24 of 10.0.0.0/8.
type VLAN struct {
	ID     int
	Prefix netip.Prefix
}

// Allocator hands out VLAN ids sequentially, starting at 1. Each build owns
// its own allocator so repeated builds in one process never share counters.
type Allocator struct {
	next int
}

// NewAllocator returns an allocator whose first VLAN will be id 1.
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Allocate returns the next VLAN with its derived subnet. It fails with
// ErrVLANsExhausted instead of wrapping past MaxVLANID.
func (a *Allocator) Allocate() (*VLAN, error) {
	if a.next > MaxVLANID {
		return nil, fmt.Errorf("%w: id %d exceeds %d", ErrVLANsExhausted, a.next, MaxVLANID)
	}
	v := &VLAN{ID: a.next, Prefix: subnetForID(a.next)}
	a.next++

	zap.S().Debugf("vlan %d created, assigned network %s", v.ID, v.Prefix)
	return v, nil
}

// subnetForID derives the subnet for a VLAN id: 10.(id/256).(id%256).0/24.
func subnetForID(id int) netip.Prefix {
	addr := netip.AddrFrom4([4]byte{10, byte(id / 256), byte(id % 256), 0})
	return netip.PrefixFrom(addr, 24)
}

// hostAddr returns the nth host address of a /24, counting from the network
// address, so n=1 is the first usable address.
func hostAddr(p netip.Prefix, n int) (netip.Addr, error) {
	if n < 1 || n > 254 {
		return netip.Addr{}, fmt.Errorf("host index %d out of range for %s", n, p)
	}
	b := p.Masked().Addr().As4()
	b[3] = byte(n)
	return netip.AddrFrom4(b), nil
}
