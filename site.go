package main

import (
	"fmt"

	"go.uber.org/zap"
)

// Distribution is a middle-tier device owning its access switches.
type Distribution struct {
	*Device
	Site     *Site
	Accesses []*Access
}

// Access is a leaf-tier device attached to one distribution.
type Access struct {
	*Device
	Distribution *Distribution
}

// Site is the root of one generated topology: a WAN router and the
// distribution subtrees beneath it.
type Site struct {
	Name          string
	WAN           *Device
	Distributions []*Distribution
}

// Devices returns every device in build order: the WAN first, then each
// distribution followed by its accesses.
func (s *Site) Devices() []*Device {
	devs := []*Device{s.WAN}
	for _, dist := range s.Distributions {
		devs = append(devs, dist.Device)
		for _, acc := range dist.Accesses {
			devs = append(devs, acc.Device)
		}
	}
	return devs
}

// BuildSite wires the WAN, distribution and access tiers in a single pass
// and installs the static routes between them. The build either completes
// entirely or returns an error with no partial result.
func BuildSite(cfg Config, alloc *Allocator) (*Site, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zap.S().Infof("site %s created", cfg.SiteName)
	site := &Site{Name: cfg.SiteName}

	wan, err := newDevice(fmt.Sprintf("%s-wan-0", cfg.SiteName), RoleWAN, alloc)
	if err != nil {
		return nil, err
	}
	site.WAN = wan

	for n := 0; n < cfg.NumDistributions; n++ {
		dist, err := site.buildDistribution(n, cfg.NumAccess, alloc)
		if err != nil {
			return nil, err
		}

		// Everything the distribution does not know goes to the WAN router.
		dist.Table.Add(Route{Dest: defaultDest, NextHop: wan.OwnAddr()})

		// Build-time route redistribution: the WAN learns every access
		// subnet through this distribution's uplink address.
		uplink := dist.UplinkAddr()
		for _, r := range dist.Table.Routes() {
			if r.IsDefault() {
				continue
			}
			wan.Table.Add(Route{Dest: r.Dest, NextHop: uplink})
		}

		site.Distributions = append(site.Distributions, dist)
	}

	return site, nil
}

// buildDistribution creates distribution n, binds its uplink into the WAN
// VLAN and builds the access tier beneath it.
func (s *Site) buildDistribution(n, numAccess int, alloc *Allocator) (*Distribution, error) {
	name := fmt.Sprintf("%s-dist-%d", s.Name, n)
	dev, err := newDevice(name, RoleDistribution, alloc)
	if err != nil {
		return nil, err
	}
	dist := &Distribution{Device: dev, Site: s}

	// Uplink into the WAN VLAN; .1 belongs to the WAN device itself.
	wanVLAN := s.WAN.OwnVLAN()
	uplink, err := hostAddr(wanVLAN.Prefix, 2+n)
	if err != nil {
		return nil, fmt.Errorf("distribution %s uplink: %w", name, err)
	}
	dist.attachUplink(wanVLAN, uplink)

	for m := 0; m < numAccess; m++ {
		access, err := dist.buildAccess(m, alloc)
		if err != nil {
			return nil, err
		}

		// The access subnet is reached through its uplink address.
		dist.Table.Add(Route{Dest: access.OwnVLAN().Prefix, NextHop: access.UplinkAddr()})

		// The access sends everything else to its distribution.
		access.Table.Add(Route{Dest: defaultDest, NextHop: dist.OwnAddr()})

		dist.Accesses = append(dist.Accesses, access)
	}

	return dist, nil
}

// buildAccess creates access m under the distribution and binds its uplink
// into the distribution's own VLAN.
func (d *Distribution) buildAccess(m int, alloc *Allocator) (*Access, error) {
	name := fmt.Sprintf("%s-access-%d", d.Name, m)
	dev, err := newDevice(name, RoleAccess, alloc)
	if err != nil {
		return nil, err
	}

	uplink, err := hostAddr(d.OwnVLAN().Prefix, 2+m)
	if err != nil {
		return nil, fmt.Errorf("access %s uplink: %w", name, err)
	}
	dev.attachUplink(d.OwnVLAN(), uplink)

	return &Access{Device: dev, Distribution: d}, nil
}
