package main

import (
	"io"

	"github.com/goccy/go-yaml"
)

// Manifest is the machine-readable description of one generated site,
// written to stdout after the device artifacts.
type Manifest struct {
	Site    string           `yaml:"site"`
	Devices []ManifestDevice `yaml:"devices"`
}

// ManifestDevice lists one device's SVI bindings and routing table.
type ManifestDevice struct {
	Name   string          `yaml:"name"`
	Role   Role            `yaml:"role"`
	SVIs   []ManifestSVI   `yaml:"svis"`
	Routes []ManifestRoute `yaml:"routes,omitempty"`
}

// ManifestSVI is one (vlan, subnet, address) binding.
type ManifestSVI struct {
	VLAN    int    `yaml:"vlan"`
	Subnet  string `yaml:"subnet"`
	Address string `yaml:"address"`
}

// ManifestRoute is one (destination, next hop) pair.
type ManifestRoute struct {
	Destination string `yaml:"destination"`
	NextHop     string `yaml:"next_hop"`
}

// BuildManifest flattens a site into its manifest form, devices in build
// order, SVIs and routes in insertion order.
func BuildManifest(site *Site) Manifest {
	m := Manifest{Site: site.Name}
	for _, dev := range site.Devices() {
		md := ManifestDevice{Name: dev.Name, Role: dev.Role}
		for _, svi := range dev.SVIs {
			md.SVIs = append(md.SVIs, ManifestSVI{
				VLAN:    svi.VLAN.ID,
				Subnet:  svi.VLAN.Prefix.String(),
				Address: svi.Addr.String(),
			})
		}
		for _, r := range dev.Table.Routes() {
			md.Routes = append(md.Routes, ManifestRoute{
				Destination: r.Dest.String(),
				NextHop:     r.NextHop.String(),
			})
		}
		m.Devices = append(m.Devices, md)
	}
	return m
}

// writeYAML marshals the manifest to the writer.
func writeYAML(w io.Writer, m Manifest) error {
	data, err := yaml.MarshalWithOptions(m, yaml.IndentSequence(true))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
