package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Show commands rendered for every device. The file written into a device
// directory is named after the command itself.
const (
	CmdShowIPInterface = "show ip interface"
	CmdShowInterfaces  = "show interfaces"
	CmdShowIPRoute     = "show ip route"
)

// renderFunc turns one device's state into the output of one show command.
type renderFunc func(*Device, *Templates) (string, error)

// commandRegistry maps every supported show command to its renderer. The
// renderers are pure functions of the device state handed to them.
var commandRegistry = map[string]renderFunc{
	CmdShowIPInterface: showCommand(CmdShowIPInterface),
	CmdShowInterfaces:  showCommand(CmdShowInterfaces),
	CmdShowIPRoute:     showCommand(CmdShowIPRoute),
}

// commandOrder fixes the order artifacts are written in.
var commandOrder = []string{CmdShowIPInterface, CmdShowInterfaces, CmdShowIPRoute}

func showCommand(name string) renderFunc {
	return func(d *Device, t *Templates) (string, error) {
		return t.Render(name, viewOf(d))
	}
}

// InterfaceView is one SVI row handed to the templates.
type InterfaceView struct {
	VLANID  int
	Subnet  string
	Address string
}

// RouteView is one routing table row handed to the templates.
type RouteView struct {
	Destination string
	NextHop     string
}

// DeviceView is the template context for every show command.
type DeviceView struct {
	Name       string
	Interfaces []InterfaceView
	Routes     []RouteView
}

// viewOf projects the render-facing slice of a device: SVI triples and
// route pairs in table order.
func viewOf(d *Device) DeviceView {
	view := DeviceView{Name: d.Name}
	for _, svi := range d.SVIs {
		view.Interfaces = append(view.Interfaces, InterfaceView{
			VLANID:  svi.VLAN.ID,
			Subnet:  svi.VLAN.Prefix.String(),
			Address: svi.Addr.String(),
		})
	}
	for _, r := range d.Table.Routes() {
		view.Routes = append(view.Routes, RouteView{
			Destination: r.Dest.String(),
			NextHop:     r.NextHop.String(),
		})
	}
	return view
}

// DumpSite writes one directory per device with one file per show command.
func DumpSite(site *Site, templates *Templates, dir string) error {
	for _, dev := range site.Devices() {
		devDir := filepath.Join(dir, dev.Name)
		if err := os.MkdirAll(devDir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", devDir, err)
		}

		for _, name := range commandOrder {
			out, err := commandRegistry[name](dev, templates)
			if err != nil {
				return fmt.Errorf("failed to render %q for %s: %w", name, dev.Name, err)
			}
			path := filepath.Join(devDir, name)
			if err := os.WriteFile(path, []byte(out), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
	}
	return nil
}
