package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShowIPRouteRendering(t *testing.T) {
	site := buildTestSite(t, "lab", 1, 1)
	templates := DefaultTemplates()

	dist := site.Distributions[0].Device
	out, err := commandRegistry[CmdShowIPRoute](dist, templates)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"C    10.0.2.0/24 is directly connected, Vlan2",
		"C    10.0.1.0/24 is directly connected, Vlan1",
		"S    10.0.3.0/24 via 10.0.2.2",
		"S*   0.0.0.0/0 via 10.0.1.1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show ip route missing %q:\n%s", want, out)
		}
	}
}

func TestShowIPInterfaceRendering(t *testing.T) {
	site := buildTestSite(t, "lab", 1, 1)
	templates := DefaultTemplates()

	dist := site.Distributions[0].Device
	out, err := commandRegistry[CmdShowIPInterface](dist, templates)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Vlan2 is up, line protocol is up",
		"Internet address is 10.0.2.1/24",
		"Vlan1 is up, line protocol is up",
		"Internet address is 10.0.1.2/24",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show ip interface missing %q:\n%s", want, out)
		}
	}
}

func TestDumpSiteLayout(t *testing.T) {
	site := buildTestSite(t, "lab", 2, 1)
	dir := t.TempDir()

	if err := DumpSite(site, DefaultTemplates(), dir); err != nil {
		t.Fatalf("DumpSite: %v", err)
	}

	for _, dev := range site.Devices() {
		for _, cmd := range commandOrder {
			path := filepath.Join(dir, dev.Name, cmd)
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("missing artifact %s: %v", path, err)
			}
			if len(data) == 0 {
				t.Errorf("artifact %s is empty", path)
			}
		}
	}
}

func TestLoadTemplatesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	override := "ip_route: 'routes of {{ .Name }}'\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatalf("write templates: %v", err)
	}

	templates, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}

	site := buildTestSite(t, "lab", 1, 0)
	out, err := commandRegistry[CmdShowIPRoute](site.WAN, templates)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "routes of lab-wan-0" {
		t.Errorf("override output = %q, want %q", out, "routes of lab-wan-0")
	}

	// Untouched commands keep their built-in bodies.
	if templates.IPInterface != DefaultTemplates().IPInterface {
		t.Error("ip_interface template changed by an override that did not name it")
	}
}

func TestRenderUnknownCommand(t *testing.T) {
	site := buildTestSite(t, "lab", 0, 0)
	if _, err := DefaultTemplates().Render("show version", viewOf(site.WAN)); err == nil {
		t.Error("Render accepted an unregistered command")
	}
}
