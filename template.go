package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/goccy/go-yaml"
)

// Templates holds one text/template body per show command.
type Templates struct {
	IPInterface string `yaml:"ip_interface"`
	Interfaces  string `yaml:"interfaces"`
	IPRoute     string `yaml:"ip_route"`
}

const defaultIPInterface = `{{ range .Interfaces -}}
Vlan{{ .VLANID }} is up, line protocol is up
  Internet address is {{ .Address }}/24
  Broadcast address is 255.255.255.255
{{ end -}}`

const defaultInterfaces = `{{ range .Interfaces -}}
Vlan{{ .VLANID }} is up, line protocol is up
  Hardware is EtherSVI
  Internet address is {{ .Address }}/24
{{ end -}}`

const defaultIPRoute = `Codes: C - connected, S - static, S* - candidate default

{{ range .Interfaces -}}
C    {{ .Subnet }} is directly connected, Vlan{{ .VLANID }}
{{ end -}}
{{ range .Routes -}}
S{{ if eq .Destination "0.0.0.0/0" }}*{{ else }} {{ end }}   {{ .Destination }} via {{ .NextHop }}
{{ end -}}`

// DefaultTemplates returns the built-in show command templates.
func DefaultTemplates() *Templates {
	return &Templates{
		IPInterface: defaultIPInterface,
		Interfaces:  defaultInterfaces,
		IPRoute:     defaultIPRoute,
	}
}

// LoadTemplates reads template overrides from a YAML file on top of the
// built-in bodies. An empty path keeps the defaults.
func LoadTemplates(path string) (*Templates, error) {
	t := DefaultTemplates()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override Templates
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, err
	}
	if override.IPInterface != "" {
		t.IPInterface = override.IPInterface
	}
	if override.Interfaces != "" {
		t.Interfaces = override.Interfaces
	}
	if override.IPRoute != "" {
		t.IPRoute = override.IPRoute
	}

	return t, nil
}

// Render executes the template registered for a show command.
func (t *Templates) Render(command string, view DeviceView) (string, error) {
	var body string
	switch command {
	case CmdShowIPInterface:
		body = t.IPInterface
	case CmdShowInterfaces:
		body = t.Interfaces
	case CmdShowIPRoute:
		body = t.IPRoute
	default:
		return "", fmt.Errorf("no template for command %q", command)
	}

	tmpl, err := template.New(command).Parse(body)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", err
	}

	return buf.String(), nil
}
