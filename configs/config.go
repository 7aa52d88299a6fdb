// Package configs provides library defaults loaded from embedded YAML files.
// All hardcoded values live in defaults.yaml.
package configs

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults holds all library default values (loaded from defaults.yaml at startup).
var Defaults LibDefaults

func init() {
	if err := yaml.Unmarshal(defaultsYAML, &Defaults); err != nil {
		panic("vsphere-cloud: invalid defaults.yaml: " + err.Error())
	}
}

// LibDefaults holds all configurable library defaults.
type LibDefaults struct {
	VCenter  VCenterDefaults  `yaml:"vcenter"`
	Cloud    CloudDefaults    `yaml:"cloud"`
	Profiles []ProfileDefault `yaml:"profiles"`
}

// VCenterDefaults holds vCenter connection defaults.
type VCenterDefaults struct {
	Port int `yaml:"port"`
}

// CloudDefaults holds defaults for the uniform resource model.
type CloudDefaults struct {
	Architecture   string `yaml:"architecture"`
	DefaultProfile string `yaml:"default_profile"`
}

// ProfileDefault describes one hardware profile tier.
type ProfileDefault struct {
	ID       string `yaml:"id"`
	CPU      int32  `yaml:"cpu"`
	MemoryMB int64  `yaml:"memory_mb"`
}
