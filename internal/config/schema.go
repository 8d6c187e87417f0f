package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// PluginName is the identifier an inventory file must declare in `plugin`
const PluginName = "canardconfit.gns3.gns3"

// Host naming strategies
const (
	HostNamingName   = "name"
	HostNamingNodeID = "node_id"
)

// Config is the root configuration structure, one per inventory source file
type Config struct {
	Plugin          string       `yaml:"plugin" validate:"required,eq=canardconfit.gns3.gns3"`
	URL             string       `yaml:"url" validate:"required,url"`
	ValidateCerts   bool         `yaml:"validate_certs"`
	ProjectID       string       `yaml:"project_id"`
	ProjectName     string       `yaml:"project_name" validate:"required_without=ProjectID"`
	PortOffset      int          `yaml:"port_offset"`
	Group           string       `yaml:"group" validate:"required,ne=all,ne=ungrouped"`
	HostNaming      string       `yaml:"host_naming" validate:"oneof=name node_id"`
	GroupByNodeType bool         `yaml:"group_by_node_type"`
	KeyedGroups     []KeyedGroup `yaml:"keyed_groups,omitempty" validate:"dive"`
	Timeout         Duration     `yaml:"timeout"`
}

// KeyedGroup creates one group per distinct value of a host variable.
// Unlike Ansible's constructed plugin, Key names a variable, not an expression.
type KeyedGroup struct {
	Key       string  `yaml:"key" validate:"required"`
	Prefix    string  `yaml:"prefix,omitempty"`
	Separator *string `yaml:"separator,omitempty"`
}

// GroupSeparator returns the separator between prefix and value ("_" by default)
func (k KeyedGroup) GroupSeparator() string {
	if k.Separator == nil {
		return "_"
	}
	return *k.Separator
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler. A bare number is a count of
// seconds, as in Ansible's own timeout options.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar such as 30s", value.Line)
	}
	if secs, err := strconv.ParseFloat(value.Value, 64); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: use seconds or a value such as 30s", value.Line, value.Value)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
