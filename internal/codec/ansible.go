package codec

import (
	"fmt"
	"io"

	"gns3-inventory/internal/domain"

	"gopkg.in/yaml.v3"
)

// AnsibleCodec renders a static YAML inventory, suitable for saving the
// result of a build as a regular inventory file
type AnsibleCodec struct{}

// NewAnsibleCodec creates a new Ansible codec
func NewAnsibleCodec() *AnsibleCodec {
	return &AnsibleCodec{}
}

// Format returns the codec format identifier
func (c *AnsibleCodec) Format() string {
	return "yaml"
}

// ansibleInventory represents the Ansible inventory structure
type ansibleInventory struct {
	All ansibleGroup `yaml:"all"`
}

type ansibleGroup struct {
	Children map[string]ansibleGroupDef `yaml:"children,omitempty"`
	Hosts    map[string]map[string]any  `yaml:"hosts,omitempty"`
	Vars     map[string]any             `yaml:"vars,omitempty"`
}

type ansibleGroupDef struct {
	Children map[string]ansibleGroupDef `yaml:"children,omitempty"`
	Hosts    map[string]map[string]any  `yaml:"hosts,omitempty"`
	Vars     map[string]any             `yaml:"vars,omitempty"`
}

// Export writes the inventory as YAML. Host variables are declared once under
// all.hosts; groups only reference their members.
func (c *AnsibleCodec) Export(inv *domain.Inventory, w io.Writer) error {
	out := ansibleInventory{
		All: ansibleGroup{
			Hosts:    make(map[string]map[string]any),
			Children: make(map[string]ansibleGroupDef),
		},
	}

	for _, host := range inv.Hosts() {
		vars, _ := inv.HostVars(host)
		out.All.Hosts[host] = vars
	}

	nested := nestedGroups(inv)
	for _, g := range explicitGroups(inv) {
		if nested[g.Name] {
			continue
		}
		out.All.Children[g.Name] = c.groupDef(inv, g, make(map[string]bool))
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&out); err != nil {
		return fmt.Errorf("failed to encode Ansible inventory: %w", err)
	}

	return nil
}

// groupDef converts a group and its children; seen guards against cycles
func (c *AnsibleCodec) groupDef(inv *domain.Inventory, g *domain.Group, seen map[string]bool) ansibleGroupDef {
	seen[g.Name] = true
	def := ansibleGroupDef{Vars: g.Vars}

	if len(g.Hosts) > 0 {
		def.Hosts = make(map[string]map[string]any, len(g.Hosts))
		for _, h := range g.Hosts {
			def.Hosts[h] = nil
		}
	}

	for _, name := range explicitChildren(g) {
		child, ok := inv.Group(name)
		if !ok || seen[name] {
			continue
		}
		if def.Children == nil {
			def.Children = make(map[string]ansibleGroupDef)
		}
		def.Children[name] = c.groupDef(inv, child, seen)
	}

	return def
}
