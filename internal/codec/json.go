package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"gns3-inventory/internal/domain"
)

// JSONCodec renders the inventory script format consumed by
// `ansible-inventory -i <script>`: one key per group plus _meta.hostvars
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

type scriptGroup struct {
	Hosts    []string       `json:"hosts"`
	Children []string       `json:"children,omitempty"`
	Vars     map[string]any `json:"vars,omitempty"`
}

type scriptMeta struct {
	HostVars map[string]map[string]any `json:"hostvars"`
}

// Export writes the --list document
func (c *JSONCodec) Export(inv *domain.Inventory, w io.Writer) error {
	doc := make(map[string]any)

	hostVars := make(map[string]map[string]any, inv.Len())
	for _, host := range inv.Hosts() {
		vars, _ := inv.HostVars(host)
		hostVars[host] = vars
	}
	doc["_meta"] = scriptMeta{HostVars: hostVars}

	var topLevel []string
	nested := nestedGroups(inv)
	for _, g := range explicitGroups(inv) {
		doc[g.Name] = scriptGroup{
			Hosts:    nonNil(g.Hosts),
			Children: explicitChildren(g),
			Vars:     g.Vars,
		}
		if !nested[g.Name] {
			topLevel = append(topLevel, g.Name)
		}
	}

	doc[domain.GroupUngrouped] = scriptGroup{Hosts: nonNil(inv.Ungrouped())}
	topLevel = append(topLevel, domain.GroupUngrouped)
	doc[domain.GroupAll] = scriptGroup{Hosts: []string{}, Children: topLevel}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// ExportHost writes the --host document: the variables of one host, or an
// empty object when the host is unknown
func (c *JSONCodec) ExportHost(inv *domain.Inventory, host string, w io.Writer) error {
	vars, ok := inv.HostVars(host)
	if !ok {
		vars = map[string]any{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(vars); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// explicitGroups returns the groups to render. Groups named after Ansible's
// implicit ones are left out: all and ungrouped are derived from the hosts.
func explicitGroups(inv *domain.Inventory) []*domain.Group {
	groups := inv.Groups()
	out := groups[:0]
	for _, g := range groups {
		if !domain.IsReservedGroup(g.Name) {
			out = append(out, g)
		}
	}
	return out
}

func explicitChildren(g *domain.Group) []string {
	var out []string
	for _, child := range g.Children {
		if !domain.IsReservedGroup(child) {
			out = append(out, child)
		}
	}
	return out
}

// nestedGroups returns the names of groups that are a child of another group
func nestedGroups(inv *domain.Inventory) map[string]bool {
	nested := make(map[string]bool)
	for _, g := range explicitGroups(inv) {
		for _, child := range explicitChildren(g) {
			nested[child] = true
		}
	}
	return nested
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
