package domain

import "sort"

// Groups Ansible creates implicitly. Every host is in GroupAll; GroupUngrouped
// holds hosts that belong to no other group.
const (
	GroupAll       = "all"
	GroupUngrouped = "ungrouped"
)

// IsReservedGroup reports whether name is one of Ansible's implicit groups
func IsReservedGroup(name string) bool {
	return name == GroupAll || name == GroupUngrouped
}

// Well-known Ansible host variables
const (
	VarAnsibleHost = "ansible_host"
	VarAnsiblePort = "ansible_port"
)

// Group is a named set of hosts and child groups
type Group struct {
	Name     string         `json:"name"`
	Hosts    []string       `json:"hosts,omitempty"`
	Children []string       `json:"children,omitempty"`
	Vars     map[string]any `json:"vars,omitempty"`
}

func (g *Group) hasHost(host string) bool {
	for _, h := range g.Hosts {
		if h == host {
			return true
		}
	}
	return false
}

func (g *Group) hasChild(child string) bool {
	for _, c := range g.Children {
		if c == child {
			return true
		}
	}
	return false
}

// Inventory is the in-memory result of an inventory build
type Inventory struct {
	groups    map[string]*Group
	hostVars  map[string]map[string]any
	hostOrder []string
	skipped   int
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		groups:   make(map[string]*Group),
		hostVars: make(map[string]map[string]any),
	}
}

// AddGroup creates the group if it does not exist yet and returns it
func (inv *Inventory) AddGroup(name string) *Group {
	if g, ok := inv.groups[name]; ok {
		return g
	}
	g := &Group{Name: name}
	inv.groups[name] = g
	return g
}

// AddHost registers a host and, when group is non-empty, adds it to that group
func (inv *Inventory) AddHost(name, group string) {
	if _, ok := inv.hostVars[name]; !ok {
		inv.hostVars[name] = make(map[string]any)
		inv.hostOrder = append(inv.hostOrder, name)
	}
	if group != "" {
		inv.AddHostToGroup(group, name)
	}
}

// AddHostToGroup makes host a member of group, creating the group if needed
func (inv *Inventory) AddHostToGroup(group, host string) {
	g := inv.AddGroup(group)
	if !g.hasHost(host) {
		g.Hosts = append(g.Hosts, host)
	}
}

// AddChild nests child under parent, creating both groups if needed
func (inv *Inventory) AddChild(parent, child string) {
	inv.AddGroup(child)
	g := inv.AddGroup(parent)
	if !g.hasChild(child) {
		g.Children = append(g.Children, child)
	}
}

// SetVariable sets a host variable; unknown hosts are registered first
func (inv *Inventory) SetVariable(host, key string, value any) {
	inv.AddHost(host, "")
	inv.hostVars[host][key] = value
}

// HasHost reports whether the host is already in the inventory
func (inv *Inventory) HasHost(name string) bool {
	_, ok := inv.hostVars[name]
	return ok
}

// HostVars returns the variables of a host
func (inv *Inventory) HostVars(name string) (map[string]any, bool) {
	vars, ok := inv.hostVars[name]
	return vars, ok
}

// Hosts returns host names in insertion order
func (inv *Inventory) Hosts() []string {
	out := make([]string, len(inv.hostOrder))
	copy(out, inv.hostOrder)
	return out
}

// Groups returns all groups sorted by name
func (inv *Inventory) Groups() []*Group {
	out := make([]*Group, 0, len(inv.groups))
	for _, g := range inv.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Group looks a group up by name
func (inv *Inventory) Group(name string) (*Group, bool) {
	g, ok := inv.groups[name]
	return g, ok
}

// Ungrouped returns hosts that belong to no group other than the implicit
// ones, in insertion order
func (inv *Inventory) Ungrouped() []string {
	member := make(map[string]bool)
	for _, g := range inv.groups {
		if IsReservedGroup(g.Name) {
			continue
		}
		for _, h := range g.Hosts {
			member[h] = true
		}
	}
	var out []string
	for _, h := range inv.hostOrder {
		if !member[h] {
			out = append(out, h)
		}
	}
	return out
}

// Len returns the number of hosts
func (inv *Inventory) Len() int {
	return len(inv.hostOrder)
}

// AddSkipped counts nodes that were left out of the inventory
func (inv *Inventory) AddSkipped(n int) {
	inv.skipped += n
}

// Skipped returns the number of nodes left out of the inventory
func (inv *Inventory) Skipped() int {
	return inv.skipped
}
