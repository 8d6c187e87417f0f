package service

import (
	"fmt"
	"regexp"

	"gns3-inventory/internal/config"
	"gns3-inventory/internal/domain"
)

// Host variables set on every host besides ansible_host/ansible_port
const (
	VarProjectID   = "gns3_project_id"
	VarNodeID      = "gns3_node_id"
	VarNodeName    = "gns3_node_name"
	VarNodeType    = "gns3_node_type"
	VarStatus      = "gns3_status"
	VarConsoleType = "gns3_console_type"
	VarConsoleHost = "gns3_console_host"
	VarConsolePort = "gns3_console_port"

	nodeTypeGroupPrefix = "gns3_type_"
)

var unsafeGroupChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Options controls how nodes become inventory hosts
type Options struct {
	// Group is the parent group every host joins
	Group string
	// HostNaming selects the inventory hostname: "name" or "node_id"
	HostNaming string
	// PortOffset is added to the console port to get ansible_port
	PortOffset int
	// GroupByNodeType adds gns3_type_<node_type> groups
	GroupByNodeType bool
	// KeyedGroups adds one group per distinct host variable value
	KeyedGroups []config.KeyedGroup
	// ControllerHost replaces wildcard console hosts such as 0.0.0.0
	ControllerHost string
}

// OptionsFromConfig derives build options from a loaded config
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Group:           cfg.Group,
		HostNaming:      cfg.HostNaming,
		PortOffset:      cfg.PortOffset,
		GroupByNodeType: cfg.GroupByNodeType,
		KeyedGroups:     cfg.KeyedGroups,
		ControllerHost:  cfg.ControllerHost(),
	}
}

// BuildInventory maps nodes to inventory hosts. It performs no I/O and never
// fails: nodes without a console address or without any usable name are left
// out.
func BuildInventory(projectID string, nodes []domain.Node, opts Options) *domain.Inventory {
	inv := domain.NewInventory()
	if opts.Group != "" {
		inv.AddGroup(opts.Group)
	}

	for i := range nodes {
		node := &nodes[i]
		if !node.HasConsole() {
			inv.AddSkipped(1)
			continue
		}

		host := hostName(node, opts.HostNaming)
		if host == "" {
			inv.AddSkipped(1)
			continue
		}
		host = uniqueHostName(inv, host, node.NodeID)

		inv.AddHost(host, opts.Group)

		inv.SetVariable(host, VarProjectID, projectID)
		inv.SetVariable(host, VarNodeID, node.NodeID)
		inv.SetVariable(host, VarNodeName, node.Name)
		inv.SetVariable(host, VarNodeType, node.NodeType)
		inv.SetVariable(host, VarStatus, string(node.Status))
		inv.SetVariable(host, VarConsoleType, node.ConsoleType)
		inv.SetVariable(host, VarConsoleHost, node.ConsoleHost)
		inv.SetVariable(host, VarConsolePort, node.ConsolePort())

		inv.SetVariable(host, domain.VarAnsibleHost, connectHost(node.ConsoleHost, opts.ControllerHost))
		inv.SetVariable(host, domain.VarAnsiblePort, node.ConsolePort()+opts.PortOffset)

		if opts.GroupByNodeType && node.NodeType != "" {
			inv.AddHostToGroup(SafeGroupName(nodeTypeGroupPrefix+node.NodeType), host)
		}

		addKeyedGroups(inv, host, opts.KeyedGroups)
	}

	return inv
}

// hostName picks the inventory hostname, falling back to the other field
func hostName(node *domain.Node, naming string) string {
	primary, fallback := node.Name, node.NodeID
	if naming == config.HostNamingNodeID {
		primary, fallback = node.NodeID, node.Name
	}
	if primary != "" {
		return primary
	}
	return fallback
}

// uniqueHostName suffixes a taken name with the tail of the node id
func uniqueHostName(inv *domain.Inventory, host, nodeID string) string {
	if !inv.HasHost(host) {
		return host
	}

	suffix := "dup"
	if nodeID != "" {
		suffix = nodeID
		if len(suffix) > 6 {
			suffix = suffix[len(suffix)-6:]
		}
	}
	candidate := host + "_" + suffix
	for n := 2; inv.HasHost(candidate); n++ {
		candidate = fmt.Sprintf("%s_%s_%d", host, suffix, n)
	}
	return candidate
}

// connectHost returns the address Ansible should connect to
func connectHost(consoleHost, controllerHost string) string {
	if domain.IsWildcardHost(consoleHost) && controllerHost != "" {
		return controllerHost
	}
	return consoleHost
}

func addKeyedGroups(inv *domain.Inventory, host string, keyed []config.KeyedGroup) {
	if len(keyed) == 0 {
		return
	}
	vars, _ := inv.HostVars(host)
	for _, kg := range keyed {
		value, ok := vars[kg.Key]
		if !ok || value == nil {
			continue
		}
		s := fmt.Sprint(value)
		if s == "" {
			continue
		}
		name := s
		if kg.Prefix != "" {
			name = kg.Prefix + kg.GroupSeparator() + s
		}
		name = SafeGroupName(name)
		if domain.IsReservedGroup(name) {
			continue
		}
		inv.AddHostToGroup(name, host)
	}
}

// SafeGroupName replaces characters Ansible rejects in group names
func SafeGroupName(name string) string {
	return unsafeGroupChars.ReplaceAllString(name, "_")
}
