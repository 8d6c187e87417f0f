package domain

// NodeStatus represents the run state of a node on the controller
type NodeStatus string

const (
	NodeStatusStarted   NodeStatus = "started"
	NodeStatusStopped   NodeStatus = "stopped"
	NodeStatusSuspended NodeStatus = "suspended"
)

// Node represents one emulated device inside a GNS3 project
type Node struct {
	NodeID      string     `json:"node_id"`
	ProjectID   string     `json:"project_id,omitempty"`
	Name        string     `json:"name"`
	NodeType    string     `json:"node_type,omitempty"`
	Status      NodeStatus `json:"status,omitempty"`
	ConsoleType string     `json:"console_type,omitempty"`
	ConsoleHost string     `json:"console_host,omitempty"`

	// Console is the console (usually telnet) port; nil when the node has none
	Console *int `json:"console,omitempty"`
}

// HasConsole reports whether the node exposes a usable console address
func (n *Node) HasConsole() bool {
	return n.ConsoleHost != "" && n.Console != nil
}

// ConsolePort returns the console port, or 0 when there is none
func (n *Node) ConsolePort() int {
	if n.Console == nil {
		return 0
	}
	return *n.Console
}

// IsWildcardHost reports whether host is an unspecified bind address, which
// only makes sense from the controller's point of view
func IsWildcardHost(host string) bool {
	switch host {
	case "0.0.0.0", "::", "0:0:0:0:0:0:0:0":
		return true
	}
	return false
}
