package adapter

import (
	"encoding/json"
	"fmt"

	"gns3-inventory/internal/domain"
)

// decodeProject extracts the contract fields of one /v2/projects entry
func decodeProject(m map[string]any) (domain.Project, error) {
	id, err := requiredString(m, "project_id")
	if err != nil {
		return domain.Project{}, err
	}
	name, err := requiredString(m, "name")
	if err != nil {
		return domain.Project{}, err
	}
	status, _, err := optionalString(m, "status")
	if err != nil {
		return domain.Project{}, err
	}

	return domain.Project{
		ProjectID: id,
		Name:      name,
		Status:    domain.ProjectStatus(status),
	}, nil
}

// decodeNode extracts the contract fields of one /v2/projects/{id}/nodes
// entry. A console port or host of the wrong type is treated as absent: the
// node is then skipped by ListConsoleNodes instead of failing the whole build.
func decodeNode(m map[string]any) (domain.Node, error) {
	name, err := requiredString(m, "name")
	if err != nil {
		return domain.Node{}, err
	}

	node := domain.Node{Name: name}
	fields := []struct {
		key string
		dst *string
	}{
		{"node_id", &node.NodeID},
		{"project_id", &node.ProjectID},
		{"node_type", &node.NodeType},
		{"console_type", &node.ConsoleType},
	}
	for _, f := range fields {
		v, _, err := optionalString(m, f.key)
		if err != nil {
			return domain.Node{}, err
		}
		*f.dst = v
	}

	status, _, err := optionalString(m, "status")
	if err != nil {
		return domain.Node{}, err
	}
	node.Status = domain.NodeStatus(status)

	if host, ok := m["console_host"].(string); ok {
		node.ConsoleHost = host
	}
	if port, ok := integerField(m, "console"); ok {
		node.Console = &port
	}

	return node, nil
}

func requiredString(m map[string]any, key string) (string, error) {
	v, present, err := optionalString(m, key)
	if err != nil {
		return "", err
	}
	if !present {
		return "", fmt.Errorf("missing field %q", key)
	}
	return v, nil
}

// optionalString returns the field value; null counts as absent
func optionalString(m map[string]any, key string) (string, bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, fmt.Errorf("field %q is %T, want string", key, raw)
	}
	return s, true, nil
}

// integerField reads a JSON integer decoded with UseNumber
func integerField(m map[string]any, key string) (int, bool) {
	num, ok := m[key].(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return int(n), true
}
