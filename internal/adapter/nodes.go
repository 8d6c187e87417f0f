package adapter

import (
	"context"
	"log/slog"

	"gns3-inventory/internal/domain"
)

// NodeListing holds the nodes of a project that can become inventory hosts
type NodeListing struct {
	Nodes []domain.Node

	// Skipped counts nodes left out for lack of a console address
	Skipped int
}

// ListConsoleNodes lists the nodes of a project and drops those without a
// console host and port. Skipped nodes are logged, never reported as errors.
func ListConsoleNodes(ctx context.Context, c Controller, projectID string, logger *slog.Logger) (NodeListing, error) {
	nodes, err := c.ListNodes(ctx, projectID)
	if err != nil {
		return NodeListing{}, err
	}

	listing := NodeListing{Nodes: make([]domain.Node, 0, len(nodes))}
	for _, n := range nodes {
		if !n.HasConsole() {
			if logger != nil {
				logger.Debug("skipping node without console address", "node", n.Name, "node_id", n.NodeID)
			}
			listing.Skipped++
			continue
		}
		listing.Nodes = append(listing.Nodes, n)
	}

	return listing, nil
}
