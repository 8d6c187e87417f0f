package adapter

import (
	"context"

	"gns3-inventory/internal/domain"
)

// Controller defines the read-only view of a GNS3 controller the inventory needs
type Controller interface {
	// ListProjects returns every project known to the controller
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// ListNodes returns every node of a project, in controller order
	ListNodes(ctx context.Context, projectID string) ([]domain.Node, error)
}

// ProjectQuery selects the project an inventory is built from. ID takes
// precedence over Name.
type ProjectQuery struct {
	ID   string
	Name string
}
