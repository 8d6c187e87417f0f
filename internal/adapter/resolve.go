package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"gns3-inventory/internal/domain"
)

// ResolveProject maps the configured project to its identifier.
//
// With an ID the project must exist on the controller. With a Name the first
// exact match in controller order wins; further matches are only logged.
func ResolveProject(ctx context.Context, c Controller, q ProjectQuery, logger *slog.Logger) (string, error) {
	if q.ID == "" && q.Name == "" {
		return "", fmt.Errorf("%w: neither project_id nor project_name is set", ErrProjectNotFound)
	}

	projects, err := c.ListProjects(ctx)
	if err != nil {
		return "", err
	}

	if q.ID != "" {
		if _, ok := domain.FindProjectByID(projects, q.ID); !ok {
			return "", fmt.Errorf("%w: project_id %s", ErrProjectNotFound, q.ID)
		}
		return q.ID, nil
	}

	matches := domain.FindProjectByName(projects, q.Name)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: project_name %q", ErrProjectNotFound, q.Name)
	}
	if len(matches) > 1 && logger != nil {
		logger.Warn("several projects share this name, using the first one; set project_id to choose",
			"project_name", q.Name, "matches", len(matches), "project_id", matches[0].ProjectID)
	}

	return matches[0].ProjectID, nil
}
