package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gns3-inventory/internal/adapter"
	"gns3-inventory/internal/domain"
)

// BuildObserver is told about the outcome of each build
type BuildObserver interface {
	ObserveBuild(duration time.Duration, inv *domain.Inventory, err error)
}

// InventoryService provides the fetch-then-transform pipeline
type InventoryService struct {
	controller adapter.Controller
	query      adapter.ProjectQuery
	opts       Options
	logger     *slog.Logger
	observer   BuildObserver
}

// NewInventoryService creates a new inventory service
func NewInventoryService(controller adapter.Controller, query adapter.ProjectQuery, opts Options, logger *slog.Logger) *InventoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryService{
		controller: controller,
		query:      query,
		opts:       opts,
		logger:     logger,
	}
}

// SetObserver registers an observer notified after every Build
func (s *InventoryService) SetObserver(o BuildObserver) {
	s.observer = o
}

// Build fetches the project's nodes and returns the inventory. On error no
// inventory is returned.
func (s *InventoryService) Build(ctx context.Context) (inv *domain.Inventory, err error) {
	start := time.Now()
	defer func() {
		if s.observer != nil {
			s.observer.ObserveBuild(time.Since(start), inv, err)
		}
	}()

	projectID, err := adapter.ResolveProject(ctx, s.controller, s.query, s.logger)
	if err != nil {
		return nil, fmt.Errorf("resolve project: %w", err)
	}

	listing, err := adapter.ListConsoleNodes(ctx, s.controller, projectID, s.logger)
	if err != nil {
		return nil, fmt.Errorf("list nodes of project %s: %w", projectID, err)
	}

	inv = BuildInventory(projectID, listing.Nodes, s.opts)
	inv.AddSkipped(listing.Skipped)

	s.logger.Info("inventory built",
		"project_id", projectID,
		"nodes", len(listing.Nodes)+listing.Skipped,
		"hosts", inv.Len(),
		"skipped", inv.Skipped(),
		"duration", time.Since(start).Round(time.Millisecond))

	return inv, nil
}
