package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"gns3-inventory/internal/adapter"
	"gns3-inventory/internal/domain"
)

type fakeController struct {
	projects   []domain.Project
	nodes      map[string][]domain.Node
	projectErr error
	nodesErr   error
	nodeCalls  int
}

func (f *fakeController) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if f.projectErr != nil {
		return nil, f.projectErr
	}
	return f.projects, nil
}

func (f *fakeController) ListNodes(ctx context.Context, projectID string) ([]domain.Node, error) {
	f.nodeCalls++
	if f.nodesErr != nil {
		return nil, f.nodesErr
	}
	return f.nodes[projectID], nil
}

type recordingObserver struct {
	calls   int
	hosts   int
	skipped int
	err     error
}

func (r *recordingObserver) ObserveBuild(d time.Duration, inv *domain.Inventory, err error) {
	r.calls++
	r.err = err
	if inv != nil {
		r.hosts = inv.Len()
		r.skipped = inv.Skipped()
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLab() *fakeController {
	return &fakeController{
		projects: []domain.Project{{ProjectID: "abc123", Name: "MyLab"}},
		nodes: map[string][]domain.Node{
			"abc123": {
				{NodeID: "n1", Name: "R1", ConsoleHost: "192.0.2.10", Console: intPtr(5000)},
				{NodeID: "n2", Name: "PC1", ConsoleHost: "192.0.2.10"},
			},
		},
	}
}

func TestInventoryServiceBuild(t *testing.T) {
	opts := defaultOptions()
	opts.PortOffset = 1
	svc := NewInventoryService(newLab(), adapter.ProjectQuery{Name: "MyLab"}, opts, quietLogger())
	obs := &recordingObserver{}
	svc.SetObserver(obs)

	inv, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	vars, ok := inv.HostVars("R1")
	if !ok {
		t.Fatal("expected host R1")
	}
	if vars[domain.VarAnsibleHost] != "192.0.2.10" || vars[domain.VarAnsiblePort] != 5001 {
		t.Errorf("R1 = %v:%v, want 192.0.2.10:5001", vars[domain.VarAnsibleHost], vars[domain.VarAnsiblePort])
	}
	if inv.HasHost("PC1") {
		t.Error("PC1 has no console port and must be skipped")
	}
	if obs.calls != 1 || obs.hosts != 1 || obs.skipped != 1 || obs.err != nil {
		t.Errorf("observer = %+v", obs)
	}
}

func TestInventoryServiceBuildErrors(t *testing.T) {
	t.Run("project not found", func(t *testing.T) {
		lab := newLab()
		svc := NewInventoryService(lab, adapter.ProjectQuery{Name: "Nope"}, defaultOptions(), quietLogger())

		inv, err := svc.Build(context.Background())
		if !errors.Is(err, adapter.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
		if inv != nil {
			t.Error("expected no inventory on error")
		}
		if lab.nodeCalls != 0 {
			t.Error("nodes must not be fetched when the project is unknown")
		}
	})

	t.Run("projects endpoint fails", func(t *testing.T) {
		lab := newLab()
		lab.projectErr = adapter.ErrControllerUnreachable
		svc := NewInventoryService(lab, adapter.ProjectQuery{Name: "MyLab"}, defaultOptions(), quietLogger())
		obs := &recordingObserver{}
		svc.SetObserver(obs)

		inv, err := svc.Build(context.Background())
		if !errors.Is(err, adapter.ErrControllerUnreachable) {
			t.Fatalf("expected ErrControllerUnreachable, got %v", err)
		}
		if inv != nil {
			t.Error("expected no partial inventory")
		}
		if !errors.Is(obs.err, adapter.ErrControllerUnreachable) {
			t.Errorf("observer error = %v", obs.err)
		}
	})

	t.Run("nodes endpoint returns garbage", func(t *testing.T) {
		lab := newLab()
		lab.nodesErr = adapter.ErrInvalidResponse
		svc := NewInventoryService(lab, adapter.ProjectQuery{Name: "MyLab"}, defaultOptions(), quietLogger())

		if _, err := svc.Build(context.Background()); !errors.Is(err, adapter.ErrInvalidResponse) {
			t.Errorf("expected ErrInvalidResponse, got %v", err)
		}
	})
}
