package domain

import (
	"reflect"
	"testing"
)

func TestInventoryAddHost(t *testing.T) {
	t.Run("registers host and group membership", func(t *testing.T) {
		inv := NewInventory()
		inv.AddHost("R1", "gns3")
		inv.AddHost("R1", "gns3")

		if inv.Len() != 1 {
			t.Fatalf("expected 1 host, got %d", inv.Len())
		}
		g, ok := inv.Group("gns3")
		if !ok {
			t.Fatal("expected group gns3 to exist")
		}
		if !reflect.DeepEqual(g.Hosts, []string{"R1"}) {
			t.Errorf("expected hosts [R1], got %v", g.Hosts)
		}
	})

	t.Run("host without group is ungrouped", func(t *testing.T) {
		inv := NewInventory()
		inv.AddHost("R1", "")
		inv.AddHost("R2", "lab")

		if got := inv.Ungrouped(); !reflect.DeepEqual(got, []string{"R1"}) {
			t.Errorf("expected ungrouped [R1], got %v", got)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		inv := NewInventory()
		for _, h := range []string{"R3", "R1", "R2"} {
			inv.AddHost(h, "")
		}
		if got := inv.Hosts(); !reflect.DeepEqual(got, []string{"R3", "R1", "R2"}) {
			t.Errorf("unexpected order %v", got)
		}
	})
}

func TestInventorySetVariable(t *testing.T) {
	inv := NewInventory()
	inv.SetVariable("R1", VarAnsibleHost, "192.0.2.10")
	inv.SetVariable("R1", VarAnsiblePort, 5001)

	vars, ok := inv.HostVars("R1")
	if !ok {
		t.Fatal("expected R1 to be registered by SetVariable")
	}
	if vars[VarAnsibleHost] != "192.0.2.10" {
		t.Errorf("ansible_host = %v", vars[VarAnsibleHost])
	}
	if vars[VarAnsiblePort] != 5001 {
		t.Errorf("ansible_port = %v", vars[VarAnsiblePort])
	}
}

func TestInventoryGroups(t *testing.T) {
	inv := NewInventory()
	inv.AddHost("R1", "gns3")
	inv.AddChild("gns3", "gns3_type_qemu")
	inv.AddChild("gns3", "gns3_type_qemu")
	inv.AddHostToGroup("gns3_type_qemu", "R1")

	groups := inv.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "gns3" || groups[1].Name != "gns3_type_qemu" {
		t.Errorf("groups not sorted: %s, %s", groups[0].Name, groups[1].Name)
	}
	if !reflect.DeepEqual(groups[0].Children, []string{"gns3_type_qemu"}) {
		t.Errorf("unexpected children %v", groups[0].Children)
	}
}

func TestNodeHasConsole(t *testing.T) {
	port := 5000
	tests := []struct {
		name string
		node Node
		want bool
	}{
		{"host and port", Node{ConsoleHost: "192.0.2.10", Console: &port}, true},
		{"missing port", Node{ConsoleHost: "192.0.2.10"}, false},
		{"missing host", Node{Console: &port}, false},
		{"nothing", Node{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.HasConsole(); got != tt.want {
				t.Errorf("HasConsole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindProjectByName(t *testing.T) {
	projects := []Project{
		{ProjectID: "a", Name: "MyLab"},
		{ProjectID: "b", Name: "Other"},
		{ProjectID: "c", Name: "MyLab"},
	}

	matches := FindProjectByName(projects, "MyLab")
	if len(matches) != 2 || matches[0].ProjectID != "a" {
		t.Errorf("expected first match a among 2, got %v", matches)
	}
	if got := FindProjectByName(projects, "mylab"); len(got) != 0 {
		t.Errorf("match must be exact, got %v", got)
	}
	if _, ok := FindProjectByID(projects, "b"); !ok {
		t.Error("expected project b to be found")
	}
}

func TestIsWildcardHost(t *testing.T) {
	for _, h := range []string{"0.0.0.0", "::"} {
		if !IsWildcardHost(h) {
			t.Errorf("expected %q to be a wildcard", h)
		}
	}
	if IsWildcardHost("192.0.2.10") {
		t.Error("192.0.2.10 is not a wildcard")
	}
}

func TestInventoryUngroupedIgnoresImplicitGroups(t *testing.T) {
	inv := NewInventory()
	inv.AddHost("R1", GroupAll)
	inv.AddHost("R2", GroupUngrouped)
	inv.AddHost("R3", "gns3")

	if got := inv.Ungrouped(); !reflect.DeepEqual(got, []string{"R1", "R2"}) {
		t.Errorf("Ungrouped() = %v, want [R1 R2]", got)
	}
	if !IsReservedGroup("all") || !IsReservedGroup("ungrouped") || IsReservedGroup("gns3") {
		t.Error("IsReservedGroup must only match all and ungrouped")
	}
}

func TestInventorySkipped(t *testing.T) {
	inv := NewInventory()
	inv.AddSkipped(2)
	inv.AddSkipped(1)

	if inv.Skipped() != 3 {
		t.Errorf("Skipped() = %d, want 3", inv.Skipped())
	}
	if inv.Len() != 0 {
		t.Errorf("skipped nodes must not become hosts, Len() = %d", inv.Len())
	}
}
