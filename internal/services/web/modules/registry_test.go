package modules

import "testing"

func TestDefaultModulesCoverEveryArea(t *testing.T) {
	t.Parallel()

	public := DefaultPublicModules()
	protected := DefaultProtectedModules()
	if len(public) != 1 {
		t.Fatalf("public module count = %d, want %d", len(public), 1)
	}
	if got := public[0].ID(); got != "public" {
		t.Fatalf("default public module id = %q, want %q", got, "public")
	}

	want := []string{"daily", "students", "schools", "courses", "teachers", "settings"}
	if len(protected) != len(want) {
		t.Fatalf("protected module count = %d, want %d", len(protected), len(want))
	}
	for i, id := range want {
		if got := protected[i].ID(); got != id {
			t.Fatalf("default protected module[%d] id = %q, want %q", i, got, id)
		}
	}
}

func TestModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	all := append(DefaultPublicModules(), DefaultProtectedModules()...)
	seen := map[string]struct{}{}
	deps := Dependencies{}
	for _, mod := range all {
		mount, err := mod.Mount(deps)
		if err != nil {
			t.Fatalf("module %q mount error = %v", mod.ID(), err)
		}
		if mount.Prefix == "" {
			t.Fatalf("module %q prefix is empty", mod.ID())
		}
		if _, ok := seen[mount.Prefix]; ok {
			t.Fatalf("duplicate mount prefix %q", mount.Prefix)
		}
		seen[mount.Prefix] = struct{}{}
	}
}
