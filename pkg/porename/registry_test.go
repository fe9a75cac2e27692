package porename

import "testing"

func TestNameRegistryCountsPerBase(t *testing.T) {
	r := NewNameRegistry()

	for want := 0; want < 3; want++ {
		got := r.NextIndex("20240301_4501234567")
		if got != want {
			t.Fatalf("NextIndex = %d, want %d", got, want)
		}
		r.commit("20240301_4501234567", got)
	}
	if got := r.NextIndex("20240301_ERREUR_COMMANDE"); got != 0 {
		t.Errorf("other base started at %d, want 0", got)
	}
}

func TestNameRegistryOnlyAdvancesOnCommit(t *testing.T) {
	var r NameRegistry
	if got := r.NextIndex("x"); got != 0 {
		t.Errorf("NextIndex on zero value = %d, want 0", got)
	}
	// A rename that failed never commits: the index is handed out again.
	if got := r.NextIndex("x"); got != 0 {
		t.Errorf("NextIndex without commit = %d, want 0", got)
	}
	r.commit("x", 2)
	if got := r.NextIndex("x"); got != 3 {
		t.Errorf("NextIndex after skipping to 2 = %d, want 3", got)
	}
	r.commit("x", 0)
	if got := r.NextIndex("x"); got != 3 {
		t.Errorf("NextIndex went back to %d", got)
	}
}

func TestNameRegistryFollowsMovedInputs(t *testing.T) {
	r := NewNameRegistry()
	r.track("/w/a.pdf", "/w/b.pdf")

	if !r.pending("/w/b.pdf") {
		t.Fatal("b.pdf should be pending")
	}
	r.moved("/w/b.pdf", "/w/b~1.pdf")
	if r.pending("/w/b.pdf") || !r.pending("/w/b~1.pdf") {
		t.Error("pending set not updated by move")
	}
	if got := r.currentPath("/w/b.pdf"); got != "/w/b~1.pdf" {
		t.Errorf("currentPath = %q", got)
	}

	r.done("/w/b~1.pdf")
	if r.pending("/w/b~1.pdf") {
		t.Error("finished input still pending")
	}
	if got := r.currentPath("/w/c.pdf"); got != "/w/c.pdf" {
		t.Errorf("untracked currentPath = %q", got)
	}
}
