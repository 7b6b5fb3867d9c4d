package gl

import "testing"

func TestDefaultRegistryTable(t *testing.T) {
	r := DefaultRegistry()

	for _, cmd := range builtinCommands() {
		got, ok := r.Lookup(cmd.Name)
		if !ok {
			t.Errorf("builtin command %q missing from registry", cmd.Name)
			continue
		}
		if len(got.Candidates) == 0 {
			t.Errorf("command %q has no candidates", cmd.Name)
		}

		// The promoted core name, when present, must lead the candidate
		// list; version-gated candidates past index 0 would shadow the
		// declared equivalence order.
		seen := make(map[string]bool)
		for i, c := range got.Candidates {
			if c.Requires.minVersion != nil && i != 0 {
				t.Errorf("command %q has version-gated candidate %q at index %d", cmd.Name, c.Symbol, i)
			}
			if seen[c.Symbol] {
				t.Errorf("command %q lists symbol %q twice", cmd.Name, c.Symbol)
			}
			seen[c.Symbol] = true
		}
	}
}

func TestDefaultRegistryInstancesAreIndependent(t *testing.T) {
	first := DefaultRegistry()
	second := DefaultRegistry()

	if err := first.Register(Command{
		Name:       "CustomCommand",
		Candidates: []Candidate{always("glCustomCommand")},
	}); err != nil {
		t.Fatal(err)
	}

	if _, ok := second.Lookup("CustomCommand"); ok {
		t.Error("registering on one DefaultRegistry instance leaked into another")
	}
}

func TestDefaultRegistryPromotionData(t *testing.T) {
	r := DefaultRegistry()

	// Spot-check a promoted command against the Khronos declaration.
	cmd, ok := r.Lookup("ActiveTexture")
	if !ok {
		t.Fatal("ActiveTexture missing")
	}
	if cmd.Candidates[0].Symbol != "glActiveTexture" {
		t.Errorf("first candidate = %q, want glActiveTexture", cmd.Candidates[0].Symbol)
	}
	if cmd.Candidates[1].Symbol != "glActiveTextureARB" {
		t.Errorf("second candidate = %q, want glActiveTextureARB", cmd.Candidates[1].Symbol)
	}

	// Baseline commands carry a single unconditional candidate.
	cmd, ok = r.Lookup("GetError")
	if !ok {
		t.Fatal("GetError missing")
	}
	if len(cmd.Candidates) != 1 || cmd.Candidates[0].Requires != Always() {
		t.Errorf("GetError candidates = %v, want single always candidate", cmd.Candidates)
	}
}
