package domain

import "testing"

func twoOutputRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.Register(1)
	reg.Apply(1, OutputEvent{Kind: EventGeometry, Make: "Acme", Model: "X1"})
	reg.Register(2)
	reg.Apply(2, OutputEvent{Kind: EventGeometry, Make: "Acme", Model: "X2"})
	return reg
}

func TestRegister_FirstBecomesDefault(t *testing.T) {
	reg := twoOutputRegistry(t)
	if got := reg.Selected(); got == nil || got.Global != 1 {
		t.Fatalf("default = %+v, want global 1", got)
	}
}

func TestRegister_SameGlobalTwice(t *testing.T) {
	reg := NewRegistry()
	a := reg.Register(9)
	b := reg.Register(9)
	if a != b {
		t.Error("re-registering the same global created a new descriptor")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestSelect_MakeModelConcatenation(t *testing.T) {
	reg := twoOutputRegistry(t)
	reg.Select("Acme X2")
	if got := reg.Selected(); got.Global != 2 {
		t.Errorf("selected global %d, want 2 for label \"Acme X2\"", got.Global)
	}
}

func TestSelect_MakeAlonePicksFirstRegistered(t *testing.T) {
	reg := twoOutputRegistry(t)
	reg.Select("Acme")
	if got := reg.Selected(); got.Global != 1 {
		t.Errorf("selected global %d, want 1 for label \"Acme\"", got.Global)
	}
}

func TestSelect_UnmatchedLabelKeepsDefault(t *testing.T) {
	reg := twoOutputRegistry(t)
	reg.Select("NoSuchVendor")
	if got := reg.Selected(); got.Global != 1 {
		t.Errorf("selected global %d, want default 1 after unmatched override", got.Global)
	}
}

func TestSelect_EmptyLabelKeepsDefault(t *testing.T) {
	reg := twoOutputRegistry(t)
	reg.Select("")
	if got := reg.Selected(); got.Global != 1 {
		t.Errorf("selected global %d, want default 1", got.Global)
	}
}

func TestFinalize_EmptyRegistryFails(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Finalize(); err == nil {
		t.Fatal("Finalize() on empty registry succeeded, want error")
	} else if kind, ok := KindOf(err); !ok || kind != Protocol {
		t.Errorf("error kind = %v, want Protocol", kind)
	}
}

func TestFinalize_ReturnsSelected(t *testing.T) {
	reg := twoOutputRegistry(t)
	reg.Select("Acme X2")
	out, err := reg.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if out.Model != "X2" {
		t.Errorf("finalized model %q, want X2", out.Model)
	}
}

func TestOutputs_RegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, global := range []uint32{5, 3, 8} {
		reg.Register(global)
	}
	outs := reg.Outputs()
	want := []uint32{5, 3, 8}
	for i, out := range outs {
		if out.Global != want[i] {
			t.Errorf("outputs[%d].Global = %d, want %d", i, out.Global, want[i])
		}
	}
}
