package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
	if a.State() != b.State() {
		t.Error("states should match after identical draws")
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f, want [0, 1)", f)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d, want [0, 5)", n)
		}
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn with non-positive bound should return 0")
	}
}

func TestRNGZeroSeed(t *testing.T) {
	r := NewRNG(0)
	if r.State() == 0 {
		t.Error("zero seed should be replaced with a non-zero state")
	}
}

func TestScriptedRand(t *testing.T) {
	s := &ScriptedRand{Values: []float64{0.1, 0.9}}

	if s.Float64() != 0.1 || s.Float64() != 0.9 || s.Float64() != 0.1 {
		t.Error("ScriptedRand should cycle through its values")
	}
	if got := s.Intn(10); got != 9 {
		t.Errorf("Intn(10) with 0.9 = %d, expected 9", got)
	}

	empty := &ScriptedRand{}
	if empty.Float64() != 0 {
		t.Error("empty ScriptedRand should return 0")
	}
}

func TestInputFrameControls(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionJump)

	c := f.Controls()
	if !c.Left || c.Right || !c.Jump {
		t.Errorf("Controls() = %+v, expected left+jump", c)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
	if ActionBuy.String() != "Buy" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
