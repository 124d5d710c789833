package engine

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 20; i++ {
		a := rng1.Between(1, 6)
		b := rng2.Between(1, 6)
		if a != b {
			t.Fatalf("roll %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRNG_Between_DieRange(t *testing.T) {
	rng := NewRNG(99)

	for i := 0; i < 1000; i++ {
		r := rng.Between(1, 6)
		if r < 1 || r > 6 {
			t.Fatalf("roll out of range [1,6]: got %d", r)
		}
	}
}

func TestRNG_Between_Range(t *testing.T) {
	rng := NewRNG(5)
	seen := map[int]bool{}

	for i := 0; i < 2000; i++ {
		r := rng.Between(3, 10)
		if r < 3 || r > 10 {
			t.Fatalf("value out of range [3,10]: got %d", r)
		}
		seen[r] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected all 8 values to appear, saw %d", len(seen))
	}
}

func TestRNG_Between_DegenerateRange(t *testing.T) {
	rng := NewRNG(1)

	for i := 0; i < 10; i++ {
		if r := rng.Between(4, 4); r != 4 {
			t.Fatalf("[4,4] should always be 4, got %d", r)
		}
	}
	if r := rng.Between(5, 2); r != 5 {
		t.Errorf("inverted range should return min, got %d", r)
	}
	if rng.Position() != 0 {
		t.Errorf("degenerate ranges should not consume draws, position %d", rng.Position())
	}
}

func TestRNG_Position_Tracks(t *testing.T) {
	rng := NewRNG(42)

	if rng.Position() != 0 {
		t.Fatalf("expected position 0, got %d", rng.Position())
	}

	rng.Between(1, 6)
	if rng.Position() != 1 {
		t.Fatalf("expected position 1, got %d", rng.Position())
	}

	rng.Between(0, 5)
	rng.Between(1, 20)
	rng.Between(1, 20)
	if rng.Position() != 4 {
		t.Fatalf("expected position 4, got %d", rng.Position())
	}
}

func TestRNG_Restore_MatchesPosition(t *testing.T) {
	// Advance an RNG ten rolls and record the next 5.
	rng := NewRNG(42)
	for i := 0; i < 10; i++ {
		rng.Between(1, 6)
	}
	pos := rng.Position()

	var expected [5]int
	for i := range expected {
		expected[i] = rng.Between(1, 100)
	}

	// Restore to that position and verify same rolls.
	restored := RestoreRNG(42, pos)
	if restored.Position() != pos {
		t.Fatalf("expected position %d, got %d", pos, restored.Position())
	}
	if restored.Seed() != 42 {
		t.Fatalf("expected seed 42, got %d", restored.Seed())
	}

	for i, want := range expected {
		got := restored.Between(1, 100)
		if got != want {
			t.Fatalf("roll %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestRNG_DifferentSeeds_DifferentResults(t *testing.T) {
	rng1 := NewRNG(1)
	rng2 := NewRNG(2)

	// With different seeds, at least some rolls should differ.
	differs := false
	for i := 0; i < 20; i++ {
		if rng1.Between(1, 100) != rng2.Between(1, 100) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected different seeds to produce different results")
	}
}

func TestRNG_Between_PowerOfTwoAndWideRanges(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 500; i++ {
		if r := rng.Between(0, 63); r < 0 || r > 63 {
			t.Fatalf("value out of range [0,63]: got %d", r)
		}
		if r := rng.Between(-5, 1<<40); r < -5 || r > 1<<40 {
			t.Fatalf("value out of wide range: got %d", r)
		}
	}

	restored := RestoreRNG(7, rng.Position())
	for i := 0; i < 20; i++ {
		if a, b := rng.Between(1, 1000003), restored.Between(1, 1000003); a != b {
			t.Fatalf("draw %d after restore: %d != %d", i, a, b)
		}
	}
}
