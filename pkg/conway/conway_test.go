package conway

import (
	"testing"

	"horton/pkg/grid"
)

func board(t *testing.T, w, h int, cells []uint8) *grid.Grid[uint8] {
	t.Helper()
	g, err := grid.FromSlice(w, h, cells)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := board(t, 5, 5, []uint8{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	})
	vertical := board(t, 5, 5, []uint8{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	})

	gen1 := Step(horizontal)
	if !grid.Equal(gen1, vertical) {
		t.Fatalf("blinker gen 1:\n%vwant:\n%v", gen1, vertical)
	}
	gen2 := Step(gen1)
	if !grid.Equal(gen2, horizontal) {
		t.Fatalf("blinker gen 2 must return to seed, got:\n%v", gen2)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	seed := board(t, 5, 5, []uint8{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	})
	snapshot := seed.Clone()
	Step(seed)
	if !grid.Equal(seed, snapshot) {
		t.Fatal("Step mutated its input grid")
	}
}

func TestBlockIsStill(t *testing.T) {
	block := board(t, 4, 4, []uint8{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	})
	if next := Step(block); !grid.Equal(next, block) {
		t.Fatalf("block must be a still life, got:\n%v", next)
	}
}

func TestNeighborCountingWrapsAtEdges(t *testing.T) {
	// Horizontal blinker hugging the top edge: with toroidal neighbor
	// lookups it flips to a vertical line that wraps through the bottom row.
	seed := board(t, 5, 5, []uint8{
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	})
	want := board(t, 5, 5, []uint8{
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
	})
	if got := Step(seed); !grid.Equal(got, want) {
		t.Fatalf("edge blinker:\n%vwant:\n%v", got, want)
	}
}

func TestNeighborsCounts(t *testing.T) {
	g := board(t, 4, 3, []uint8{
		0, 1, 0, 0,
		1, 1, 1, 0,
		0, 1, 0, 0,
	})
	if n := Neighbors(g, 1, 1); n != 4 {
		t.Fatalf("Neighbors(1, 1) = %d, want 4", n)
	}
	if n := Neighbors(g, 3, 1); n != 2 {
		t.Fatalf("Neighbors(3, 1) = %d, want 2 (wrapped lookups)", n)
	}
}

func TestGenerations(t *testing.T) {
	seed := board(t, 5, 5, []uint8{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	})
	snapshot := seed.Clone()

	var indices []int
	var worlds []*grid.Grid[uint8]
	for i, g := range Generations(3, seed) {
		indices = append(indices, i)
		worlds = append(worlds, g)
	}

	if len(indices) != 3 || indices[0] != 0 || indices[1] != 1 || indices[2] != 2 {
		t.Fatalf("generation indices = %v, want [0 1 2]", indices)
	}
	if !grid.Equal(worlds[0], seed) {
		t.Fatal("generation 0 must equal the seed")
	}
	if worlds[0] == seed {
		t.Fatal("generation 0 must be a copy, not the seed itself")
	}
	if !grid.Equal(worlds[2], Step(Step(seed))) {
		t.Fatal("generation 2 must equal Step(Step(seed))")
	}
	if !grid.Equal(seed, snapshot) {
		t.Fatal("the seed must not be mutated by Generations")
	}
}

func TestGenerationsRestartable(t *testing.T) {
	seed := board(t, 5, 5, []uint8{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	})
	seq := Generations(2, seed)

	run := func() []*grid.Grid[uint8] {
		var out []*grid.Grid[uint8]
		for _, g := range seq {
			out = append(out, g)
		}
		return out
	}
	first := run()
	second := run()
	for i := range first {
		if !grid.Equal(first[i], second[i]) {
			t.Fatalf("restarted sequence diverged at index %d", i)
		}
	}

	// Breaking early leaves the sequence reusable.
	for i := range seq {
		if i == 0 {
			break
		}
	}
	if again := run(); !grid.Equal(again[1], first[1]) {
		t.Fatal("sequence unusable after early break")
	}
}
