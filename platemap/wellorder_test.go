package platemap

import (
	"fmt"
	"testing"
)

func TestWellOrder_Rank96Bijection(t *testing.T) {
	order := NewWellOrder()

	seen := make(map[int]string, 96)
	for _, row := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		for col := 1; col <= 12; col++ {
			label := fmt.Sprintf("%s%d", row, col)
			rank := order.Rank96(label)
			if rank < 0 || rank > 95 {
				t.Fatalf("rank for %s out of range: %d", label, rank)
			}
			if prev, dup := seen[rank]; dup {
				t.Fatalf("rank %d assigned to both %s and %s", rank, prev, label)
			}
			seen[rank] = label
		}
	}
	if len(seen) != 96 {
		t.Fatalf("expected 96 distinct ranks, got %d", len(seen))
	}
}

func TestWellOrder_Rank96Interleaving(t *testing.T) {
	order := NewWellOrder()

	cases := []struct {
		label string
		rank  int
	}{
		{"A1", 0},
		{"B1", 1},
		{"A2", 2},
		{"B2", 3},
		{"A12", 22},
		{"B12", 23},
		{"C1", 24},
		{"D1", 25},
		{"E1", 48},
		{"G1", 72},
		{"H12", 95},
	}
	for _, tc := range cases {
		if got := order.Rank96(tc.label); got != tc.rank {
			t.Fatalf("rank for %s: expected %d, got %d", tc.label, tc.rank, got)
		}
	}
}

func TestWellOrder_Rank96Unknown(t *testing.T) {
	order := NewWellOrder()

	for _, label := range []string{"", "Z9", "A13", "I1", "A0", "well"} {
		if got := order.Rank96(label); got < 96 {
			t.Fatalf("unknown label %q got valid rank %d", label, got)
		}
	}
}

func TestWellOrder_Rank96Normalizes(t *testing.T) {
	order := NewWellOrder()

	if got := order.Rank96(" b1 "); got != 1 {
		t.Fatalf("expected rank 1 for padded lowercase label, got %d", got)
	}
}

func TestWellOrder_Index384(t *testing.T) {
	order := NewWellOrder()

	cases := []struct {
		label string
		index int
	}{
		{"A1", 0},
		{"A24", 23},
		{"B1", 24},
		{"C1", 48},
		{"P24", 383},
	}
	for _, tc := range cases {
		if got := order.Index384(tc.label); got != tc.index {
			t.Fatalf("index for %s: expected %d, got %d", tc.label, tc.index, got)
		}
	}

	if got := order.Index384("Q1"); got != -1 {
		t.Fatalf("expected -1 for unknown label, got %d", got)
	}
	if got := order.Index384("A25"); got != -1 {
		t.Fatalf("expected -1 for out-of-range column, got %d", got)
	}
}
