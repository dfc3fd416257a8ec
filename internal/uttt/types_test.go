package uttt

import "testing"

func TestCellMoveRoundTrip(t *testing.T) {
	for row := int8(0); row < 9; row++ {
		for col := int8(0); col < 9; col++ {
			c := Cell{Row: row, Col: col}
			m := CellToMove(c)
			if got := MoveToCell(m); got != c {
				t.Fatalf("round trip failed for %v: got %v via move %d", c, got, m)
			}
		}
	}
}

func TestCellToMoveBoardAndCellIndex(t *testing.T) {
	m := CellToMove(Cell{Row: 4, Col: 4})
	if m.boardIndex() != 4 {
		t.Fatalf("expected board index 4 for the center cell, got %d", m.boardIndex())
	}
	if m.cellIndex() != 4 {
		t.Fatalf("expected cell index 4 for the center cell, got %d", m.cellIndex())
	}
}

func TestSideMarkAndOpposite(t *testing.T) {
	if SideUs.mark() != MarkUs {
		t.Fatal("SideUs should mark cells as MarkUs")
	}
	if SideOpponent.mark() != MarkOpponent {
		t.Fatal("SideOpponent should mark cells as MarkOpponent")
	}
	if SideUs.opposite() != SideOpponent || SideOpponent.opposite() != SideUs {
		t.Fatal("opposite should swap the two sides")
	}
}

func TestNoMoveString(t *testing.T) {
	if NoMove.String() != "(none)" {
		t.Fatalf("expected NoMove to render as (none), got %q", NoMove.String())
	}
}

func TestMoveStringIsStableAndDistinct(t *testing.T) {
	seen := make(map[string]Move)
	for m := Move(0); m < 81; m++ {
		s := m.String()
		if other, ok := seen[s]; ok {
			t.Fatalf("moves %d and %d both render as %q", other, m, s)
		}
		seen[s] = m
	}
}
