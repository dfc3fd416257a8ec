package uttt

import "strings"

// CellAt returns the Mark occupying (row, col) in the 9x9 grid, reading
// straight out of the packed small-board words.
func (s *State) CellAt(c Cell) Mark {
	m := CellToMove(c)
	word := s.small[m.boardIndex()]
	return Mark((word >> (2 * uint(m.cellIndex()))) & 0b11)
}

// BoardMark returns the settled Mark of small-board idx (0..8) from the
// big-board projection: MarkEmpty means still open.
func (s *State) BoardMark(idx int) Mark {
	return Mark((s.big >> (2 * uint(idx))) & 0b11)
}

// ForcedBoard exposes forcedBoard to callers outside the package;
// returns -1 when any open board is legal.
func (s *State) ForcedBoard() int {
	return s.forcedBoard()
}

func markRune(m Mark) byte {
	switch m {
	case MarkUs:
		return 'X'
	case MarkOpponent:
		return 'O'
	case MarkCommon:
		return '='
	default:
		return '.'
	}
}

// Render draws the 9x9 board as nine lines of nine cells, with a space
// between super-columns and a blank line between super-rows, meant for
// a human reading a
// terminal rather than round-tripping through a parser.
func (s *State) Render() string {
	var b strings.Builder
	for row := int8(0); row < 9; row++ {
		for col := int8(0); col < 9; col++ {
			b.WriteByte(markRune(s.CellAt(Cell{Row: row, Col: col})))
			if col%3 == 2 && col != 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
		if row%3 == 2 && row != 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
