package uttt

import "github.com/danilarff86/mcts/pkg/mcts"

// noForcedBoard marks "any open small-board is legal", used both when
// there is no previous move and when the forced small-board is settled.
const noForcedBoard = -1

// State is the bit-packed Ultimate-TTT position: nine small-board words
// (18 bits used of each 32-bit word), one big-board projection word, the
// move that produced this position, and whose turn it is.
type State struct {
	small    [9]uint32
	big      uint32
	lastMove Move
	turn     Side
}

// NewState builds the starting position, or the position after a single
// opening move if opening != NoCell ("Us moves first" sentinel vs. an
// opponent opening).
func NewState(opening Cell) *State {
	s := &State{turn: SideUs, lastMove: NoMove}
	if opening != NoCell {
		s.turn = SideOpponent
		s.Apply(CellToMove(opening))
	}
	return s
}

// forcedBoard returns the small-board index the next move is constrained
// to, or noForcedBoard if any open board is legal.
func (s *State) forcedBoard() int {
	if s.lastMove == NoMove {
		return noForcedBoard
	}
	forced := s.lastMove.cellIndex()
	if Mark((s.big>>(2*uint(forced)))&0b11) != MarkEmpty {
		return noForcedBoard
	}
	return forced
}

// LegalMoves returns the ordered list of legal moves: by small-board
// index, then by cell index within it.
func (s *State) LegalMoves() []Move {
	if s.Terminal() {
		return nil
	}

	moves := make([]Move, 0, 16)
	forced := s.forcedBoard()

	appendBoard := func(boardIdx int) {
		if Mark((s.big>>(2*uint(boardIdx)))&0b11) != MarkEmpty {
			return
		}
		word := s.small[boardIdx]
		for cell := 0; cell < 9; cell++ {
			if Mark((word>>(2*uint(cell)))&0b11) == MarkEmpty {
				moves = append(moves, Move(boardIdx*9+cell))
			}
		}
	}

	if forced != noForcedBoard {
		appendBoard(forced)
	} else {
		for boardIdx := 0; boardIdx < 9; boardIdx++ {
			appendBoard(boardIdx)
		}
	}
	return moves
}

// Apply sets the cell for the current side, consults the terminal table
// on the just-modified small-board, writes a settled result into the
// big-board projection if needed, and flips the turn. Calling Apply on
// an already-terminal state is a contract violation and panics.
func (s *State) Apply(move Move) {
	if s.Terminal() {
		panic("uttt: Apply called on a terminal state")
	}

	boardIdx, cellIdx := move.boardIndex(), move.cellIndex()
	mark := s.turn.mark()
	s.small[boardIdx] |= uint32(mark) << (2 * uint(cellIdx))

	entry := lookup(s.small[boardIdx])
	if entry.result != NotFinished {
		s.big |= uint32(entry.contribution) << (2 * uint(boardIdx))
	}

	s.lastMove = move
	s.turn = s.turn.opposite()
}

// MustApply applies move, panicking with a descriptive message if it is
// not currently legal; used where a caller controls move generation
// itself (tests) rather than trusting an externally supplied move.
func (s *State) MustApply(move Move) {
	for _, m := range s.LegalMoves() {
		if m == move {
			s.Apply(move)
			return
		}
	}
	panic(invalidMoveErr(move))
}

// Terminal reports whether the big-board projection itself shows a
// finished game.
func (s *State) Terminal() bool {
	return lookup(s.big).result != NotFinished
}

// outcome converts the big-board's settled state into Outcome; callers
// must only call this once Terminal() is true.
func (s *State) outcome() Outcome {
	return lookup(s.big).result
}

// Clone deep-copies the position: the small-board array, big-board word,
// turn and last move are all fixed-size values, so this is a handful of
// cheap word copies.
func (s *State) Clone() mcts.GameState[Move] {
	clone := *s
	return &clone
}

// Simulate clones the state, then repeatedly applies a uniformly random
// legal move until the big-board lookup reports a terminal, returning
// that terminal. It never mutates the receiver.
func (s *State) Simulate(rng mcts.RNG) mcts.Outcome {
	cur := *s
	for plies := 0; plies < 81 && !cur.Terminal(); plies++ {
		moves := cur.LegalMoves()
		move := moves[rng.Intn(len(moves))]
		cur.Apply(move)
	}
	return toMCTSOutcome(cur.outcome())
}

// LastMove returns the move that produced this position (NoMove at the
// root before any play).
func (s *State) LastMove() Move { return s.lastMove }

// Turn returns whose move it is, in the generic engine's Side alphabet.
func (s *State) Turn() mcts.Side {
	if s.turn == SideUs {
		return mcts.SideUs
	}
	return mcts.SideOpponent
}

// LocalTurn returns whose move it is in this package's own Side
// alphabet.
func (s *State) LocalTurn() Side { return s.turn }

func toMCTSOutcome(o Outcome) mcts.Outcome {
	switch o {
	case Hit:
		return mcts.Hit
	case Miss:
		return mcts.Miss
	case DrawOutcome:
		return mcts.Draw
	default:
		return mcts.NotFinished
	}
}
