package uttt

import (
	"testing"
	"time"

	"github.com/danilarff86/mcts/pkg/mcts"
)

func TestNewEngineSearchesFromTheOpeningPosition(t *testing.T) {
	e := NewEngine(NoCell,
		mcts.WithInitialBudget[Move](10*time.Millisecond),
		mcts.WithMoveBudget[Move](5*time.Millisecond),
		mcts.WithBatchSize[Move](2))
	defer e.Close()

	if e.Root().TotalTrials() == 0 {
		t.Fatal("expected the constructor to have run at least one playout")
	}

	move := e.GetAIMove()
	if move == NoMove {
		t.Fatal("expected the engine to commit to a move after the initial search")
	}
}

func TestEngineOpponentMoveRejectsIllegalCell(t *testing.T) {
	e := NewEngine(NoCell,
		mcts.WithInitialBudget[Move](5*time.Millisecond),
		mcts.WithBatchSize[Move](2))
	defer e.Close()

	err := e.OpponentMove(NoMove)
	if err == nil {
		t.Fatal("expected OpponentMove(NoMove) to be rejected as illegal")
	}
}

func TestEngineOpponentMoveAcceptsACursorChild(t *testing.T) {
	e := NewEngine(NoCell,
		mcts.WithInitialBudget[Move](10*time.Millisecond),
		mcts.WithMoveBudget[Move](5*time.Millisecond),
		mcts.WithBatchSize[Move](2))
	defer e.Close()

	if !e.Cursor().Expanded() {
		t.Skip("cursor settled on an unexpanded node; nothing to assert against")
	}
	if len(e.Cursor().Children) == 0 {
		t.Skip("cursor settled on a terminal node with no children")
	}

	legal := e.Cursor().Children[0].Move
	if err := e.OpponentMove(legal); err != nil {
		t.Fatalf("expected a child move to be accepted, got %v", err)
	}
}

func TestStateOfRecoversTheConcreteState(t *testing.T) {
	e := NewEngine(NoCell, mcts.WithInitialBudget[Move](5*time.Millisecond))
	defer e.Close()

	s := StateOf(e.Root())
	if s == nil {
		t.Fatal("expected StateOf to recover a non-nil *State from the root node")
	}
}

// TestGetAIMoveSelectsAnImmediateWin constructs a position with board 0
// one cell short of a row for Us, and every other small-board already
// settled so it is the only board with a legal move left. Completing
// the row also fills every remaining big-board slot, so the resulting
// node is globally terminal: the search settles there on every
// iteration regardless of how many run, making GetAIMove's choice
// deterministic under any positive budget.
func TestGetAIMoveSelectsAnImmediateWin(t *testing.T) {
	board0 := uint32(MarkUs)<<0 | uint32(MarkUs)<<2 | uint32(MarkEmpty)<<4 |
		uint32(MarkOpponent)<<6 | uint32(MarkOpponent)<<8 | uint32(MarkUs)<<10 |
		uint32(MarkUs)<<12 | uint32(MarkOpponent)<<14 | uint32(MarkUs)<<16

	big := uint32(MarkEmpty)<<0 | uint32(MarkUs)<<2 | uint32(MarkOpponent)<<4 |
		uint32(MarkUs)<<6 | uint32(MarkOpponent)<<8 | uint32(MarkUs)<<10 |
		uint32(MarkUs)<<12 | uint32(MarkUs)<<14 | uint32(MarkOpponent)<<16

	s := &State{turn: SideUs, lastMove: NoMove, big: big}
	s.small[0] = board0

	if s.Terminal() {
		t.Fatal("expected the constructed position to not be terminal yet")
	}
	if got := s.LegalMoves(); len(got) != 1 || got[0] != Move(2) {
		t.Fatalf("expected the only legal move to be the winning cell, got %v", got)
	}

	e := mcts.NewEngine[Move](s, mcts.WithInitialBudget[Move](50*time.Millisecond))
	defer e.Close()

	if move := e.GetAIMove(); move != Move(2) {
		t.Fatalf("expected the engine to complete the win at move 2, got %v", move)
	}
}

// TestOpponentMoveEnforcesTheForcedBoardRule exercises the rule that
// playing the center cell of the center small-board sends the next move
// back into that same board: board 4 has only its center and one other
// cell open, every other board is settled, and the center is (4,4) in
// 9x9 coordinates. After the Opponent plays it, Us has exactly one
// legal reply, so — as above — the search settles deterministically on
// that reply regardless of iteration count.
func TestOpponentMoveEnforcesTheForcedBoardRule(t *testing.T) {
	board4 := uint32(MarkEmpty)<<0 | uint32(MarkUs)<<2 | uint32(MarkOpponent)<<4 |
		uint32(MarkUs)<<6 | uint32(MarkEmpty)<<8 | uint32(MarkOpponent)<<10 |
		uint32(MarkUs)<<12 | uint32(MarkOpponent)<<14 | uint32(MarkUs)<<16

	big := uint32(MarkUs)<<0 | uint32(MarkOpponent)<<2 | uint32(MarkUs)<<4 |
		uint32(MarkOpponent)<<6 | uint32(MarkEmpty)<<8 | uint32(MarkUs)<<10 |
		uint32(MarkOpponent)<<12 | uint32(MarkUs)<<14 | uint32(MarkOpponent)<<16

	s := &State{turn: SideOpponent, lastMove: NoMove, big: big}
	s.small[4] = board4

	if s.Terminal() {
		t.Fatal("expected the constructed position to not be terminal yet")
	}
	if got := s.LegalMoves(); len(got) != 2 {
		t.Fatalf("expected board 4's two open cells to be the only legal moves, got %v", got)
	}

	e := mcts.NewEngine[Move](s,
		mcts.WithInitialBudget[Move](-1*time.Nanosecond),
		mcts.WithMoveBudget[Move](50*time.Millisecond))
	defer e.Close()

	center := CellToMove(Cell{Row: 4, Col: 4})
	if err := e.OpponentMove(center); err != nil {
		t.Fatalf("expected the center move to be accepted, got %v", err)
	}

	move := e.GetAIMove()
	if move.boardIndex() != 4 {
		t.Fatalf("expected the forced reply to land in board 4, got board %d (move %v)", move.boardIndex(), move)
	}
}

// TestTwoEnginesSelfPlayReachToATerminalOutcome drives two independent
// engines through the same legal-move sequence (always the first
// available move, so the game itself is reproducible by inspection)
// and checks neither ever rejects a move the shared position actually
// allows, and that the game concludes within the 81-cell bound with a
// definitive outcome. Both engines use a negative budget so their
// cursors never search ahead of the moves this test itself is
// replaying into them.
func TestTwoEnginesSelfPlayReachToATerminalOutcome(t *testing.T) {
	opts := []mcts.Option[Move]{
		mcts.WithInitialBudget[Move](-1 * time.Nanosecond),
		mcts.WithMoveBudget[Move](-1 * time.Nanosecond),
	}
	engineA := NewEngine(NoCell, opts...)
	defer engineA.Close()
	engineB := NewEngine(NoCell, opts...)
	defer engineB.Close()

	for ply := 0; ply < 81; ply++ {
		state := StateOf(engineA.Cursor())
		if state.Terminal() {
			break
		}
		move := state.LegalMoves()[0]

		if err := engineA.OpponentMove(move); err != nil {
			t.Fatalf("ply %d: engine A rejected its own legal move %v: %v", ply, move, err)
		}
		if err := engineB.OpponentMove(move); err != nil {
			t.Fatalf("ply %d: engine B rejected the mirrored move %v: %v", ply, move, err)
		}
	}

	final := StateOf(engineA.Cursor())
	if !final.Terminal() {
		t.Fatalf("expected self-play to terminate within 81 plies:\n%s", final.Render())
	}
	switch final.outcome() {
	case Hit, Miss, DrawOutcome:
	default:
		t.Fatalf("expected a definitive outcome, got %v", final.outcome())
	}
	if got := StateOf(engineB.Cursor()).outcome(); got != final.outcome() {
		t.Fatalf("expected both engines to agree on the final outcome, got %v and %v", final.outcome(), got)
	}
}

// TestEngineRoundTripNeverProducesAnIllegalMove plays a full game
// against a single Engine, advancing by always feeding back the
// current cursor state's first legal move (so the game's progress
// doesn't depend on search timing) while checking, at every ply, that
// GetAIMove's value was legal in the state that preceded it — the
// round-trip property that a move the engine commits to is always one
// it was actually allowed to make.
func TestEngineRoundTripNeverProducesAnIllegalMove(t *testing.T) {
	e := NewEngine(NoCell,
		mcts.WithInitialBudget[Move](5*time.Millisecond),
		mcts.WithMoveBudget[Move](2*time.Millisecond),
		mcts.WithBatchSize[Move](2))
	defer e.Close()

	for ply := 0; ply < 81; ply++ {
		cursor := e.Cursor()
		if cursor.Terminal() {
			break
		}

		aiMove := e.GetAIMove()
		if cursor.Parent != nil {
			legal := false
			for _, m := range StateOf(cursor.Parent).LegalMoves() {
				if m == aiMove {
					legal = true
					break
				}
			}
			if !legal {
				t.Fatalf("ply %d: GetAIMove returned %v, not legal in the pre-move cursor state", ply, aiMove)
			}
		}

		move := StateOf(cursor).LegalMoves()[0]
		if err := e.OpponentMove(move); err != nil {
			t.Fatalf("ply %d: engine rejected its own legal move %v: %v", ply, move, err)
		}
	}

	if !e.Cursor().Terminal() {
		t.Fatal("expected self-play against itself to terminate within 81 plies")
	}
}
