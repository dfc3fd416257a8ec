package uttt

// tableEntry is one slot of the precomputed terminal table: the result
// of classifying a small-board word, and the Mark that settled
// small-board contributes to its slot in the big-board projection.
type tableEntry struct {
	result       Outcome
	contribution Mark
}

// terminalTable has 2^18 entries, one per possible 18-bit small-board (or
// big-board) word, so terminal detection during simulation and move
// application is a single array index. Classification for unreachable
// configurations is still well-defined; it is simply never queried.
var terminalTable [1 << 18]tableEntry

// Row/column/diagonal bit masks, sized for word-level lookups against the
// 2-bit packed alphabet (0=empty, 1=Opponent, 2=Us, 3=Common).
const (
	rowOpponentPattern = 0b010101
	rowUsPattern       = 0b101010
	rowMask            = 0b111111

	colMask          = 0x30C3
	colOpponentValue = 0x1041
	colUsValue       = 0x2082

	diagMask          = 0x30303
	diagOpponentValue = 0x10101
	diagUsValue       = 0x20202

	antiDiagMask          = 0x3330
	antiDiagOpponentValue = 0x1110
	antiDiagUsValue       = 0x2220
)

func init() {
	for w := 0; w < (1 << 18); w++ {
		terminalTable[w] = classify(uint32(w))
	}
}

// classify runs the row/column/diagonal/cell-count algorithm against an
// 18-bit word (whether it is a small-board's own cells or the
// big-board's projection — both use the same 2-bit alphabet, so one
// classifier serves both lookups).
func classify(word uint32) tableEntry {
	// Rows: 6-bit field at offset 6*i.
	for i := 0; i < 3; i++ {
		row := (word >> (6 * uint(i))) & rowMask
		if row == rowOpponentPattern {
			return tableEntry{result: Miss, contribution: MarkOpponent}
		}
		if row == rowUsPattern {
			return tableEntry{result: Hit, contribution: MarkUs}
		}
	}

	// Columns: cells i, i+3, i+6 shift-aligned every 6 bits, offset 2*i.
	for i := 0; i < 3; i++ {
		col := (word >> (2 * uint(i))) & colMask
		if col == colOpponentValue {
			return tableEntry{result: Miss, contribution: MarkOpponent}
		}
		if col == colUsValue {
			return tableEntry{result: Hit, contribution: MarkUs}
		}
	}

	// Diagonal (0,0),(1,1),(2,2).
	diag := word & diagMask
	if diag == diagOpponentValue {
		return tableEntry{result: Miss, contribution: MarkOpponent}
	}
	if diag == diagUsValue {
		return tableEntry{result: Hit, contribution: MarkUs}
	}

	// Anti-diagonal (0,2),(1,1),(2,0): cells 2, 4, 6 -> bit offsets
	// 4, 8, 12, mask 0x3330.
	anti := word & antiDiagMask
	if anti == antiDiagOpponentValue {
		return tableEntry{result: Miss, contribution: MarkOpponent}
	}
	if anti == antiDiagUsValue {
		return tableEntry{result: Hit, contribution: MarkUs}
	}

	// No three-in-a-row: count empty/Us/Opponent cells across the nine
	// 2-bit fields. Common (3) counts as filled but credits neither side.
	var empty, us, opp int
	for i := 0; i < 9; i++ {
		switch Mark((word >> (2 * uint(i))) & 0b11) {
		case MarkEmpty:
			empty++
		case MarkUs:
			us++
		case MarkOpponent:
			opp++
		}
	}

	if empty == 0 {
		// A filled board with no three-in-a-row is itself a Draw; only
		// its contribution to the next level up is decided by cell
		// count, an explicit tie-break for the big-board projection of
		// a drawn small-board (see DESIGN.md).
		switch {
		case us > opp:
			return tableEntry{result: DrawOutcome, contribution: MarkUs}
		case opp > us:
			return tableEntry{result: DrawOutcome, contribution: MarkOpponent}
		default:
			return tableEntry{result: DrawOutcome, contribution: MarkCommon}
		}
	}

	return tableEntry{result: NotFinished, contribution: MarkEmpty}
}

// lookup queries the table for a given 18-bit word, masking to be safe
// against callers that pass a wider type.
func lookup(word uint32) tableEntry {
	return terminalTable[word&0x3FFFF]
}
