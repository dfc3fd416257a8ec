// Command uttt plays Ultimate Tic-Tac-Toe against the engine from a
// terminal: it prints the board after every move, asks the engine for
// its move, then reads the opponent's reply as two whitespace-separated
// integers (row col, both 0..8).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/danilarff86/mcts/internal/uttt"
	"github.com/danilarff86/mcts/pkg/mcts"
)

func main() {
	seed := flag.Int64("seed", 0, "seed for the engine's RNGs (0 picks a time-based seed)")
	moveBudgetMs := flag.Int("move-ms", 100, "search budget per opponent move, in milliseconds")
	flag.Parse()

	if *seed != 0 {
		mcts.SetSeedGeneratorFn(func() int64 { return *seed })
	}

	engine := uttt.NewEngine(uttt.NoCell,
		mcts.WithMoveBudget[uttt.Move](time.Duration(*moveBudgetMs)*time.Millisecond))
	defer engine.Close()

	profile := termenv.ColorProfile()

	printBoard(engine, profile)

	aiMove := engine.GetAIMove()
	fmt.Printf("engine plays %s\n", aiMove)

	reader := bufio.NewReader(os.Stdin)
	for {
		row, col, err := readMove(reader)
		if err != nil {
			fmt.Println("input error:", err)
			continue
		}

		move := uttt.CellToMove(uttt.Cell{Row: int8(row), Col: int8(col)})
		if err := engine.OpponentMove(move); err != nil {
			fmt.Println("rejected:", err)
			continue
		}

		printBoard(engine, profile)

		if uttt.StateOf(engine.Cursor()).Terminal() {
			fmt.Println("game over")
			return
		}

		aiMove = engine.GetAIMove()
		fmt.Printf("engine plays %s\n", aiMove)

		if uttt.StateOf(engine.Cursor()).Terminal() {
			printBoard(engine, profile)
			fmt.Println("game over")
			return
		}
	}
}

func readMove(r *bufio.Reader) (row, col int, err error) {
	fmt.Print("your move (row col): ")
	_, err = fmt.Fscan(r, &row, &col)
	return row, col, err
}

func printBoard(engine *uttt.Engine, profile termenv.Profile) {
	state := uttt.StateOf(engine.Cursor())
	heading := termenv.String("--- board ---").Foreground(profile.Color("1")).Bold()
	board := termenv.String(state.Render()).Foreground(profile.Color("2"))
	fmt.Println(heading)
	fmt.Println(board)
}
