package bingo

import (
	"errors"
	"fmt"

	"github.com/maisem/aoc2021"
)

var (
	ErrNoWinner = errors.New("draws exhausted before a board won")
	// ErrSimultaneousLastWin is returned by LastWinner when the boards still
	// in play all win on the same draw, so no single board wins last.
	ErrSimultaneousLastWin = errors.New("last boards won together")
)

// Game is a draw sequence and the boards it is played on. Playing mutates
// the boards, so a Game is good for one of FirstWinner or LastWinner.
type Game struct {
	Draws  []int
	Boards []*Board
}

// Result describes a winning board.
type Result struct {
	Board    int // index into Game.Boards
	Draw     int // the number that completed the row or column
	Unmarked int // sum of unmarked cells at the time of the win
}

// Answer is the puzzle answer for r: the unmarked sum times the winning draw.
func (r Result) Answer() int {
	return r.Unmarked * r.Draw
}

func (g *Game) result(i, draw int) Result {
	return Result{Board: i, Draw: draw, Unmarked: g.Boards[i].Score()}
}

// FirstWinner draws numbers until a board wins and returns it. When several
// boards win on the same draw the first in input order is returned.
func (g *Game) FirstWinner() (Result, error) {
	if len(g.Boards) == 0 {
		return Result{}, ErrNoBoards
	}
	draws := aoc.NewQueue(g.Draws...)
	for draws.Len() > 0 {
		d, _ := draws.Pop()
		for i, b := range g.Boards {
			if b.Mark(d) && b.Won() {
				return g.result(i, d), nil
			}
		}
	}
	return Result{}, ErrNoWinner
}

// LastWinner draws numbers, retiring boards as they win, until one board
// is left; it then keeps drawing until that board wins and returns it.
func (g *Game) LastWinner() (Result, error) {
	if len(g.Boards) == 0 {
		return Result{}, ErrNoBoards
	}
	draws := aoc.NewQueue(g.Draws...)
	playing := make([]int, len(g.Boards))
	for i := range playing {
		playing[i] = i
	}
	var (
		d       int
		winners []int // boards that won on d
	)
	for len(playing) > 1 {
		var ok bool
		d, ok = draws.Pop()
		if !ok {
			return Result{}, fmt.Errorf("%w: %d boards still playing", ErrNoWinner, len(playing))
		}
		winners = winners[:0]
		next := playing[:0]
		for _, i := range playing {
			if b := g.Boards[i]; b.Mark(d) && b.Won() {
				winners = append(winners, i)
				continue
			}
			next = append(next, i)
		}
		playing = next
	}
	if len(playing) == 0 {
		return Result{}, fmt.Errorf("%w: boards %v all won on %d", ErrSimultaneousLastWin, winners, d)
	}

	i := playing[0]
	last := g.Boards[i]
	for {
		d, ok := draws.Pop()
		if !ok {
			return Result{}, fmt.Errorf("%w: board %d never won", ErrNoWinner, i)
		}
		if last.Mark(d) && last.Won() {
			return g.result(i, d), nil
		}
	}
}
