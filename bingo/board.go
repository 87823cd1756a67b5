// Package bingo plays giant-squid bingo: boards of numbered cells that are
// marked as numbers are drawn, until a full row or column wins.
package bingo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2021"
	"tailscale.com/util/deephash"
)

var ErrBoardSize = errors.New("board is not square")

// Cell is one number on a board. Marked goes from false to true at most
// once.
type Cell struct {
	Value  int
	Marked bool
}

// Board is an N×N grid of cells. Its size never changes after NewBoard.
type Board struct {
	g aoc.Grid[Cell]
}

// NewBoard returns an unmarked board holding rows. rows must be non-empty
// and square.
func NewBoard(rows [][]int) (*Board, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBoardSize)
	}
	g := aoc.MakeGrid[Cell](n, n)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d numbers, want %d", ErrBoardSize, y+1, len(row), n)
		}
		for x, v := range row {
			g.Set(aoc.Pt{X: x, Y: y}, Cell{Value: v})
		}
	}
	return &Board{g: g}, nil
}

// Size returns N for an N×N board.
func (b *Board) Size() int {
	return len(b.g)
}

// Mark marks the first unmarked cell holding v. It reports whether such a
// cell existed; a value that is absent or already marked leaves the board
// untouched and returns false.
func (b *Board) Mark(v int) bool {
	marked := false
	b.g.ForEach(func(p aoc.Pt, c Cell) bool {
		if c.Marked || c.Value != v {
			return true
		}
		b.g.Set(p, Cell{Value: v, Marked: true})
		marked = true
		return false
	})
	return marked
}

// Won reports whether any row or column is fully marked.
func (b *Board) Won() bool {
	return anyRowMarked(b.g) || anyRowMarked(b.g.Transpose())
}

func anyRowMarked(g aoc.Grid[Cell]) bool {
	for _, row := range g {
		full := true
		for _, c := range row {
			if !c.Marked {
				full = false
				break
			}
		}
		if full {
			return true
		}
	}
	return false
}

// Score returns the sum of the unmarked cells.
func (b *Board) Score() int {
	var unmarked []int
	b.g.ForEach(func(_ aoc.Pt, c Cell) bool {
		if !c.Marked {
			unmarked = append(unmarked, c.Value)
		}
		return true
	})
	return aoc.Sum(unmarked...)
}

// Hash returns a digest of the board's values and marks.
func (b *Board) Hash() deephash.Sum {
	return b.g.Hash()
}

// String renders the board one row per line, marked cells in brackets.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.g {
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if c.Marked {
				fmt.Fprintf(&sb, "[%2d]", c.Value)
			} else {
				fmt.Fprintf(&sb, " %2d ", c.Value)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
