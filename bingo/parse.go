package bingo

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2021"
)

var (
	ErrMissingDraws = errors.New("missing draw line")
	ErrNoBoards     = errors.New("no boards")
)

// Parse reads a game: a line of comma-separated draws, then boards of
// white-space separated numbers, separated by blank lines. All boards must
// be the size of the first.
func Parse(input []byte) (*Game, error) {
	s := bufio.NewScanner(bytes.NewReader(input))
	var (
		g       Game
		line    int
		sawDraw bool
		rows    [][]int
		start   int
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		b, err := NewBoard(rows)
		if err != nil {
			return fmt.Errorf("board at line %d: %w", start, err)
		}
		if len(g.Boards) > 0 && b.Size() != g.Boards[0].Size() {
			return fmt.Errorf("board at line %d: %w: %dx%d, want %dx%d", start, ErrBoardSize, b.Size(), b.Size(), g.Boards[0].Size(), g.Boards[0].Size())
		}
		g.Boards = append(g.Boards, b)
		rows = nil
		return nil
	}
	for s.Scan() {
		line++
		text := s.Text()
		if !sawDraw {
			if strings.TrimSpace(text) == "" {
				continue
			}
			draws, err := aoc.IntFields(text, ",")
			if err != nil {
				return nil, aoc.AtLine(line, text, err)
			}
			g.Draws = draws
			sawDraw = true
			continue
		}
		if strings.TrimSpace(text) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		row, err := aoc.IntFields(text, " ")
		if err != nil {
			return nil, aoc.AtLine(line, text, err)
		}
		if len(rows) == 0 {
			start = line
		}
		rows = append(rows, row)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if !sawDraw {
		return nil, ErrMissingDraws
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(g.Boards) == 0 {
		return nil, ErrNoBoards
	}
	return &g, nil
}
