package bingo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/maisem/aoc2021"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGame = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func sampleBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard([][]int{
		{22, 13, 17, 11, 0},
		{8, 2, 23, 4, 24},
		{21, 9, 14, 16, 7},
		{6, 10, 3, 18, 5},
		{1, 12, 20, 15, 19},
	})
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := sampleBoard(t)
	assert.Equal(t, 5, b.Size())
	assert.False(t, b.Won())
	assert.Equal(t, 300, b.Score())

	tests := []struct {
		name string
		rows [][]int
	}{
		{"empty", nil},
		{"short row", [][]int{{1, 2}, {3}}},
		{"not square", [][]int{{1, 2, 3}, {4, 5, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.rows)
			assert.ErrorIs(t, err, ErrBoardSize)
		})
	}
}

func TestMark(t *testing.T) {
	b := sampleBoard(t)
	before := b.Hash()

	assert.False(t, b.Mark(99), "absent value")
	assert.Equal(t, before, b.Hash(), "absent value changed the board")

	require.True(t, b.Mark(17))
	afterFirst := b.Hash()
	assert.NotEqual(t, before, afterFirst)
	assert.Equal(t, 300-17, b.Score())

	assert.False(t, b.Mark(17), "already marked")
	assert.Equal(t, afterFirst, b.Hash(), "re-marking changed the board")
	assert.Equal(t, 300-17, b.Score())
}

func TestMarkDuplicateValue(t *testing.T) {
	b, err := NewBoard([][]int{{1, 1}, {2, 3}})
	require.NoError(t, err)
	assert.True(t, b.Mark(1))
	assert.Equal(t, 6, b.Score())
	assert.True(t, b.Mark(1))
	assert.Equal(t, 5, b.Score())
	assert.True(t, b.Won())
}

func TestWon(t *testing.T) {
	tests := []struct {
		name  string
		marks []int
		want  bool
	}{
		{"nothing", nil, false},
		{"row", []int{8, 2, 23, 4, 24}, true},
		{"column", []int{17, 23, 14, 3, 20}, true},
		{"diagonal", []int{22, 2, 14, 18, 19}, false},
		{"four of a row", []int{8, 2, 23, 4}, false},
		{"scattered", []int{22, 13, 2, 23, 9, 14}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard(t)
			for _, m := range tt.marks {
				require.True(t, b.Mark(m), "mark %d", m)
			}
			assert.Equal(t, tt.want, b.Won())
		})
	}
}

func TestParse(t *testing.T) {
	g, err := Parse([]byte(sampleGame))
	require.NoError(t, err)
	assert.Len(t, g.Draws, 27)
	assert.Equal(t, []int{7, 4, 9}, g.Draws[:3])
	require.Len(t, g.Boards, 3)
	for _, b := range g.Boards {
		assert.Equal(t, 5, b.Size())
	}
	assert.Equal(t, sampleBoard(t).Hash(), g.Boards[0].Hash())
}

func TestParseWithoutTrailingNewline(t *testing.T) {
	g, err := Parse([]byte("1,2,3\n\n1 2\n3 4"))
	require.NoError(t, err)
	require.Len(t, g.Boards, 1)
	assert.Equal(t, 10, g.Boards[0].Score())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrMissingDraws},
		{"blank", "\n\n\n", ErrMissingDraws},
		{"no boards", "1,2,3\n\n", ErrNoBoards},
		{"ragged board", "1,2\n\n1 2\n3\n", ErrBoardSize},
		{"mixed sizes", "1,2\n\n1 2\n3 4\n\n1 2 3\n4 5 6\n7 8 9\n", ErrBoardSize},
		{"bad draw", "1,x,3\n\n1 2\n3 4\n", strconv.ErrSyntax},
		{"trailing comma", "1,2,\n\n1 2\n3 4\n", strconv.ErrSyntax},
		{"bad cell", "1,2\n\n1 2\n3 four\n", strconv.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := Parse([]byte("1,2\n\n1 2\n3 four\n"))
	var pe *aoc.ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, 4, pe.Line)
}

func TestFirstWinner(t *testing.T) {
	g, err := Parse([]byte(sampleGame))
	require.NoError(t, err)
	r, err := g.FirstWinner()
	require.NoError(t, err)
	assert.Equal(t, Result{Board: 2, Draw: 24, Unmarked: 188}, r)
	assert.Equal(t, 4512, r.Answer())
}

func TestFirstWinnerTieGoesToFirstBoard(t *testing.T) {
	a, err := NewBoard([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := NewBoard([][]int{{2, 1}, {5, 6}})
	require.NoError(t, err)
	g := &Game{Draws: []int{1, 2}, Boards: []*Board{a, b}}
	r, err := g.FirstWinner()
	require.NoError(t, err)
	assert.Equal(t, Result{Board: 0, Draw: 2, Unmarked: 7}, r)
}

func TestLastWinner(t *testing.T) {
	g, err := Parse([]byte(sampleGame))
	require.NoError(t, err)
	r, err := g.LastWinner()
	require.NoError(t, err)
	assert.Equal(t, Result{Board: 1, Draw: 13, Unmarked: 148}, r)
	assert.Equal(t, 1924, r.Answer())
}

func TestLastWinnerSingleBoard(t *testing.T) {
	b, err := NewBoard([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	g := &Game{Draws: []int{5, 1, 9, 4, 6}, Boards: []*Board{b}}
	r, err := g.LastWinner()
	require.NoError(t, err)
	assert.Equal(t, Result{Board: 0, Draw: 6, Unmarked: 1 + 2 + 3 + 7 + 8 + 9 - 1 - 9}, r)
}

func TestNoWinner(t *testing.T) {
	newGame := func() *Game {
		g, err := Parse([]byte("22,13,17\n\n1 2\n3 4\n\n5 6\n7 8\n"))
		require.NoError(t, err)
		return g
	}
	_, err := newGame().FirstWinner()
	assert.ErrorIs(t, err, ErrNoWinner)
	_, err = newGame().LastWinner()
	assert.ErrorIs(t, err, ErrNoWinner)

	// The first board wins, the second never does.
	g, err := Parse([]byte("1,2,5\n\n1 2\n3 4\n\n5 6\n7 8\n"))
	require.NoError(t, err)
	_, err = g.LastWinner()
	assert.ErrorIs(t, err, ErrNoWinner)
}

func TestLastWinnerSimultaneous(t *testing.T) {
	g, err := Parse([]byte("1,2,3,4\n\n1 2\n3 4\n\n2 1\n4 3\n"))
	require.NoError(t, err)
	_, err = g.LastWinner()
	assert.ErrorIs(t, err, ErrSimultaneousLastWin)
}

func TestLastWinnerSimultaneousNamesFinalDraw(t *testing.T) {
	// Board 0 retires on 8; boards 1 and 2 then both win on 2.
	g, err := Parse([]byte("9,8,1,2\n\n9 8\n7 6\n\n1 2\n3 4\n\n2 1\n4 3\n"))
	require.NoError(t, err)
	_, err = g.LastWinner()
	require.ErrorIs(t, err, ErrSimultaneousLastWin)
	assert.ErrorContains(t, err, "boards [1 2] all won on 2")
}

func TestNoBoards(t *testing.T) {
	g := &Game{Draws: []int{1, 2, 3}}
	_, err := g.FirstWinner()
	assert.ErrorIs(t, err, ErrNoBoards)
	_, err = g.LastWinner()
	assert.ErrorIs(t, err, ErrNoBoards)
}
