// Command aoc2021 solves Advent of Code 2021, days 1 through 4.
//
// Each part is first checked against the sample in its doc comment, then
// run on resources/day{N}.txt (see AOC_INPUT_DIR).
//
//	aoc2021 -day 4 -part 2
package main

import (
	_ "embed"
	"flag"
	"os"

	"github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/bingo"
	"github.com/maisem/aoc2021/diagnostic"
	"github.com/maisem/aoc2021/dive"
	"github.com/maisem/aoc2021/sonar"
	"github.com/pkg/profile"
)

var flagProfile = flag.Bool("profile", false, "write a CPU profile to the working directory")

func main() {
	if err := run(); err != nil {
		logger := aoc.NewLogger("info", os.Stderr)
		logger.Fatal().Err(err).Msg("aoc2021")
	}
}

func run() error {
	flag.Parse()
	if *flagProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	return aoc.Run(2021, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) depths() ([]int, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return sonar.ParseDepths(lines)
}

/*
want=7

199
200
208
210
200
207
240
269
260
263
*/
func (s solver) D1p1() (any, error) {
	depths, err := s.depths()
	if err != nil {
		return nil, err
	}
	return sonar.CountIncreases(depths), nil
}

// want=5
func (s solver) D1p2() (any, error) {
	depths, err := s.depths()
	if err != nil {
		return nil, err
	}
	return sonar.CountIncreases(sonar.SlidingSums(depths, 3)), nil
}

func (s solver) commands() ([]dive.Command, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return dive.ParseCommands(lines)
}

/*
want=150

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func (s solver) D2p1() (any, error) {
	cmds, err := s.commands()
	if err != nil {
		return nil, err
	}
	pos := dive.Navigate(cmds)
	s.Debugf("position (%d, %d)", pos.X, pos.Y)
	return pos.X * pos.Y, nil
}

// want=900
func (s solver) D2p2() (any, error) {
	cmds, err := s.commands()
	if err != nil {
		return nil, err
	}
	sub := dive.NavigateWithAim(cmds)
	s.Debugf("position %v", sub)
	return sub.Pos.X * sub.Pos.Y, nil
}

func (s solver) report() (diagnostic.Report, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return diagnostic.ParseReport(lines)
}

/*
want=198

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func (s solver) D3p1() (any, error) {
	r, err := s.report()
	if err != nil {
		return nil, err
	}
	gamma := diagnostic.GammaRate(r.OneCounts(), len(r))
	epsilon := diagnostic.EpsilonRate(gamma, r.Width())
	s.Debugf("gamma %d, epsilon %d", gamma, epsilon)
	return gamma * epsilon, nil
}

// want=230
func (s solver) D3p2() (any, error) {
	r, err := s.report()
	if err != nil {
		return nil, err
	}
	oxygen, co2, err := r.LifeSupport()
	if err != nil {
		return nil, err
	}
	s.Debugf("oxygen generator %d, CO2 scrubber %d", oxygen, co2)
	return oxygen * co2, nil
}

// game parses a fresh game; playing one marks its boards.
func (s solver) game() (*bingo.Game, error) {
	in, err := s.Input()
	if err != nil {
		return nil, err
	}
	return bingo.Parse(in)
}

func (s solver) logWin(which string, g *bingo.Game, r bingo.Result) {
	b := g.Boards[r.Board]
	s.Debugf("board %d (%v) won %s on %d:\n%v", r.Board+1, b.Hash(), which, r.Draw, b)
}

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

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
*/
func (s solver) D4p1() (any, error) {
	g, err := s.game()
	if err != nil {
		return nil, err
	}
	r, err := g.FirstWinner()
	if err != nil {
		return nil, err
	}
	s.logWin("first", g, r)
	return r.Answer(), nil
}

// want=1924
func (s solver) D4p2() (any, error) {
	g, err := s.game()
	if err != nil {
		return nil, err
	}
	r, err := g.LastWinner()
	if err != nil {
		return nil, err
	}
	s.logWin("last", g, r)
	return r.Answer(), nil
}
