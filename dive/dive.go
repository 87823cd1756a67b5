// Package dive steers the submarine through planned course commands.
package dive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2021"
)

var ErrBadCommand = errors.New("bad command")

// Command moves the submarine By units. Forward is aoc.Right; up and down
// change depth, which grows downward like Y.
type Command struct {
	Dir aoc.Direction
	By  int
}

var verbs = map[string]aoc.Direction{
	"forward": aoc.Right,
	"up":      aoc.Up,
	"down":    aoc.Down,
}

func (c Command) String() string {
	for v, d := range verbs {
		if d == c.Dir {
			return fmt.Sprintf("%s %d", v, c.By)
		}
	}
	return fmt.Sprintf("%v %d", c.Dir, c.By)
}

// ParseCommand parses "<forward|up|down> <n>".
func ParseCommand(line string) (Command, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return Command{}, &aoc.ParseError{Text: line, Err: fmt.Errorf("%w: want <direction> <magnitude>", ErrBadCommand)}
	}
	dir, ok := verbs[f[0]]
	if !ok {
		return Command{}, &aoc.ParseError{Text: line, Err: fmt.Errorf("%w: unknown direction %q", ErrBadCommand, f[0])}
	}
	by, err := aoc.ParseInt(f[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Dir: dir, By: by}, nil
}

// ParseCommands parses one command per line. Blank lines are skipped.
func ParseCommands(lines []string) ([]Command, error) {
	var cmds []Command
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		c, err := ParseCommand(l)
		if err != nil {
			return nil, aoc.AtLine(i+1, l, err)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Navigate applies the commands literally: X is the horizontal position
// and Y the depth.
func Navigate(cmds []Command) aoc.Pt {
	return aoc.Fold(cmds, func(p aoc.Pt, c Command) aoc.Pt {
		return p.Step(c.Dir, c.By)
	}, aoc.Pt{})
}

type Submarine struct {
	Pos aoc.Pt
	Aim int
}

func (s Submarine) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Pos.X, s.Pos.Y, s.Aim)
}

// NavigateWithAim applies the commands with up and down turning the aim,
// and forward moving along it.
func NavigateWithAim(cmds []Command) Submarine {
	return aoc.Fold(cmds, func(s Submarine, c Command) Submarine {
		switch c.Dir {
		case aoc.Right:
			s.Pos.X += c.By
			s.Pos.Y += s.Aim * c.By
		case aoc.Up:
			s.Aim -= c.By
		case aoc.Down:
			s.Aim += c.By
		}
		return s
	}, Submarine{})
}
