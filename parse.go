package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a line of input that could not be parsed.
type ParseError struct {
	Line int // 1-based; 0 if unknown
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parsing %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: parsing %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AtLine returns err with its line number set, if err is a *ParseError
// without one. Other errors are wrapped in a ParseError for line.
func AtLine(line int, text string, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		if pe.Line == 0 {
			pe.Line = line
		}
		return pe
	}
	return &ParseError{Line: line, Text: text, Err: err}
}

// ParseInt returns the int value of the string, ignoring surrounding space.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Text: s, Err: err}
	}
	return v, nil
}

// ParseInts returns the int values of the strings.
func ParseInts(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := ParseInt(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// IntFields parses a line of ints separated by sep. A blank sep splits on
// runs of white space.
func IntFields(line, sep string) ([]int, error) {
	var f []string
	if strings.TrimSpace(sep) == "" {
		f = strings.Fields(line)
	} else {
		f = strings.Split(line, sep)
	}
	return ParseInts(f...)
}

// ParseBinary parses a binary string, with or without a 0b prefix.
func ParseBinary(in string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(in, "0b"), 2, 64)
	if err != nil {
		return 0, &ParseError{Text: in, Err: err}
	}
	return v, nil
}

// Int is ParseInt for inputs known to be good, like test fixtures.
func Int(s string) int {
	return MustGet(ParseInt(s))
}
