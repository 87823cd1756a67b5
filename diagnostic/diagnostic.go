// Package diagnostic decodes the submarine's binary diagnostic report.
package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc2021"
)

var (
	ErrEmptyReport   = errors.New("empty report")
	ErrRaggedRows    = errors.New("rows differ in width")
	ErrNotBinary     = errors.New("not a binary digit")
	ErrNoConvergence = errors.New("rating filter left more than one row")
	ErrTooWide       = errors.New("row wider than 63 bits")
)

// MaxWidth is the widest row whose value fits in an int64.
const MaxWidth = 63

// Report is a diagnostic report: rows of binary digits of equal width.
type Report []string

// ParseReport validates the lines of a report. Blank lines are skipped.
func ParseReport(lines []string) (Report, error) {
	var r Report
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if j := strings.IndexFunc(l, func(c rune) bool { return c != '0' && c != '1' }); j != -1 {
			return nil, &aoc.ParseError{Line: i + 1, Text: l, Err: fmt.Errorf("%w at column %d", ErrNotBinary, j+1)}
		}
		if len(l) > MaxWidth {
			return nil, &aoc.ParseError{Line: i + 1, Text: l, Err: fmt.Errorf("%w: %d digits", ErrTooWide, len(l))}
		}
		if len(r) > 0 && len(l) != len(r[0]) {
			return nil, &aoc.ParseError{Line: i + 1, Text: l, Err: fmt.Errorf("%w: %d digits, want %d", ErrRaggedRows, len(l), len(r[0]))}
		}
		r = append(r, l)
	}
	if len(r) == 0 {
		return nil, ErrEmptyReport
	}
	return r, nil
}

func (r Report) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// OneCounts returns, per column, how many rows have a 1.
func (r Report) OneCounts() []int {
	counts := make([]int, r.Width())
	for _, row := range r {
		for i := range row {
			if row[i] == '1' {
				counts[i]++
			}
		}
	}
	return counts
}

// MostCommonBits returns the majority bit of each column given its count
// of ones out of n rows. Ties go to 1.
func MostCommonBits(counts []int, n int) []int {
	bits := make([]int, len(counts))
	for i, ones := range counts {
		if ones >= n-ones {
			bits[i] = 1
		}
	}
	return bits
}

// GammaRate decodes the majority bits, most significant column first.
func GammaRate(counts []int, n int) int64 {
	return aoc.Fold(MostCommonBits(counts, n), func(acc int64, b int) int64 {
		return acc<<1 | int64(b)
	}, 0)
}

// EpsilonRate is the minority-bit value: every bit of gamma flipped.
// width is at most MaxWidth.
func EpsilonRate(gamma int64, width int) int64 {
	return aoc.LowBits(width) &^ gamma
}

// Rating narrows the report column by column to the rows carrying the
// most (or least) common bit of that column and returns the survivor.
// Ties keep 1 for the most common bit and 0 for the least common. A
// column where every row agrees is skipped when looking for the least
// common bit.
func (r Report) Rating(mostCommon bool) (string, error) {
	rows := slices.Clone(r)
	for i := 0; len(rows) > 1; i++ {
		if i >= r.Width() {
			return "", fmt.Errorf("%w: %d identical rows", ErrNoConvergence, len(rows))
		}
		ones := 0
		for _, row := range rows {
			if row[i] == '1' {
				ones++
			}
		}
		zeros := len(rows) - ones
		keep, kept := byte('0'), zeros
		if mostCommon == (ones >= zeros) {
			keep, kept = '1', ones
		}
		if kept == 0 {
			continue
		}
		rows = slices.DeleteFunc(rows, func(row string) bool { return row[i] != keep })
	}
	if len(rows) == 0 {
		return "", ErrEmptyReport
	}
	return rows[0], nil
}

// LifeSupport returns the oxygen generator and CO2 scrubber ratings.
func (r Report) LifeSupport() (oxygen, co2 int64, err error) {
	o, err := r.Rating(true)
	if err != nil {
		return 0, 0, fmt.Errorf("oxygen generator rating: %w", err)
	}
	c, err := r.Rating(false)
	if err != nil {
		return 0, 0, fmt.Errorf("CO2 scrubber rating: %w", err)
	}
	if oxygen, err = aoc.ParseBinary(o); err != nil {
		return 0, 0, err
	}
	if co2, err = aoc.ParseBinary(c); err != nil {
		return 0, 0, err
	}
	return oxygen, co2, nil
}
