// Package sonar analyzes sonar sweep depth readings.
package sonar

import (
	"strings"

	"github.com/maisem/aoc2021"
)

// ParseDepths parses one depth per line. Blank lines are skipped.
func ParseDepths(lines []string) ([]int, error) {
	var depths []int
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		d, err := aoc.ParseInt(l)
		if err != nil {
			return nil, aoc.AtLine(i+1, l, err)
		}
		depths = append(depths, d)
	}
	return depths, nil
}

// CountIncreases returns how many depths are deeper than the one before.
func CountIncreases(depths []int) int {
	n := 0
	for _, w := range aoc.Windows(depths, 2) {
		if w[1] > w[0] {
			n++
		}
	}
	return n
}

// SlidingSums returns the sums of each width-wide window of depths.
func SlidingSums(depths []int, width int) []int {
	ws := aoc.Windows(depths, width)
	sums := make([]int, len(ws))
	for i, w := range ws {
		sums[i] = aoc.Sum(w...)
	}
	return sums
}
