package aoc

import "golang.org/x/exp/constraints"

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Windows returns every run of n consecutive elements of in, in order.
// The windows share in's backing array. It returns nil if n <= 0 or n
// exceeds len(in).
func Windows[T any](in []T, n int) [][]T {
	if n <= 0 || n > len(in) {
		return nil
	}
	out := make([][]T, 0, len(in)-n+1)
	for i := 0; i+n <= len(in); i++ {
		out = append(out, in[i:i+n:i+n])
	}
	return out
}

// Fold folds in into defVal from left to right.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// LowBits returns an int64 with the n low bits set. n must be in [0, 63].
func LowBits(n int) int64 {
	return int64(uint64(1)<<n - 1)
}
