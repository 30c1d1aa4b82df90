package common

import "golang.org/x/exp/constraints"

// Number covers the integer and float types used in scoring.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of x
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi]. If lo > hi, lo wins.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

// CeilDiv returns ceil(a/b) for non-negative a and positive b.
func CeilDiv[T constraints.Integer](a, b T) T {
	return (a + b - 1) / b
}

// Sum adds up a slice of numbers.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Ratio returns part/whole, or 0 when whole is zero.
func Ratio[T constraints.Integer](part, whole T) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
