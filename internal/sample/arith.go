package sample

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is returned when an int result does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// AddInts returns a + b, or ErrOverflow if the sum wraps.
func AddInts(a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return Add(a, b), nil
}

// Square returns x*x, or ErrOverflow if the product wraps.
func Square(x int) (int, error) {
	if x == math.MinInt {
		return 0, fmt.Errorf("%d squared: %w", x, ErrOverflow)
	}
	u := uint(x)
	if x < 0 {
		u = uint(-x)
	}
	hi, lo := bits.Mul(u, u)
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("%d squared: %w", x, ErrOverflow)
	}
	return int(lo), nil
}

// EvenSquares returns the square of each even element of nums, keeping the
// original order. nums is not modified. The first even element whose square
// does not fit in an int aborts the whole result with ErrOverflow.
func EvenSquares(nums []int) ([]int, error) {
	squares := make([]int, 0, len(nums)/2+1)
	for _, x := range nums {
		if x%2 != 0 {
			continue
		}
		sq, err := Square(x)
		if err != nil {
			return nil, err
		}
		squares = append(squares, sq)
	}
	return squares, nil
}
