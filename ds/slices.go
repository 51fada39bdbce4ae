package ds

import (
	"fmt"
)

// Repeat returns n copies of value.
func Repeat[T any](n int, value T) []T {
	ts := make([]T, n)
	for i := range ts {
		ts[i] = value
	}
	return ts
}

// ShallowCopy copies the elements of ts into a new slice of the same length.
func ShallowCopy[T any](ts []T) []T {
	return append(make([]T, 0, len(ts)), ts...)
}

// RoundUp returns the smallest multiple of m that is greater than or equal to n.
// Both arguments must be positive.
func RoundUp(n int, m int) int {
	if n <= 0 || m <= 0 {
		panic(ErrUnreachableCode{Caller: fmt.Sprintf("RoundUp(%d, %d)", n, m)})
	}
	return (n + m - 1) / m * m
}
