package cloverpit

import (
	"unicode/utf16"

	"github.com/samber/lo"
)

// FoldSteps returns every value the iteration-count fold goes through, starting
// with start and ending with the value inside [8, 16]. Each pass first subtracts
// 16 when the value is above 16 and then adds 8 when it is below 8, so both
// branches can fire within one pass (17 -> 1 -> 9 is a single step).
func FoldSteps(start int) []int {
	steps := []int{start}
	num := start
	for num > maxIterations || num < minIterations {
		if num > maxIterations {
			num -= 16
		}
		if num < minIterations {
			num += 8
		}
		steps = append(steps, num)
	}
	return steps
}

// DeriveIterationCount sums the UTF-16 code units of password on top of 8 and
// folds the sum into [8, 16].
func DeriveIterationCount(password string) int {
	start := lo.Reduce(
		codeUnits(password),
		func(sum int, unit uint16, _ int) int {
			return sum + int(unit)
		},
		minIterations,
	)
	steps := FoldSteps(start)
	return steps[len(steps)-1]
}

// BuildKeystreamTable derives the keystream table, one entry per code unit of
// password.
func BuildKeystreamTable(password string) []uint16 {
	units := codeUnits(password)
	table := make([]uint16, len(units))
	if len(units) == 0 {
		return table
	}
	numIterations := DeriveIterationCount(password)
	for round := 0; round < numIterations; round++ {
		table = keystreamRound(table, units)
	}
	return table
}

// keystreamRound reads only the password units, never the running table, so
// every round produces the same table.
func keystreamRound(table []uint16, units []uint16) []uint16 {
	n := len(units)
	for j := range units {
		rotate := (j + int(units[j])%n) % n
		table[j] = units[rotate] ^ units[j]
	}
	return table
}

// Transform XORs every byte of data with the keystream. It is its own inverse.
// An empty password yields an unchanged copy.
func Transform(data []byte, password string) []byte {
	result := make([]byte, len(data))
	table := BuildKeystreamTable(password)
	if len(table) == 0 {
		copy(result, data)
		return result
	}
	for k := range data {
		result[k] = data[k] ^ byte(table[k%len(table)])
	}
	return result
}

func codeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
