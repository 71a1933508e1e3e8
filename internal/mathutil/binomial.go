// Package mathutil provides exact arithmetic helpers for blur kernel design.
package mathutil

import (
	"math/big"
)

// BinomialRow returns row `order` of Pascal's triangle.
//
// The row is built incrementally: starting from [1], each pass convolves the
// current row with [1, 1], so interior elements become the sum of their two
// neighbours and both ends stay 1. After `order` passes the row has order+1
// elements.
//
// Coefficients grow combinatorially (row 64 already exceeds int64), so the
// row is kept in arbitrary precision. Use [NormalizeRow] to move to floating
// point once.
//
// An order of zero or less returns [1].
func BinomialRow(order int) []*big.Int {
	row := []*big.Int{big.NewInt(pascalEdge)}

	for range max(order, 0) {
		next := make([]*big.Int, 0, len(row)+1)
		next = append(next, big.NewInt(pascalEdge))
		for i := 1; i < len(row); i++ {
			next = append(next, new(big.Int).Add(row[i-1], row[i]))
		}
		next = append(next, big.NewInt(pascalEdge))
		row = next
	}

	return row
}

// RowSum returns the exact sum of all elements. For a Pascal row of order n
// this is 2^n.
func RowSum(row []*big.Int) *big.Int {
	sum := new(big.Int)
	for _, v := range row {
		sum.Add(sum, v)
	}
	return sum
}

// NormalizeRow divides every element by the row sum.
//
// Each quotient is formed as an exact rational and rounded to the nearest
// float64 exactly once, so no precision is lost to intermediate overflow or
// accumulated rounding regardless of row order. A row summing to zero
// returns all zeros.
func NormalizeRow(row []*big.Int) []float64 {
	out := make([]float64, len(row))

	sum := RowSum(row)
	if sum.Sign() == 0 {
		return out
	}

	q := new(big.Rat)
	for i, v := range row {
		out[i], _ = q.SetFrac(v, sum).Float64()
	}

	return out
}

// IsPalindrome reports whether row[i] == row[len-1-i] for every i.
func IsPalindrome(row []*big.Int) bool {
	n := len(row)
	for i := 0; i < n/halfDivisor; i++ {
		if row[i].Cmp(row[n-1-i]) != 0 {
			return false
		}
	}
	return true
}
