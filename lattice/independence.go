package lattice

import "fmt"

// Det computes the determinant of a square integer matrix of size 1, 2,
// or 3 using closed-form expansion. Calling Det with a non-square matrix,
// or a square matrix of any other size, is a contract violation: it is a
// programmer error, not a recoverable condition, and Det panics rather
// than returning an error.
func Det(matrix [][]int64) int64 {
	n := len(matrix)
	for _, row := range matrix {
		if len(row) != n {
			panic(fmt.Sprintf("lattice: Det called on a non-square matrix (%d rows, row of length %d)", n, len(row)))
		}
	}

	switch n {
	case 1:
		return matrix[0][0]
	case 2:
		return matrix[0][0]*matrix[1][1] - matrix[0][1]*matrix[1][0]
	case 3:
		return matrix[0][0]*(matrix[1][1]*matrix[2][2]-matrix[1][2]*matrix[2][1]) -
			matrix[0][1]*(matrix[1][0]*matrix[2][2]-matrix[1][2]*matrix[2][0]) +
			matrix[0][2]*(matrix[1][0]*matrix[2][1]-matrix[1][1]*matrix[2][0])
	default:
		panic(fmt.Sprintf("lattice: Det only supports sizes 1..3, got %d", n))
	}
}

// Independent decides whether base ∪ {v} remains linearly independent
// over ℚ (equivalently ℝ), where base holds fewer than Dim vectors.
//
// Contract:
//   - len(base) >= Dim always returns false (rank is already saturated).
//   - v == Zero always returns false (the zero vector is never
//     independent of anything).
//   - Otherwise the (len(base)+1)×Dim matrix M, whose rows are base then
//     v, is formed; independence holds iff det(M·Mᵀ) != 0.
func Independent(base []TranslationVector, v TranslationVector) bool {
	if len(base) >= Dim {
		return false
	}
	if v.IsZero() {
		return false
	}

	rows := make([]TranslationVector, 0, len(base)+1)
	rows = append(rows, base...)
	rows = append(rows, v)

	n := len(rows)
	gram := make([][]int64, n)
	for i := range gram {
		gram[i] = make([]int64, n)
		for j := range gram[i] {
			gram[i][j] = rows[i].dot(rows[j])
		}
	}

	return Det(gram) != 0
}
