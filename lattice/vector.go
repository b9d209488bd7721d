package lattice

// Dim is the vector space dimension supported by this package. The
// analysis in package percolate never needs more than three independent
// translations, and Det only has closed forms up to this size.
const Dim = 3

// TranslationVector is an ordered triple of signed integers: the
// displacement, measured in whole periodic-cell copies, from the tail
// endpoint of an edge to its head. The zero value denotes an edge whose
// endpoints lie in the same cell copy.
//
// Coordinates are int64. A BFS walk of length up to O(V) accumulates unit
// translations along the way; int64 leaves no realistic room for
// overflow.
type TranslationVector [Dim]int64

// Zero is the additive identity.
var Zero = TranslationVector{}

// Add returns the componentwise sum v+other.
func (v TranslationVector) Add(other TranslationVector) TranslationVector {
	var res TranslationVector
	for i := 0; i < Dim; i++ {
		res[i] = v[i] + other[i]
	}
	return res
}

// Sub returns the componentwise difference v-other.
func (v TranslationVector) Sub(other TranslationVector) TranslationVector {
	var res TranslationVector
	for i := 0; i < Dim; i++ {
		res[i] = v[i] - other[i]
	}
	return res
}

// Neg returns the componentwise negation of v.
func (v TranslationVector) Neg() TranslationVector {
	var res TranslationVector
	for i := 0; i < Dim; i++ {
		res[i] = -v[i]
	}
	return res
}

// Eq reports whether v and other are componentwise equal.
func (v TranslationVector) Eq(other TranslationVector) bool {
	return v == other
}

// IsZero reports whether v is the zero vector.
func (v TranslationVector) IsZero() bool {
	return v == Zero
}

// dot returns the integer dot product of v and other.
func (v TranslationVector) dot(other TranslationVector) int64 {
	var sum int64
	for i := 0; i < Dim; i++ {
		sum += v[i] * other[i]
	}
	return sum
}
