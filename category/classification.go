package category

import (
	"errors"
	"fmt"
)

// ErrInvalidArity is reported when a requested arity is below the minimum
// a union can meaningfully have.
var ErrInvalidArity = errors.New("invalid arity")

// Classification assigns a category to every slot of a union, in slot order.
type Classification []Category

// String returns the compact symbol form, e.g. "RVV" for
// (reference, value, value).
func (c Classification) String() string {
	buf := make([]byte, len(c))

	for i, cat := range c {
		if !cat.IsValid() {
			buf[i] = '?'
			continue
		}

		buf[i] = cat.Symbol()
	}

	return string(buf)
}

// Arity returns the number of slots the classification covers.
func (c Classification) Arity() int {
	return len(c)
}

// Enumerate produces every classification of n slots, 2^n in total, without
// duplicates or omissions. The order is lexicographic over the two-symbol
// alphabet with reference before value at every position, so the all-reference
// classification comes first and the all-value one last. The sequence is
// deterministic: repeated calls with the same n yield identical output.
func Enumerate(n int) ([]Classification, error) {
	if n < 1 {
		return nil, fmt.Errorf("enumerate %d slots: %w", n, ErrInvalidArity)
	}

	total := 1 << n
	res := make([]Classification, 0, total)

	for mask := 0; mask < total; mask++ {
		cls := make(Classification, n)
		for slot := range n {
			// Highest bit maps to slot 0 so the sequence reads lexicographically.
			if mask&(1<<(n-1-slot)) == 0 {
				cls[slot] = CategoryReference
			} else {
				cls[slot] = CategoryValue
			}
		}

		res = append(res, cls)
	}

	return res, nil
}
