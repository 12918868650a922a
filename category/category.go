package category

//go:generate go tool stringer -type=Category -output=category_string.go

// Category tells how a union slot represents absence.
type Category int

const (
	_ Category = iota // skip zero value, use it as a default (invalid) value for Category

	// CategoryReference marks a slot whose type is nullable by nature:
	// the type itself has an absent state, no wrapping needed.
	CategoryReference

	// CategoryValue marks a slot whose type always occupies storage
	// (numbers, enums, fixed-size records) and needs an explicit option
	// wrapper to represent absence.
	CategoryValue

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota) - 1
)

// Symbol returns the one-letter form used in classification strings
// and dedupe keys.
func (c Category) Symbol() byte {
	switch c {
	default:
		panic("no symbol for invalid category")
	case CategoryReference:
		return 'R'
	case CategoryValue:
		return 'V'
	}
}

// IsValid reports whether c is one of the two defined categories.
func (c Category) IsValid() bool {
	return c == CategoryReference || c == CategoryValue
}
