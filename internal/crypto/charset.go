package crypto

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// CharacterClass is a named alphabet a password may draw from.
type CharacterClass uint8

const (
	Uppercase CharacterClass = 1 << iota
	Lowercase
	Digit
	Symbol
)

// classOrder is the fixed order used to build alphabets and seeds.
var classOrder = []CharacterClass{Uppercase, Lowercase, Digit, Symbol}

// Alphabet returns the ordered characters of the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// ClassSet is a set of character classes.
type ClassSet uint8

// AllClasses enables every character class.
const AllClasses = ClassSet(Uppercase | Lowercase | Digit | Symbol)

// NewClassSet builds a set from the given classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s |= ClassSet(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c CharacterClass) bool {
	return s&ClassSet(c) != 0
}

// With returns a copy of the set with c added.
func (s ClassSet) With(c CharacterClass) ClassSet {
	return s | ClassSet(c)
}

// Without returns a copy of the set with c removed.
func (s ClassSet) Without(c CharacterClass) ClassSet {
	return s &^ ClassSet(c)
}

// Classes lists the members of the set in fixed class order.
func (s ClassSet) Classes() []CharacterClass {
	var out []CharacterClass
	for _, c := range classOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of classes in the set.
func (s ClassSet) Len() int {
	return len(s.Classes())
}

// Effective returns the set itself, or {Lowercase} when it is empty.
// Generation never runs against an empty alphabet.
func (s ClassSet) Effective() ClassSet {
	if s&AllClasses == 0 {
		return ClassSet(Lowercase)
	}
	return s & AllClasses
}

// Alphabet concatenates the alphabets of the set's classes in class order.
func (s ClassSet) Alphabet() string {
	var b strings.Builder
	for _, c := range s.Classes() {
		b.WriteString(c.Alphabet())
	}
	return b.String()
}
