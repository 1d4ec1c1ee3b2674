package crypto

const (
	MinLength     = 8
	MaxLength     = 64
	DefaultLength = 16
)

// Policy describes the password to generate.
type Policy struct {
	Length  int
	Classes ClassSet
}

// DefaultPolicy returns 16 characters with all classes enabled.
func DefaultPolicy() Policy {
	return Policy{
		Length:  DefaultLength,
		Classes: AllClasses,
	}
}

// Generate creates a random password satisfying policy, drawing from src.
//
// The result holds at least one character of every enabled class and nothing
// outside their alphabets. An empty class set is treated as lowercase only.
// Length bounds are the caller's concern. When policy.Length is smaller than
// the number of enabled classes, the result is just the guaranteed characters,
// one per class, and so is longer than requested.
func Generate(policy Policy, src Source) string {
	if src == nil {
		src = CryptoSource{}
	}

	classes := policy.Classes.Effective()
	pool := classes.Alphabet()

	// Guarantee at least one character from each class.
	result := make([]byte, 0, max(policy.Length, classes.Len()))
	for _, c := range classes.Classes() {
		result = append(result, pick(src, c.Alphabet()))
	}

	// Fill the remaining positions from the full pool.
	for i := len(result); i < policy.Length; i++ {
		result = append(result, pick(src, pool))
	}

	shuffle(src, result)

	return string(result)
}
