package crypto

import "unicode/utf8"

// Level is a coarse strength tier derived from a score.
type Level string

const (
	LevelWeak      Level = "weak"
	LevelFair      Level = "fair"
	LevelGood      Level = "good"
	LevelStrong    Level = "strong"
	LevelExcellent Level = "excellent"
)

// maxUniqueBonus caps the points awarded for distinct characters.
const maxUniqueBonus = 10

// StrengthResult is the outcome of scoring a password.
// Score is not capped and can reach 120.
type StrengthResult struct {
	Score int
	Level Level
}

// Percent returns the score clamped to [0, 100] for meter-style displays.
func (r StrengthResult) Percent() int {
	return min(max(r.Score, 0), 100)
}

// Score rates password with an additive heuristic over its length, the
// character classes it uses and how many distinct characters it has.
// Lengths are counted in Unicode code points.
func Score(password string) StrengthResult {
	if password == "" {
		return StrengthResult{Score: 0, Level: LevelWeak}
	}

	score := 0

	n := utf8.RuneCountInString(password)
	if n >= 12 {
		score += 20
	}
	if n >= 16 {
		score += 15
	}
	if n >= 20 {
		score += 10
	}

	var hasLower, hasUpper, hasDigit, hasOther bool
	seen := make(map[rune]struct{}, n)
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
		seen[r] = struct{}{}
	}

	if hasLower {
		score += 15
	}
	if hasUpper {
		score += 15
	}
	if hasDigit {
		score += 15
	}
	if hasOther {
		score += 20
	}

	score += min(len(seen), maxUniqueBonus)

	return StrengthResult{Score: score, Level: LevelFor(score)}
}

// LevelFor maps a score to its tier.
func LevelFor(score int) Level {
	switch {
	case score < 30:
		return LevelWeak
	case score < 50:
		return LevelFair
	case score < 70:
		return LevelGood
	case score < 85:
		return LevelStrong
	default:
		return LevelExcellent
	}
}
