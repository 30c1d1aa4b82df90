package ai

import (
	"fmt"
	"strings"
)

// Difficulty selects the strategy an AI player uses.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts both the display names (Easy, Normal, Hard) and
// the upper-case names (EASY, MEDIUM, HARD), case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return Easy, nil
	case "NORMAL", "MEDIUM":
		return Medium, nil
	case "HARD":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty %q", s)
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	parsed, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
