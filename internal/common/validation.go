package common

import (
	"fmt"
	"strings"
)

// MinPlayers and MaxPlayers bound the seats of a match.
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// ValidatePlayerCount checks the number of seats.
func ValidatePlayerCount(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("player count must be between %d and %d, got %d", MinPlayers, MaxPlayers, n)
	}
	return nil
}

// ValidatePlayerName rejects blank names.
func ValidatePlayerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("player name must not be empty")
	}
	return nil
}

// IsValidHexColor reports whether s parses as a hex colour.
func IsValidHexColor(s string) bool {
	_, err := ParseHexColor(s)
	return err == nil
}
