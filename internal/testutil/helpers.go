package testutil

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// ScriptedDice replays fixed values. Intn returns the next die face minus one
// so that scripting {6, 6, 1} yields rolls 6, 6, 1 from a d6. Float64 returns
// the next fraction. Exhausted scripts repeat their last value.
type ScriptedDice struct {
	Faces     []int
	Fractions []float64
	fi, ri    int
}

func (d *ScriptedDice) Intn(n int) int {
	if len(d.Faces) == 0 {
		return 0
	}
	i := d.fi
	if i >= len(d.Faces) {
		i = len(d.Faces) - 1
	}
	d.fi++
	v := d.Faces[i] - 1
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (d *ScriptedDice) Float64() float64 {
	if len(d.Fractions) == 0 {
		return 0
	}
	i := d.ri
	if i >= len(d.Fractions) {
		i = len(d.Fractions) - 1
	}
	d.ri++
	return d.Fractions[i]
}
