package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()
	assert.False(t, s.IsDetailed())
	assert.Equal(t, ModeSimplified, s.Mode())
	assert.Equal(t, "Detailed View", s.ToggleLabel())

	var zero State
	assert.Equal(t, s, zero)
}

func TestToggleDetailed(t *testing.T) {
	s := New()

	s.ToggleDetailed()
	assert.True(t, s.IsDetailed())
	assert.Equal(t, ModeDetailed, s.Mode())
	assert.Equal(t, "Simplified View", s.ToggleLabel())

	s.ToggleDetailed()
	assert.False(t, s.IsDetailed())
	assert.Equal(t, "Detailed View", s.ToggleLabel())
}

func TestToggleDetailed_EvenCountRestores(t *testing.T) {
	for n := 0; n <= 10; n++ {
		s := New()
		for i := 0; i < n; i++ {
			s.ToggleDetailed()
		}
		assert.Equal(t, n%2 == 1, s.IsDetailed(), "after %d toggles", n)
	}
}

func TestNewDetailed(t *testing.T) {
	s := NewDetailed()
	assert.True(t, s.IsDetailed())
	s.ToggleDetailed()
	assert.Equal(t, New(), s)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "simplified", ModeSimplified.String())
	assert.Equal(t, "detailed", ModeDetailed.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
