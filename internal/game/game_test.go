package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRound_HidesLetters(t *testing.T) {
	r := NewRound("cat", "a small domesticated carnivore")

	assert.Equal(t, "___", r.Progress())
	assert.Equal(t, "cat", r.Word())
	assert.Equal(t, "a small domesticated carnivore", r.Definition())
	assert.Equal(t, StatusInProgress, r.Status())
	assert.Zero(t, r.Incorrect())
}

func TestNewRound_RevealsNonLetters(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"ice cream", "___ _____"},
		{"mother-in-law", "______-__-___"},
		{"a b", "_ _"},
	}
	for _, tt := range tests {
		r := NewRound(tt.word, "")
		assert.Equal(t, tt.want, r.Progress(), "word %q", tt.word)
		assert.Len(t, r.Progress(), len(tt.word), "progress length must match word")
	}
}

func TestNewRound_NormalizesCase(t *testing.T) {
	r := NewRound("CaT", "")

	res := r.Guess('C')
	assert.True(t, res.Hit)
	assert.Equal(t, "c__", r.Progress())
}

func TestGuess_HitRevealsAllPositions(t *testing.T) {
	r := NewRound("banana", "")

	res := r.Guess('a')
	assert.True(t, res.Hit)
	assert.False(t, res.AlreadyGuessed)
	assert.Equal(t, "_a_a_a", r.Progress())
	assert.Zero(t, r.Incorrect())
}

func TestGuess_MissIncrementsOnce(t *testing.T) {
	r := NewRound("cat", "")

	res := r.Guess('z')
	assert.False(t, res.Hit)
	assert.False(t, res.AlreadyGuessed)
	assert.Equal(t, 1, r.Incorrect())
	assert.Len(t, r.Guessed(), 1)
}

func TestGuess_RepeatIsIdempotent(t *testing.T) {
	r := NewRound("cat", "")

	r.Guess('z')
	progress := r.Progress()

	res := r.Guess('z')
	assert.True(t, res.AlreadyGuessed)
	assert.False(t, res.Hit)
	assert.Equal(t, 1, r.Incorrect(), "repeat miss must not increment")
	assert.Equal(t, progress, r.Progress())
	assert.Len(t, r.Guessed(), 1)

	r.Guess('a')
	res = r.Guess('A')
	assert.True(t, res.AlreadyGuessed, "repeat hit is case-insensitive")
}

func TestGuess_NonLetterIsNoOp(t *testing.T) {
	r := NewRound("cat", "")

	for _, bad := range []rune{'1', ' ', '-', '?', '\n'} {
		res := r.Guess(bad)
		assert.False(t, res.Hit, "rune %q", bad)
		assert.False(t, res.AlreadyGuessed, "rune %q", bad)
	}
	assert.Zero(t, r.Incorrect())
	assert.Empty(t, r.Guessed())
	assert.Equal(t, "___", r.Progress())
}

func TestRound_WinSequence(t *testing.T) {
	r := NewRound("cat", "a small domesticated carnivore")

	for _, l := range []rune{'c', 'a', 't'} {
		assert.False(t, r.IsComplete())
		res := r.Guess(l)
		assert.True(t, res.Hit, "letter %q", l)
	}

	assert.True(t, r.IsComplete())
	assert.Equal(t, StatusWon, r.Status())
	assert.Zero(t, r.Incorrect())
	assert.Equal(t, "cat", r.Progress())
}

func TestRound_LossSequence(t *testing.T) {
	r := NewRound("dog", "")

	misses := []rune{'a', 'b', 'c', 'e', 'f', 'h', 'i', 'j', 'k'}
	require.Len(t, misses, MaxIncorrect)
	for i, l := range misses {
		assert.False(t, r.IsLost(MaxIncorrect), "not lost before miss %d", i+1)
		res := r.Guess(l)
		assert.False(t, res.Hit, "letter %q", l)
	}

	assert.Equal(t, MaxIncorrect, r.Incorrect())
	assert.True(t, r.IsLost(MaxIncorrect))
	assert.False(t, r.IsComplete())
	assert.Equal(t, StatusLost, r.Status())
}

func TestRound_TerminalStatesRejectGuesses(t *testing.T) {
	r := NewRound("a", "")
	r.Guess('a')
	require.Equal(t, StatusWon, r.Status())

	res := r.Guess('b')
	assert.False(t, res.Hit)
	assert.Zero(t, r.Incorrect())
	assert.Len(t, r.Guessed(), 1, "no letters recorded after the round ends")
}

func TestRound_Abandon(t *testing.T) {
	r := NewRound("cat", "")
	r.Abandon()
	assert.Equal(t, StatusAbandoned, r.Status())

	res := r.Guess('c')
	assert.False(t, res.Hit)
	assert.Equal(t, "___", r.Progress())

	won := NewRound("a", "")
	won.Guess('a')
	won.Abandon()
	assert.Equal(t, StatusWon, won.Status(), "abandon must not override a finished round")
}

func TestGuessed_Sorted(t *testing.T) {
	r := NewRound("cat", "")
	for _, l := range []rune{'t', 'a', 'z', 'c'} {
		r.Guess(l)
	}
	assert.Equal(t, []rune{'a', 'c', 't', 'z'}, r.Guessed())
}
