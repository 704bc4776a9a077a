// Package game implements the round state machine for hangman: the
// hidden word, per-position reveal progress, guessed letters, and the
// incorrect-guess count.
package game

import (
	"sort"
	"strings"
	"unicode"
)

// MaxIncorrect is the number of misses that loses a round. It matches
// the number of drawable figure stages.
const MaxIncorrect = 9

// Placeholder marks an unrevealed letter in the progress string.
const Placeholder = '_'

// Status describes where a round is in its lifecycle. Won, Lost, and
// Abandoned are terminal; a new round requires a new Round value.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Result reports the outcome of a single guess.
type Result struct {
	Hit            bool
	AlreadyGuessed bool
}

// Round holds the state of one hangman round. It is created by
// NewRound and mutated only through Guess and Abandon.
type Round struct {
	word       []rune
	definition string
	progress   []rune
	guessed    map[rune]bool
	incorrect  int
	status     Status
}

// NewRound starts a round for the given word and definition. The word
// is normalized to lowercase. Letters are hidden behind placeholders;
// anything else (spaces, hyphens) is revealed immediately.
func NewRound(word, definition string) *Round {
	w := []rune(strings.ToLower(word))
	progress := make([]rune, len(w))
	for i, r := range w {
		if unicode.IsLetter(r) {
			progress[i] = Placeholder
		} else {
			progress[i] = r
		}
	}
	return &Round{
		word:       w,
		definition: definition,
		progress:   progress,
		guessed:    make(map[rune]bool),
	}
}

// Guess evaluates a single letter. Non-letter input and guesses after
// the round has ended leave the state untouched. A repeated letter
// reports AlreadyGuessed without further mutation. A miss increments
// the incorrect count by exactly one.
func (r *Round) Guess(letter rune) Result {
	if r.status != StatusInProgress {
		return Result{}
	}
	letter = unicode.ToLower(letter)
	if !unicode.IsLetter(letter) {
		return Result{}
	}
	if r.guessed[letter] {
		return Result{AlreadyGuessed: true}
	}
	r.guessed[letter] = true

	hit := false
	for i, ch := range r.word {
		if ch == letter {
			r.progress[i] = letter
			hit = true
		}
	}
	if !hit {
		r.incorrect++
		if r.incorrect >= MaxIncorrect {
			r.status = StatusLost
		}
		return Result{}
	}
	if r.IsComplete() {
		r.status = StatusWon
	}
	return Result{Hit: true}
}

// IsComplete reports whether every letter of the word is revealed.
func (r *Round) IsComplete() bool {
	for _, ch := range r.progress {
		if ch == Placeholder {
			return false
		}
	}
	return true
}

// IsLost reports whether the incorrect-guess count has reached max.
func (r *Round) IsLost(max int) bool {
	return r.incorrect >= max
}

// Abandon marks the round as quit by the player. It is a no-op once
// the round has already ended.
func (r *Round) Abandon() {
	if r.status == StatusInProgress {
		r.status = StatusAbandoned
	}
}

// Status returns the round's lifecycle state.
func (r *Round) Status() Status {
	return r.status
}

// Word returns the normalized target word.
func (r *Round) Word() string {
	return string(r.word)
}

// Definition returns the gloss shown to the player as a clue.
func (r *Round) Definition() string {
	return r.definition
}

// Progress returns the partially revealed word.
func (r *Round) Progress() string {
	return string(r.progress)
}

// Incorrect returns the number of misses so far.
func (r *Round) Incorrect() int {
	return r.incorrect
}

// Guessed returns the letters tried so far, sorted.
func (r *Round) Guessed() []rune {
	letters := make([]rune, 0, len(r.guessed))
	for l := range r.guessed {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
