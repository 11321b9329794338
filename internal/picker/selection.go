// Package picker holds the time selection state: the Closed/Opening/Open
// state machine that guards the picker, and the Spinner that edits the
// selected timestamp field by field.
package picker

import "time"

// DefaultDebounce is how long the picker stays locked after it opens.
const DefaultDebounce = 500 * time.Millisecond

// State is the visibility state of the picker.
type State int

const (
	Closed State = iota
	Opening
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Selection tracks whether the picker may be opened.
//
// A request to open only succeeds from Closed while the ready flag is set.
// Opening clears the flag; the caller arms a timer for Debounce and calls
// Settle when it fires, whether or not the picker is still visible.
type Selection struct {
	state    State
	ready    bool
	debounce time.Duration
}

// NewSelection returns a closed, ready selection. A non-positive debounce
// falls back to DefaultDebounce.
func NewSelection(debounce time.Duration) *Selection {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Selection{state: Closed, ready: true, debounce: debounce}
}

// RequestOpen moves Closed to Opening. It reports false and changes nothing
// when the picker is already showing or still debouncing.
func (s *Selection) RequestOpen() bool {
	if s.state != Closed || !s.ready {
		return false
	}
	s.state = Opening
	s.ready = false
	return true
}

// MarkOpen completes Opening to Open.
func (s *Selection) MarkOpen() {
	if s.state == Opening {
		s.state = Open
	}
}

// Settle sets the ready flag again once the debounce window has passed.
func (s *Selection) Settle() {
	s.ready = true
}

// Close hides the picker. It is used for both confirm and dismiss.
func (s *Selection) Close() {
	s.state = Closed
}

func (s *Selection) State() State            { return s.state }
func (s *Selection) Ready() bool             { return s.ready }
func (s *Selection) Debounce() time.Duration { return s.debounce }

// Visible reports whether the picker is on screen.
func (s *Selection) Visible() bool {
	return s.state != Closed
}
