// Package session holds the state of one age-prediction interaction and the
// transitions between its views.
package session

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// NotPredictable marks an age the API could not predict.
	NotPredictable = -1

	// MaxNameLength is the number of runes shown before a name is cut short.
	MaxNameLength = 20

	// Ellipsis is appended to names longer than MaxNameLength.
	Ellipsis = ".."

	// ErrorMessage is shown whenever the prediction request fails.
	ErrorMessage = "Någonting gick fel. Prova igen senare!"
)

// State is the view derived from a Session.
type State int

const (
	StateForm State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateForm:
		return "form"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is the in-memory record of one interaction cycle.
// Sessions are values; every transition returns a new one.
type Session struct {
	Name      string // first token of the user's input
	Age       *int   // nil until resolved; NotPredictable when the API had no answer
	Submitted bool
	Err       string // empty unless the request failed
}

// New returns the initial session.
func New() Session {
	return Session{}
}

// FirstName returns the text before the first whitespace in raw.
// Leading whitespace yields an empty name.
func FirstName(raw string) string {
	if i := strings.IndexFunc(raw, unicode.IsSpace); i >= 0 {
		return raw[:i]
	}
	return raw
}

// Input replaces the name with the first token of raw.
func (s Session) Input(raw string) Session {
	s.Name = FirstName(raw)
	return s
}

// Submit marks the session as submitted. The boolean reports whether a
// prediction request must be issued; it is false when there is no name.
func (s Session) Submit() (Session, bool) {
	if s.Name == "" || s.Submitted {
		return s, false
	}
	s.Submitted = true
	return s, true
}

// Resolve records a successful response. A missing or zero age is stored
// as NotPredictable. Outcomes arriving outside the loading view are dropped.
func (s Session) Resolve(age *int) Session {
	if s.State() != StateLoading {
		return s
	}
	v := NotPredictable
	if age != nil && *age != 0 {
		v = *age
	}
	s.Age = &v
	return s
}

// Fail records a failed request. The age is left untouched. Like Resolve it
// only applies while loading: a failure reported after a success, or after
// the user went back, does not replace what is on screen.
func (s Session) Fail(msg string) Session {
	if s.State() != StateLoading {
		return s
	}
	s.Err = msg
	return s
}

// Back discards the current attempt.
func (s Session) Back() Session {
	return New()
}

// State derives the current view. The error is checked before the age.
func (s Session) State() State {
	switch {
	case !s.Submitted:
		return StateForm
	case s.Err != "":
		return StateError
	case s.Age == nil:
		return StateLoading
	default:
		return StateSuccess
	}
}

// DisplayName cuts names longer than MaxNameLength runes.
func DisplayName(name string) string {
	r := []rune(name)
	if len(r) > MaxNameLength {
		return string(r[:MaxNameLength]) + Ellipsis
	}
	return name
}

// Sentence composes the success message. It is empty outside StateSuccess.
func (s Session) Sentence() string {
	if s.State() != StateSuccess {
		return ""
	}
	greeting := "Hello, " + DisplayName(s.Name) + "!"
	if *s.Age == NotPredictable {
		return greeting + " Sorry, I can't predict your age."
	}
	return fmt.Sprintf("%s I predict your age is %d.", greeting, *s.Age)
}
