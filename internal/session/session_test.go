package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func loading(t *testing.T, name string) Session {
	t.Helper()
	s, ok := New().Input(name).Submit()
	require.True(t, ok)
	require.Equal(t, StateLoading, s.State())
	return s
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "two tokens", raw: "Anna Banan", want: "Anna"},
		{name: "single token", raw: "Anna", want: "Anna"},
		{name: "empty", raw: "", want: ""},
		{name: "leading space", raw: " Anna", want: ""},
		{name: "trailing space", raw: "Anna ", want: "Anna"},
		{name: "tab", raw: "Anna\tBanan", want: "Anna"},
		{name: "non ascii", raw: "Åsa Öberg", want: "Åsa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FirstName(tt.raw))
		})
	}
}

func TestInputKeepsFirstToken(t *testing.T) {
	s := New().Input("Anna Banan")
	require.Equal(t, "Anna", s.Name)
	require.Equal(t, StateForm, s.State())
}

func TestInputClearsNothingElse(t *testing.T) {
	s := loading(t, "Anna").Resolve(intPtr(34))
	s = s.Input("Bo")
	require.Equal(t, "Bo", s.Name)
	require.True(t, s.Submitted)
	require.Equal(t, 34, *s.Age)
}

func TestSubmitWithoutNameIsNoop(t *testing.T) {
	s, ok := New().Submit()
	require.False(t, ok)
	require.False(t, s.Submitted)
	require.Equal(t, StateForm, s.State())

	s, ok = New().Input(" Anna").Submit()
	require.False(t, ok)
	require.Equal(t, StateForm, s.State())
}

func TestSubmitEntersLoading(t *testing.T) {
	s := loading(t, "Anna")
	require.True(t, s.Submitted)
	require.Nil(t, s.Age)
	require.Empty(t, s.Err)

	_, again := s.Submit()
	require.False(t, again, "a second submit must not issue another request")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		age      *int
		wantAge  int
		sentence string
	}{
		{
			name:     "predicted age",
			age:      intPtr(34),
			wantAge:  34,
			sentence: "Hello, Anna! I predict your age is 34.",
		},
		{
			name:     "missing age",
			age:      nil,
			wantAge:  NotPredictable,
			sentence: "Hello, Anna! Sorry, I can't predict your age.",
		},
		{
			name:     "zero age treated as missing",
			age:      intPtr(0),
			wantAge:  NotPredictable,
			sentence: "Hello, Anna! Sorry, I can't predict your age.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loading(t, "Anna").Resolve(tt.age)
			require.Equal(t, StateSuccess, s.State())
			require.Empty(t, s.Err)
			require.NotNil(t, s.Age)
			require.Equal(t, tt.wantAge, *s.Age)
			require.Equal(t, tt.sentence, s.Sentence())
		})
	}
}

func TestFail(t *testing.T) {
	s := loading(t, "Anna").Fail(ErrorMessage)
	require.Equal(t, StateError, s.State())
	require.Equal(t, ErrorMessage, s.Err)
	require.Nil(t, s.Age)
	require.Empty(t, s.Sentence())
}

func TestErrorCheckedBeforeAge(t *testing.T) {
	s := Session{Name: "Anna", Age: intPtr(34), Submitted: true, Err: ErrorMessage}
	require.Equal(t, StateError, s.State())
}

func TestOutcomeOutsideLoadingIsDropped(t *testing.T) {
	form := New().Input("Anna")
	require.Equal(t, form, form.Resolve(intPtr(34)))
	require.Equal(t, form, form.Fail(ErrorMessage))

	done := loading(t, "Anna").Resolve(intPtr(34))
	require.Equal(t, done, done.Fail(ErrorMessage))
	require.Equal(t, done, done.Resolve(intPtr(50)))
}

func TestBackResets(t *testing.T) {
	states := map[string]Session{
		"loading": loading(t, "Anna"),
		"success": loading(t, "Anna").Resolve(intPtr(34)),
		"error":   loading(t, "Anna").Fail(ErrorMessage),
	}

	for name, s := range states {
		t.Run(name, func(t *testing.T) {
			got := s.Back()
			require.Equal(t, Session{Name: "", Age: nil, Submitted: false, Err: ""}, got)
			require.Equal(t, StateForm, got.State())
		})
	}
}

func TestDisplayName(t *testing.T) {
	long := strings.Repeat("a", 25)
	require.Equal(t, strings.Repeat("a", 20)+"..", DisplayName(long))
	require.Equal(t, strings.Repeat("a", 20), DisplayName(strings.Repeat("a", 20)))
	require.Equal(t, "Anna", DisplayName("Anna"))
	require.Equal(t, strings.Repeat("ö", 20)+"..", DisplayName(strings.Repeat("ö", 21)))
}

func TestSentenceTruncatesLongName(t *testing.T) {
	s := loading(t, strings.Repeat("a", 25)).Resolve(intPtr(40))
	require.Equal(t, "Hello, "+strings.Repeat("a", 20)+"..! I predict your age is 40.", s.Sentence())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "form", StateForm.String())
	require.Equal(t, "loading", StateLoading.String())
	require.Equal(t, "success", StateSuccess.String())
	require.Equal(t, "error", StateError.String())
	require.Equal(t, "state(9)", State(9).String())
}
