package analysis

import (
	"errors"
	"fmt"
	"testing"
)

// blankError stringifies to nothing, forcing the generic fallback.
type blankError struct{}

func (blankError) Error() string { return "" }

func TestMessageForPrecedence(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "structured detail wins",
			err:  &APIError{Status: 404, Detail: "profile not found"},
			want: "profile not found",
		},
		{
			name: "wrapped detail still found",
			err:  fmt.Errorf("analyze: %w", &APIError{Status: 500, Detail: "internal analyzer error"}),
			want: "internal analyzer error",
		},
		{
			name: "raw error text when no detail",
			err:  errors.New("connection reset"),
			want: "connection reset",
		},
		{
			name: "api error without detail falls back to error text",
			err:  &APIError{Status: 502},
			want: "service returned status 502",
		},
		{
			name: "generic fallback when error text is blank",
			err:  blankError{},
			want: GenericFailureMessage,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MessageFor(c.err); got != c.want {
				t.Errorf("MessageFor() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestMessageForNil(t *testing.T) {
	if got := MessageFor(nil); got != "" {
		t.Errorf("MessageFor(nil) = %q, want empty", got)
	}
}

func TestErrUnavailableUnwrap(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	err := &ErrUnavailable{Err: inner}
	if !errors.Is(err, inner) {
		t.Error("ErrUnavailable should unwrap to its cause")
	}
}
