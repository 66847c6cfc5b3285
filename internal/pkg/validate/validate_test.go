package validate

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type payload struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=10"`
}

func check(t *testing.T, p payload, want string) {
	t.Helper()
	err := validator.New().Struct(p)
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if got := FirstError(err); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFirstErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		p    payload
		want string
	}{
		{
			name: "missing required field",
			p:    payload{Email: "a@b.co", Message: "long enough msg"},
			want: "Name is required",
		},
		{
			name: "invalid email",
			p:    payload{Name: "x", Email: "not-an-email", Message: "long enough msg"},
			want: "Please enter a valid email address",
		},
		{
			name: "message too short",
			p:    payload{Name: "x", Email: "a@b.co", Message: "short"},
			want: "Message must be at least 10 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, tt.p, tt.want)
		})
	}
}

func TestFirstErrorReportsOnlyFirstFailure(t *testing.T) {
	// Both email and message fail; only the first (struct order) surfaces.
	check(t, payload{Name: "x", Email: "bad", Message: "short"},
		"Please enter a valid email address")
}

func TestFirstErrorPassesThroughNonValidatorErrors(t *testing.T) {
	err := errors.New("unexpected EOF")
	if got := FirstError(err); got != "unexpected EOF" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
