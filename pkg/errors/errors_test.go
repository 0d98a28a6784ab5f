package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "without cause",
			err:      New(KindAuth, "credentials rejected"),
			contains: []string{"AUTH", "credentials rejected"},
		},
		{
			name:     "with cause",
			err:      Wrap(KindNetwork, stderrors.New("connection refused"), "request failed"),
			contains: []string{"NETWORK", "request failed", "connection refused"},
		},
		{
			name:     "with http status",
			err:      WrapHTTP(KindServer, 502, "server error %d", 502),
			contains: []string{"SERVER", "502"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("error message %q should contain %q", msg, want)
				}
			}
		})
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := stderrors.New("dial tcp: connection reset")
	err := Wrap(KindNetwork, cause, "request failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := New(KindClientValidation, "bad city code")

	if !Is(err, KindClientValidation) {
		t.Error("Is should match the error's kind")
	}
	if Is(err, KindAuth) {
		t.Error("Is should not match a different kind")
	}
	if Is(stderrors.New("plain"), KindAuth) {
		t.Error("Is should not match plain errors")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(New(KindDecode, "bad body")); got != KindDecode {
		t.Errorf("KindOf = %q, want %q", got, KindDecode)
	}
	if got := KindOf(stderrors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindNetwork, true},
		{KindServer, true},
		{KindAuth, false},
		{KindClientValidation, false},
		{KindDecode, false},
		{KindInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := New(tt.kind, "x").Retryable(); got != tt.want {
				t.Errorf("Retryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	err := New(KindAuth, "credentials rejected")
	if got := UserMessage(err); got != "credentials rejected" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := WrapHTTP(KindAuth, 401, "authentication rejected")
	outer := Wrap(KindNetwork, inner, "outer context")

	// KindOf finds the outermost classified error.
	if got := KindOf(outer); got != KindNetwork {
		t.Errorf("KindOf(outer) = %q, want %q", got, KindNetwork)
	}
	// The inner classification is still reachable.
	var e *Error
	if !stderrors.As(outer.Unwrap(), &e) || e.Kind != KindAuth {
		t.Error("inner AUTH classification should be reachable through Unwrap")
	}
}
