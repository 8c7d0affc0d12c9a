package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOfClassifiesWrappedErrors(t *testing.T) {
	base := NotFound("interview %d not found", 7)
	wrapped := fmt.Errorf("loading detail: %w", base)

	if got := KindOf(wrapped); got != KindNotFound {
		t.Errorf("KindOf(wrapped) = %v, want %v", got, KindNotFound)
	}
	if got := KindOf(errors.New("plain")); got != KindPersistence {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindPersistence)
	}
}

func TestIsKind(t *testing.T) {
	err := InvalidState("interview %d already submitted", 3)
	if !IsKind(err, KindInvalidState) {
		t.Errorf("expected IsKind to match the error's kind")
	}
	if IsKind(err, KindValidation) {
		t.Errorf("expected IsKind to reject a different kind")
	}
	if IsKind(nil, KindValidation) {
		t.Errorf("expected IsKind(nil) to be false")
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("failed to load interview", cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to reach the cause")
	}
	if err.Error() == "" || err.Kind.String() != "persistence" {
		t.Errorf("unexpected error rendering: %q (%s)", err.Error(), err.Kind)
	}
}
