package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrWithDesc(t *testing.T) {
	err := fmt.Errorf("send: %w", ErrWithDesc{Err: BadResponse, Desc: "unexpected EOF"})

	if !errors.Is(err, BadResponse) {
		t.Errorf("errors.Is(%v, BadResponse) = false, want true", err)
	}

	if errors.Is(err, FailResponse) {
		t.Errorf("errors.Is(%v, FailResponse) = true, want false", err)
	}

	want := "send: bad_response, desc:unexpected EOF"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
