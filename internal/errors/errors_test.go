package errors

import (
	e "errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := e.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = asNotFound(err)
	if !IsNotFound(err) {
		t.Log("custom error type NotFound is not recognized")
		t.Fail()
	}

	err = Wrap(err, "session %q", "abc")
	if !IsNotFound(err) {
		t.Log("wrapped NotFound is not recognized")
		t.Fail()
	}
}

func TestIsValidationError(t *testing.T) {
	err := e.New("some error")
	if IsValidationError(err) {
		t.Errorf("plain error recognized as validation error")
	}

	err = NewValidationError("expected %d points, got %d", 2, 1)
	if !IsValidationError(err) {
		t.Errorf("validation error not recognized")
	}
	if err.Error() != "expected 2 points, got 1" {
		t.Errorf("unexpected message %q", err.Error())
	}

	err = Wrap(err, "event %d", 3)
	if !IsValidationError(err) {
		t.Errorf("wrapped validation error not recognized")
	}
	if err.Error() != "event 3: expected 2 points, got 1" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
