package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidViewport, "viewport %gx%g is not drawable", 0.0, 500.0)

	if err.Code != ErrCodeInvalidViewport {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidViewport)
	}
	if err.Message != "viewport 0x500 is not drawable" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeEmptyDataset, "no cells"),
			want: "EMPTY_DATASET: no cells",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeInvalidInput, stderrors.New("boom"), "load results.csv"),
			want: "INVALID_INPUT: load results.csv: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodeInternal, cause, "render failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeAllocationMismatch, "allocations sum to 80, have 79 seats")

	if !Is(err, ErrCodeAllocationMismatch) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeEmptyDataset) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() should not match a non-structured error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeEmptyDataset, "no cells")
	outer := fmt.Errorf("compute layout: %w", inner)

	if !Is(outer, ErrCodeEmptyDataset) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "no such dataset")); got != ErrCodeNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format: webp")
	if got := UserMessage(err); got != "unknown format: webp" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}
