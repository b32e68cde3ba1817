// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/tsubst/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "missing_variable_error",
			code:    errors.ErrVarMissing,
			message: "no value for token FOO",
			wantStr: "[VAR_MISSING] no value for token FOO",
		},
		{
			name:    "config_error",
			code:    errors.ErrConfigInvalid,
			message: "multiple input sources selected",
			wantStr: "[CONFIG_INVALID] multiple input sources selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("open /etc/vars: no such file or directory")
	err := errors.Wrap(inner, errors.ErrFileNotFound, "variable file missing")

	if !stderrors.Is(err, inner) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	want := "[FILE_NOT_FOUND] variable file missing: open /etc/vars: no such file or directory"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrFileNotFound, "nope") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsByCode(t *testing.T) {
	err := errors.Newf(errors.ErrVarCycle, "indirection chain for %s exceeded depth", "A")

	if !stderrors.Is(err, errors.New(errors.ErrVarCycle, "anything")) {
		t.Error("errors with the same code should satisfy errors.Is")
	}
	if stderrors.Is(err, errors.New(errors.ErrVarMissing, "anything")) {
		t.Error("errors with different codes should not satisfy errors.Is")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrVarMissing, "no value for token DB.HOST")
	wrapped := errors.Wrap(err, errors.ErrInternal, "run failed")

	if !errors.IsErrorCode(wrapped, errors.ErrInternal) {
		t.Error("IsErrorCode() should match the outermost code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrVarMissing) {
		t.Error("IsErrorCode() on a plain error should be false")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorCode(errors.New(errors.ErrFileWrite, "sink failed")); got != errors.ErrFileWrite {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrFileWrite)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrVarMissing, "no value").
		WithDetail("token", "FOO").
		WithDetail("file", "a.template")

	if err.Details["token"] != "FOO" || err.Details["file"] != "a.template" {
		t.Errorf("WithDetail() details = %v", err.Details)
	}
}
