package helpgen

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeTransport, "service unreachable")
	if err.Code != CodeTransport {
		t.Errorf("expected code %s, got %s", CodeTransport, err.Code)
	}
	if err.Error() != "transport: service unreachable" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeOutput, "write %s", "types.ts")
	if err.Message != "write types.ts" {
		t.Errorf("expected formatted message, got %s", err.Message)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("run: %w", wrap(CodeTransport, cause, "fetch catalog"))

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause")
	}
	if got := CodeOf(err); got != CodeTransport {
		t.Errorf("CodeOf() = %s, want %s", got, CodeTransport)
	}
	if !strings.Contains(err.Error(), "transport: fetch catalog: connection refused") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "plain error", err: errors.New("boom"), want: CodeInternal},
		{name: "direct", err: NewError(CodeStrictValidation, "x"), want: CodeStrictValidation},
		{name: "wrapped", err: fmt.Errorf("outer: %w", NewError(CodeOutput, "x")), want: CodeOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	seen := map[int]ErrorCode{}
	for _, code := range []ErrorCode{CodeInvalidConfig, CodeTransport, CodeInvalidCatalog, CodeStrictValidation, CodeOutput} {
		exit := code.ExitCode()
		if exit <= 1 {
			t.Errorf("%s.ExitCode() = %d, want > 1", code, exit)
		}
		if prev, dup := seen[exit]; dup {
			t.Errorf("%s and %s share exit code %d", prev, code, exit)
		}
		seen[exit] = code
	}
	if got := CodeInternal.ExitCode(); got != 1 {
		t.Errorf("CodeInternal.ExitCode() = %d, want 1", got)
	}
}

func TestValidationError(t *testing.T) {
	type settings struct {
		BaseURL     string `validate:"required,url"`
		Concurrency int    `validate:"min=1,max=64"`
	}

	err := validator.New().Struct(settings{Concurrency: 100})
	if err == nil {
		t.Fatal("expected validation error")
	}

	verr := ValidationError(err)
	if verr.Code != CodeInvalidConfig {
		t.Errorf("expected code %s, got %s", CodeInvalidConfig, verr.Code)
	}
	want := "BaseURL: required; Concurrency: must be at most 64"
	if verr.Message != want {
		t.Errorf("Message = %q, want %q", verr.Message, want)
	}

	other := ValidationError(errors.New("bad"))
	if other.Code != CodeInvalidConfig || !errors.Is(other, other.Err) {
		t.Errorf("unexpected wrap of plain error: %v", other)
	}
}
