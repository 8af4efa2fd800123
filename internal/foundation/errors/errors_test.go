package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", ".doclinkcheck.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		if file := err.Context()["file"]; file != ".doclinkcheck.yaml" {
			t.Errorf("expected context file=.doclinkcheck.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := FileSystemError("docs root missing").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryFileSystem) {
			t.Error("expected error to have filesystem category")
		}
		if !err.IsFatal() {
			t.Error("expected filesystem error to be fatal")
		}
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		inner := ConfigError("bad format").Build()
		wrapped := fmt.Errorf("loading: %w", inner)

		if !IsClassified(wrapped) {
			t.Error("expected wrapped error to be classified")
		}
		if !HasCategory(wrapped, CategoryConfig) {
			t.Error("expected wrapped error to keep config category")
		}
		if IsClassified(errors.New("plain")) {
			t.Error("expected plain errors to be unclassified")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Wrap keeps cause", func(t *testing.T) {
		originalErr := errors.New("permission denied")
		err := WrapError(originalErr, CategoryFileSystem, "cannot read document").
			WithSeverity(SeverityWarning).
			WithContext("document", "/docs/a.md").
			Build()

		if !errors.Is(err, originalErr) {
			t.Error("expected errors.Is to find the cause")
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected warning severity, got %s", err.Severity())
		}
		if err.Error() != "[filesystem:warning] cannot read document: permission denied" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("Report error wraps cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := ReportError("failed to write report").WithCause(cause).Build()

		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to find the cause")
		}
		if !HasCategory(err, CategoryReport) || !err.IsFatal() {
			t.Errorf("expected fatal report error, got %s", err.Error())
		}
	})

	t.Run("Is compares category and message", func(t *testing.T) {
		a := NotFoundError("docs root not found").WithContext("root", "/a").Build()
		b := NotFoundError("docs root not found").WithContext("root", "/b").Build()
		c := ConfigError("docs root not found").Build()

		if !errors.Is(a, b) {
			t.Error("expected same category and message to match")
		}
		if errors.Is(a, c) {
			t.Error("expected different category not to match")
		}
	})
}
