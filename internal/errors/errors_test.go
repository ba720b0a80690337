package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
)

func TestViewpackError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ViewpackError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryValidation, SeverityFatal, "invalid asset path"),
			expected: "validation (fatal): invalid asset path",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("permission denied"), CategoryFileSystem, SeverityFatal, "asset write failed"),
			expected: "filesystem (fatal): asset write failed: permission denied",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestViewpackError_WithContext(t *testing.T) {
	err := New(CategoryArchive, SeverityFatal, "archive packaging failed").
		WithContext("archive", "views_package.zip").
		WithContext("entry", "views/layout.ejs")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["archive"] != "views_package.zip" {
		t.Errorf("Context[archive] = %v, want views_package.zip", err.Context["archive"])
	}

	if err.Context["entry"] != "views/layout.ejs" {
		t.Errorf("Context[entry] = %v, want views/layout.ejs", err.Context["entry"])
	}
}

func TestIsCategory(t *testing.T) {
	fsErr := New(CategoryFileSystem, SeverityFatal, "filesystem error")
	archiveErr := New(CategoryArchive, SeverityFatal, "archive error")
	standardErr := fmt.Errorf("standard error")
	wrapped := fmt.Errorf("materialize: %w", fsErr)

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"filesystem error matches filesystem category", fsErr, CategoryFileSystem, true},
		{"filesystem error doesn't match archive category", fsErr, CategoryArchive, false},
		{"archive error matches archive category", archiveErr, CategoryArchive, true},
		{"wrapped error keeps its category", wrapped, CategoryFileSystem, true},
		{"standard error doesn't match any category", standardErr, CategoryFileSystem, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory(plain) = %v, want %v", got, CategoryInternal)
	}
	if got := GetCategory(ArchiveFailed("a.zip", "", fmt.Errorf("boom"))); got != CategoryArchive {
		t.Errorf("GetCategory(archive) = %v, want %v", got, CategoryArchive)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("InvalidAssetPath", func(t *testing.T) {
		err := InvalidAssetPath("../escape", "path escapes output root")
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["path"] != "../escape" {
			t.Errorf("Context[path] = %v, want ../escape", err.Context["path"])
		}
	})

	t.Run("DirectoryCreateFailed", func(t *testing.T) {
		cause := fs.ErrExist
		err := DirectoryCreateFailed("views", cause)
		if err.Category != CategoryFileSystem {
			t.Errorf("Category = %v, want %v", err.Category, CategoryFileSystem)
		}
		if !stdErrors.Is(err, fs.ErrExist) {
			t.Error("DirectoryCreateFailed should unwrap to its cause")
		}
	})

	t.Run("ArchiveFailed without entry", func(t *testing.T) {
		err := ArchiveFailed("views_package.zip", "", fmt.Errorf("disk full"))
		if _, ok := err.Context["entry"]; ok {
			t.Error("entry context should be omitted when empty")
		}
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, 0},
		{"validation", InvalidAssetPath("", "empty"), 2},
		{"filesystem", AssetWriteFailed("views/index.ejs", fs.ErrPermission), 11},
		{"archive", ArchiveFailed("views_package.zip", "views/index.ejs", fs.ErrPermission), 11},
		{"internal", InternalError("unexpected", nil), 10},
		{"unclassified", fmt.Errorf("plain"), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(test.err); got != test.code {
				t.Errorf("ExitCodeFor() = %d, want %d", got, test.code)
			}
		})
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil))).WithOutput(&out)

	code := adapter.Report(DirectoryCreateFailed("views", fs.ErrExist))
	if code != 11 {
		t.Errorf("Report() = %d, want 11", code)
	}
	if !strings.Contains(out.String(), "filesystem: directory creation failed (directory: views)") {
		t.Errorf("unexpected diagnostic: %q", out.String())
	}
	for _, want := range []string{"level=ERROR", "category=filesystem", "severity=fatal", "directory=views"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected %q in structured log, got %q", want, logs.String())
		}
	}
}

func TestCLIErrorAdapter_VerboseFormat(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, nil)
	err := AssetWriteFailed("views/index.ejs", fmt.Errorf("disk full"))

	if got := adapter.FormatError(err); got != err.Error() {
		t.Errorf("FormatError() = %q, want %q", got, err.Error())
	}
	if got := adapter.FormatError(fmt.Errorf("plain")); got != "Error: plain" {
		t.Errorf("FormatError(plain) = %q", got)
	}
}
