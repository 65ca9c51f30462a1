package booktag

import (
	"strings"
	"testing"
)

func TestUnsupportedFormatError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnsupportedFormatError
		contains []string
	}{
		{
			name: "undetectable file",
			err: &UnsupportedFormatError{
				Path:   "test.xyz",
				Reason: "unsupported file format",
			},
			contains: []string{"test.xyz", "unsupported format", "unsupported file format"},
		},
		{
			name: "format without a dialect",
			err: &UnsupportedFormatError{
				Format: FormatWAV,
				Reason: "no tag dialect registered",
			},
			contains: []string{"WAV", "unsupported format", "no tag dialect registered"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestTagValueError_Error(t *testing.T) {
	err := &TagValueError{
		Key:    "tracknumber",
		Reason: "expected string, got []uint8",
	}

	msg := err.Error()
	if !strings.Contains(msg, `"tracknumber"`) {
		t.Errorf("error should contain the key, got: %s", msg)
	}
	if !strings.Contains(msg, "expected string, got []uint8") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
}

func TestNotAnImageError_Error(t *testing.T) {
	err := &NotAnImageError{
		Reason: "image: unknown format",
	}

	msg := err.Error()
	if !strings.Contains(msg, "not an image") {
		t.Errorf("error should contain 'not an image', got: %s", msg)
	}
	if !strings.Contains(msg, "image: unknown format") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{
		Stage:   "properties",
		Message: "no STREAMINFO block",
	}

	got := w.String()
	if got != "properties: no STREAMINFO block" {
		t.Errorf("String() = %q", got)
	}
}
