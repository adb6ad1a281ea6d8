package rainbowgif

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorClasses(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name    string
		err     error
		is      error
		isNot   []error
		message string
	}{
		{
			name:    "invalid input",
			err:     &InvalidInputError{Field: "text", Reason: "must not be empty"},
			is:      ErrInvalidInput,
			isNot:   []error{ErrResource, ErrIO},
			message: "rainbowgif: invalid text: must not be empty",
		},
		{
			name:    "invalid input with cause",
			err:     &InvalidInputError{Field: "text", Reason: "bad", Err: cause},
			is:      cause,
			message: "rainbowgif: invalid text: bad: cause",
		},
		{
			name:    "bundled font",
			err:     &ResourceError{Err: cause},
			is:      ErrResource,
			isNot:   []error{ErrInvalidInput, ErrIO},
			message: "rainbowgif: font bundled font: cause",
		},
		{
			name:    "font file",
			err:     &ResourceError{Path: "/x.ttf", Err: fs.ErrNotExist},
			is:      fs.ErrNotExist,
			message: "rainbowgif: font /x.ttf: file does not exist",
		},
		{
			name:    "io",
			err:     &IOError{Op: "rename", Path: "out.gif", Err: cause},
			is:      ErrIO,
			isNot:   []error{ErrInvalidInput, ErrResource},
			message: "rainbowgif: rename out.gif: cause",
		},
		{
			name:    "io without path",
			err:     &IOError{Op: "encode", Err: cause},
			is:      cause,
			message: "rainbowgif: encode: cause",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.is)
			}
			for _, other := range tt.isNot {
				if errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true", tt.err, other)
				}
			}
			if got := tt.err.Error(); got != tt.message {
				t.Errorf("Error() = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = &InvalidInputError{Field: "band width", Reason: "must be positive"}
	wrapped := errors.Join(errors.New("context"), err)

	var target *InvalidInputError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As failed")
	}
	if !strings.Contains(target.Field, "band") {
		t.Errorf("Field = %q", target.Field)
	}
}
