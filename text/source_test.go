package text

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadGoRegular returns a FontSource for the bundled Go Regular font.
func loadGoRegular(t testing.TB) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(goregular) error = %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source
}

func TestNewFontSource(t *testing.T) {
	source := loadGoRegular(t)

	if got := source.Name(); got == "" || got == "Unknown Font" {
		t.Errorf("Name() = %q, want the family name", got)
	}
	if source.Parsed() == nil {
		t.Fatal("Parsed() returned nil")
	}
	if source.Parsed().NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0, want > 0")
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	for i := range data {
		data[i] = 0
	}
	if !bytes.Equal(source.Data(), goregular.TTF) {
		t.Error("FontSource shares the caller's slice")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "nil", data: nil, want: ErrEmptyFontData},
		{name: "empty", data: []byte{}, want: ErrEmptyFontData},
		{name: "garbage", data: []byte("definitely not a font"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFontSource(tt.data)
			if err == nil {
				t.Fatal("NewFontSource() error = nil, want error")
			}
			var fe *FontError
			if !errors.As(err, &fe) {
				t.Errorf("error %T is not *FontError", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() error = %v", err)
	}
	_ = source.Close()

	_, err = NewFontSourceFromFile(filepath.Join(dir, "missing.ttf"))
	var fe *FontError
	if !errors.As(err, &fe) {
		t.Fatalf("missing file error = %v, want *FontError", err)
	}
	if fe.Path == "" {
		t.Error("FontError.Path is empty")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error does not wrap os.ErrNotExist: %v", err)
	}
}

func TestFontSourceFromFileBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("xxxx"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFontSourceFromFile(path)
	var fe *FontError
	if !errors.As(err, &fe) || fe.Path != path {
		t.Errorf("error = %v, want *FontError with Path %q", err, path)
	}
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if source.Parsed() != nil {
		t.Error("Parsed() after Close should be nil")
	}
	if source.Data() != nil {
		t.Error("Data() after Close should be nil")
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	source := loadGoRegular(t)

	defer func() {
		if recover() == nil {
			t.Error("using a copied FontSource did not panic")
		}
	}()

	copied := *source //nolint:govet // copying on purpose
	_ = copied.Name()
}
