package toc

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestExtractBytesInvalidPDF(t *testing.T) {
	cases := map[string][]byte{
		"empty":     nil,
		"garbage":   []byte("this is not a pdf"),
		"truncated": []byte("%PDF-1.4\n1 0 obj"),
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			entries, err := ExtractBytes(content)
			if entries != nil {
				t.Errorf("Expected no entries, got %d", len(entries))
			}
			if !errors.Is(err, ErrExtraction) {
				t.Errorf("Expected ErrExtraction, got %v", err)
			}
		})
	}
}

func TestExtractFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	entries, err := ExtractFile(path)
	if entries != nil {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
	if !errors.Is(err, ErrExtraction) {
		t.Errorf("Expected ErrExtraction, got %v", err)
	}
}
