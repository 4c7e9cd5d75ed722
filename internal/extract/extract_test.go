package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestTextTxtPassthroughNormalizes(t *testing.T) {
	got, err := Text([]byte("Jane Doe\nSoftware Engineer|Acme"), "resume.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "Engineer | Acme") {
		t.Fatalf("expected normalized pipe padding, got %q", got)
	}
}

func TestTextCorruptPDFReturnsExtractionError(t *testing.T) {
	_, err := Text([]byte("definitely not a pdf"), "resume.pdf")
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestTextUnsupportedExtension(t *testing.T) {
	_, err := Text([]byte("data"), "resume.docx")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for unsupported type, got %v", err)
	}
}

func TestTextEmptyDocument(t *testing.T) {
	_, err := Text(nil, "resume.pdf")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for empty document, got %v", err)
	}
}
