// Package pdfdoc is the input boundary: it opens a source questionnaire
// document and hands back its raw text and any populated interactive form
// fields. Failing to open the document is the one fatal error on the
// extraction side of the pipeline.
package pdfdoc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

var (
	// ErrNotFound indicates the source document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrUnreadable indicates the source document exists but could not be
	// opened or parsed.
	ErrUnreadable = errors.New("document unreadable")
)

// Content is everything read from one source document.
type Content struct {
	// Text is the concatenation of all page texts, pages joined by newlines.
	Text string

	// FormFields holds populated interactive form fields by raw field name.
	// Empty when the document carries no form layer.
	FormFields map[string]domain.FormField
}

// Reader opens a source document by path.
type Reader interface {
	Open(path string) (*Content, error)
}

// fitzReader reads PDFs through MuPDF.
type fitzReader struct{}

// NewReader returns the default PDF-backed Reader.
func NewReader() Reader {
	return fitzReader{}
}

func (fitzReader) Open(path string) (*Content, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			// A bad page degrades to missing text, it does not fail the
			// document.
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return &Content{
		Text:       sb.String(),
		FormFields: exportFormFields(path),
	}, nil
}
