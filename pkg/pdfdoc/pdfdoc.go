// Package pdfdoc wraps the two PDF libraries porename relies on: ledongthuc/pdf
// for reading the text layer of a document and pdfcpu for writing pages out
// as standalone files.
//
// Main Functions:
//
// - Open: Opens a PDF for text extraction
// - ExtractPage: Writes a single page of a PDF to a new file
// - PageCount: Counts pages with pdfcpu, independently of the text reader
package pdfdoc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable is returned (wrapped) whenever a file cannot be parsed as a PDF
var ErrUnreadable = errors.New("unreadable pdf")

// Document is an open PDF file
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path. The caller must Close the returned Document.
func Open(path string) (doc *Document, err error) {
	// The reader panics on some malformed inputs instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %s: %v", ErrUnreadable, path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return &Document{path: path, file: f, reader: r}, nil
}

// Close releases the underlying file
func (d *Document) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	return d.file.Close()
}

// Path returns the path the document was opened from
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the number of pages in the document
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageText returns the extractable text of the page at the zero-based index.
// Pages without a text layer return the empty string.
func (d *Document) PageText(index int) (text string, err error) {
	if index < 0 || index >= d.NumPages() {
		return "", fmt.Errorf("%w: %s: page index %d out of range (%d pages)", ErrUnreadable, d.path, index, d.NumPages())
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %s: page %d: %v", ErrUnreadable, d.path, index+1, r)
		}
	}()

	page := d.reader.Page(index + 1)
	if page.V.IsNull() {
		return "", nil
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: page %d: %v", ErrUnreadable, d.path, index+1, err)
	}
	return text, nil
}

// Text returns the text of every page concatenated in page order
func (d *Document) Text() (string, error) {
	var builder strings.Builder
	for i := 0; i < d.NumPages(); i++ {
		text, err := d.PageText(i)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}
