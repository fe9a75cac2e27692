package porename

import (
	"fmt"

	"github.com/gardar/porename/pkg/pdfdoc"
)

// Classification tells whether a PDF carries a text layer
type Classification int

const (
	// Native documents have extractable text
	Native Classification = iota
	// Scanned documents are images and need OCR
	Scanned
)

func (c Classification) String() string {
	switch c {
	case Native:
		return "native"
	case Scanned:
		return "scanned"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Classify opens the PDF at path and classifies it from its first page.
//
// Only the first page is read: a document whose first page is an image but
// whose later pages carry text is reported as Scanned. This is a known
// approximation of the heuristic and is kept as is.
func Classify(path string) (Classification, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return Scanned, err
	}
	defer doc.Close()
	return classifyDocument(doc)
}

func classifyDocument(doc *pdfdoc.Document) (Classification, error) {
	if doc.NumPages() == 0 {
		return Scanned, fmt.Errorf("%w: %s has no pages", ErrUnreadablePDF, doc.Path())
	}
	text, err := doc.PageText(0)
	if err != nil {
		return Scanned, err
	}
	if text == "" {
		return Scanned, nil
	}
	return Native, nil
}
