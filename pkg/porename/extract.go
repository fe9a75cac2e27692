package porename

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/gardar/porename/pkg/ocr"
	"github.com/gardar/porename/pkg/pdfdoc"
)

// Extractor finds identifiers in a PDF, reading the text layer of native
// documents and running OCR on every page of scanned ones.
type Extractor struct {
	Pattern    *regexp.Regexp
	Rasterizer ocr.Rasterizer
	Engine     ocr.Engine
	DPI        int
	TempDir    string // Parent of the per-file image directory, os.TempDir() when empty
	Logger     *slog.Logger
}

// Extract returns the identifiers found in the PDF at path
func (e *Extractor) Extract(ctx context.Context, path string, class Classification) (IdentifierSet, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	switch class {
	case Native:
		return e.extractNative(doc)
	case Scanned:
		return e.extractScanned(ctx, doc)
	default:
		return nil, fmt.Errorf("unknown classification %v", class)
	}
}

func (e *Extractor) extractNative(doc *pdfdoc.Document) (IdentifierSet, error) {
	text, err := doc.Text()
	if err != nil {
		return nil, err
	}
	return FindIdentifiers(e.Pattern, text), nil
}

// extractScanned OCRs every page and matches across all of them. Page texts
// are joined with a newline so a match never spans two pages.
func (e *Extractor) extractScanned(ctx context.Context, doc *pdfdoc.Document) (IdentifierSet, error) {
	if e.Rasterizer == nil || e.Engine == nil {
		return nil, fmt.Errorf("%w: no OCR engine configured", ErrOCR)
	}

	imageDir, err := os.MkdirTemp(e.TempDir, "porename-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create image directory: %v", ErrFilesystem, err)
	}
	defer os.RemoveAll(imageDir)

	dpi := e.DPI
	if dpi <= 0 {
		dpi = ocr.DPI
	}

	texts := make([]string, 0, doc.NumPages())
	for i := 0; i < doc.NumPages(); i++ {
		image, err := e.Rasterizer.Rasterize(ctx, doc.Path(), i, dpi, imageDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOCR, err)
		}
		text, err := e.Engine.Recognize(ctx, image)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOCR, err)
		}
		e.logger().Debug("page recognized", "file", doc.Path(), "page", i+1, "chars", len(text))
		texts = append(texts, text)
	}
	return FindIdentifiers(e.Pattern, strings.Join(texts, "\n")), nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
