// Package ocr turns PDF pages into text for documents without a text layer.
//
// A page goes through two steps: a Rasterizer renders it to a PNG image and an
// Engine recognizes the text in that image. Two engines are provided:
//
// - Tesseract: runs the tesseract binary with hOCR output and parses it
// - DocumentAI: sends the image to a Google Document AI OCR processor
//
// The rasterizer shells out to poppler's pdftoppm.
package ocr

import (
	"context"
	"errors"
)

const (
	// DPI is the resolution pages are rendered at before recognition
	DPI = 500
	// Language is the tesseract language model used for every page
	Language = "eng"
)

// ErrToolFailed wraps every failure of an external OCR collaborator
var ErrToolFailed = errors.New("ocr tool failed")

// Rasterizer renders one page of a PDF to an image file.
type Rasterizer interface {
	// Rasterize renders the page at the zero-based index to a PNG inside
	// outDir and returns the image path.
	Rasterize(ctx context.Context, pdfPath string, index int, dpi int, outDir string) (string, error)
}

// Engine recognizes the text in an image file.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}
