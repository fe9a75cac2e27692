// Package pdfdoctest builds small PDF fixtures for tests: documents with a
// real text layer and image-only documents that look like scanner output.
package pdfdoctest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/go-pdf/fpdf"
)

// WriteNative writes a PDF with one page per entry in pages, each page
// carrying its entry as text. An empty entry produces a blank page.
func WriteNative(t testing.TB, path string, pages ...string) {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		pdf.AddPage()
		if text != "" {
			pdf.Text(72, 72, text)
		}
	}
	write(t, pdf, path)
}

// WriteScanned writes an image-only PDF with the given number of pages.
// Each page holds a distinct grey level so split outputs can be told apart.
func WriteScanned(t testing.TB, path string, pageCount int) {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	for i := 0; i < pageCount; i++ {
		pdf.AddPage()
		name := fmt.Sprintf("scan%d", i)
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(greyPNG(t, uint8(40+i*20))))
		pdf.ImageOptions(name, 0, 0, 595, 842, false, opts, 0, "")
	}
	write(t, pdf, path)
}

// WriteMixed writes a PDF whose first page is an image and whose following
// pages carry text.
func WriteMixed(t testing.TB, path string, pages ...string) {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("cover", opts, bytes.NewReader(greyPNG(t, 128)))
	pdf.ImageOptions("cover", 0, 0, 595, 842, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		pdf.AddPage()
		pdf.Text(72, 72, text)
	}
	write(t, pdf, path)
}

// SetModTime sets both access and modification time of path
func SetModTime(t testing.TB, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func write(t testing.TB, pdf *fpdf.Fpdf, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write pdf %s: %v", path, err)
	}
}

func greyPNG(t testing.TB, level uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 90))
	for y := 0; y < 90; y++ {
		for x := 0; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
