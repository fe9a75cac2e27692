package porename

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/gardar/porename/pkg/pdfdoc/pdfdoctest"
)

func newTestExtractor(t *testing.T, r *fakeRasterizer, e *fakeEngine) *Extractor {
	return &Extractor{
		Pattern:    regexp.MustCompile(DefaultPattern),
		Rasterizer: r,
		Engine:     e,
		DPI:        500,
		TempDir:    t.TempDir(),
		Logger:     discardLogger(),
	}
}

func TestExtractNativeReadsAllPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.pdf")
	pdfdoctest.WriteNative(t, path, "Order 5501111111", "Annex: ref 4502222222 and 5501111111")

	r := &fakeRasterizer{}
	ids, err := newTestExtractor(t, r, &fakeEngine{}).Extract(context.Background(), path, Native)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if !equalStrings(ids, []string{"4502222222", "5501111111"}) {
		t.Errorf("ids = %v", ids)
	}
	if r.calls != 0 {
		t.Errorf("native extraction rasterized %d pages", r.calls)
	}
}

func TestExtractNativeWithoutMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.pdf")
	pdfdoctest.WriteNative(t, path, "Dear customer")

	ids, err := newTestExtractor(t, &fakeRasterizer{}, &fakeEngine{}).Extract(context.Background(), path, Native)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if !ids.Empty() {
		t.Errorf("ids = %v, want empty", ids)
	}
}

func TestExtractScannedAggregatesPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	pdfdoctest.WriteScanned(t, path, 3)

	engine := &fakeEngine{texts: map[string]string{
		"scan.pdf#0": "PO 4501234567",
		"scan.pdf#1": "nothing on this page",
		"scan.pdf#2": "see also 5507654321",
	}}
	r := &fakeRasterizer{}
	ids, err := newTestExtractor(t, r, engine).Extract(context.Background(), path, Scanned)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if !equalStrings(ids, []string{"4501234567", "5507654321"}) {
		t.Errorf("ids = %v", ids)
	}
	if r.calls != 3 {
		t.Errorf("rasterized %d pages, want 3", r.calls)
	}
}

func TestExtractScannedDoesNotMatchAcrossPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	pdfdoctest.WriteScanned(t, path, 2)

	engine := &fakeEngine{texts: map[string]string{
		"scan.pdf#0": "ref 45012",
		"scan.pdf#1": "34567",
	}}
	ids, err := newTestExtractor(t, &fakeRasterizer{}, engine).Extract(context.Background(), path, Scanned)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if !ids.Empty() {
		t.Errorf("ids = %v, want none", ids)
	}
}

func TestExtractScannedOCRFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	pdfdoctest.WriteScanned(t, path, 2)

	engine := &fakeEngine{fail: map[string]bool{"scan.pdf#1": true}}
	_, err := newTestExtractor(t, &fakeRasterizer{}, engine).Extract(context.Background(), path, Scanned)
	if !errors.Is(err, ErrOCR) {
		t.Fatalf("expected ErrOCR, got %v", err)
	}
}

func TestExtractScannedRasterizerFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	pdfdoctest.WriteScanned(t, path, 1)

	r := &fakeRasterizer{err: errors.New("pdftoppm missing")}
	_, err := newTestExtractor(t, r, &fakeEngine{}).Extract(context.Background(), path, Scanned)
	if !errors.Is(err, ErrOCR) {
		t.Fatalf("expected ErrOCR, got %v", err)
	}
}

func TestExtractScannedWithoutEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	pdfdoctest.WriteScanned(t, path, 1)

	e := &Extractor{Pattern: regexp.MustCompile(DefaultPattern)}
	if _, err := e.Extract(context.Background(), path, Scanned); !errors.Is(err, ErrOCR) {
		t.Fatalf("expected ErrOCR, got %v", err)
	}
}
