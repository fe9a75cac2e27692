package porename

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// fakeRasterizer writes "{pdf name}#{page index}" into the image file so
// fakeEngine can tell pages apart.
type fakeRasterizer struct {
	calls int
	err   error
}

func (f *fakeRasterizer) Rasterize(_ context.Context, pdfPath string, index int, dpi int, outDir string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if dpi != 500 {
		return "", fmt.Errorf("unexpected dpi %d", dpi)
	}
	image := filepath.Join(outDir, fmt.Sprintf("page-%d.png", index+1))
	key := fmt.Sprintf("%s#%d", filepath.Base(pdfPath), index)
	if err := os.WriteFile(image, []byte(key), 0o644); err != nil {
		return "", err
	}
	return image, nil
}

// fakeEngine returns the text registered for a page key, "" otherwise
type fakeEngine struct {
	texts map[string]string
	fail  map[string]bool
}

func (f *fakeEngine) Recognize(_ context.Context, imagePath string) (string, error) {
	key, err := os.ReadFile(imagePath)
	if err != nil {
		return "", err
	}
	if f.fail[string(key)] {
		return "", errors.New("tesseract crashed")
	}
	return f.texts[string(key)], nil
}

// recorder collects reported results
type recorder struct {
	results []Result
}

func (r *recorder) Report(res Result) {
	r.results = append(r.results, res)
}

func (r *recorder) stage(stage Stage) []Result {
	var out []Result
	for _, res := range r.results {
		if res.Stage == stage {
			out = append(out, res)
		}
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPipeline(t *testing.T, dir string, engine *fakeEngine, rep Reporter) *Pipeline {
	t.Helper()
	if engine == nil {
		engine = &fakeEngine{}
	}
	p, err := New(Config{
		Dir:        dir,
		Pattern:    DefaultPattern,
		Rasterizer: &fakeRasterizer{},
		Engine:     engine,
		TempDir:    t.TempDir(),
		Reporter:   rep,
		Logger:     discardLogger(),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return p
}

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// dirNames lists the file names of dir, sorted
func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
