package porename

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/gardar/porename/pkg/ocr"
)

// Config holds the options of a Pipeline
type Config struct {
	Dir        string         // Working directory, the only directory touched
	Pattern    string         // Identifier regular expression
	Rasterizer ocr.Rasterizer // Renders scanned pages
	Engine     ocr.Engine     // Recognizes rendered pages
	TempDir    string         // Parent of temporary image directories
	Reporter   Reporter       // Per-file results, may be nil
	Logger     *slog.Logger   // nil = slog.Default()
}

// DefaultConfig returns a config using pdftoppm and tesseract on PATH and the
// default identifier pattern. Dir must still be set.
func DefaultConfig() Config {
	return Config{
		Pattern:    DefaultPattern,
		Rasterizer: ocr.Pdftoppm{},
		Engine:     ocr.Tesseract{Language: ocr.Language},
	}
}

// Pipeline runs the two renaming passes over one directory
type Pipeline struct {
	dir       string
	extractor *Extractor
	reporter  Reporter
	logger    *slog.Logger
}

// New validates cfg and builds a Pipeline
func New(cfg Config) (*Pipeline, error) {
	if cfg.Dir == "" {
		return nil, errors.New("working directory is required")
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	pattern, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid identifier pattern %q: %w", cfg.Pattern, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = ReporterFunc(func(Result) {})
	}

	return &Pipeline{
		dir: cfg.Dir,
		extractor: &Extractor{
			Pattern:    pattern,
			Rasterizer: cfg.Rasterizer,
			Engine:     cfg.Engine,
			DPI:        ocr.DPI,
			TempDir:    cfg.TempDir,
			Logger:     logger,
		},
		reporter: reporter,
		logger:   logger,
	}, nil
}
