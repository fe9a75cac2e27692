package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gardar/porename/pkg/hocr"
)

// Tesseract recognizes text with the tesseract binary. Output is requested as
// hOCR and flattened to plain text, which keeps line structure intact.
type Tesseract struct {
	Command  string // Binary name or path, "tesseract" when empty
	Language string // Language model, Language when empty
}

// Recognize implements Engine
func (t Tesseract) Recognize(ctx context.Context, imagePath string) (string, error) {
	command := t.Command
	if command == "" {
		command = "tesseract"
	}
	lang := t.Language
	if lang == "" {
		lang = Language
	}

	cmd := exec.CommandContext(ctx, command, imagePath, "stdout", "-l", lang, "hocr")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: tesseract %s: %v: %s", ErrToolFailed, imagePath, err, strings.TrimSpace(stderr.String()))
	}

	doc, err := hocr.Parse(stdout.Bytes())
	if err != nil {
		return "", fmt.Errorf("%w: tesseract output for %s: %v", ErrToolFailed, imagePath, err)
	}
	return doc.Text(), nil
}
