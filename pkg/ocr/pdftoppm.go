package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Pdftoppm rasterizes pages with poppler's pdftoppm
type Pdftoppm struct {
	Command string // Binary name or path, "pdftoppm" when empty
}

// Rasterize implements Rasterizer
func (p Pdftoppm) Rasterize(ctx context.Context, pdfPath string, index int, dpi int, outDir string) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("%w: invalid page index %d", ErrToolFailed, index)
	}
	command := p.Command
	if command == "" {
		command = "pdftoppm"
	}

	pageNum := strconv.Itoa(index + 1)
	prefix := filepath.Join(outDir, "page-"+pageNum)
	cmd := exec.CommandContext(ctx, command,
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", pageNum,
		"-l", pageNum,
		"-singlefile",
		pdfPath,
		prefix,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: pdftoppm page %s of %s: %v: %s", ErrToolFailed, pageNum, pdfPath, err, strings.TrimSpace(stderr.String()))
	}

	imagePath := prefix + ".png"
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("%w: pdftoppm produced no image for page %s of %s", ErrToolFailed, pageNum, pdfPath)
	}
	return imagePath, nil
}
