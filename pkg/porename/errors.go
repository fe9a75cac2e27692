package porename

import (
	"errors"

	"github.com/gardar/porename/pkg/pdfdoc"
)

var (
	// ErrUnreadablePDF marks a file the PDF reader could not parse
	ErrUnreadablePDF = pdfdoc.ErrUnreadable
	// ErrFilesystem marks a failed stat, rename, remove or write
	ErrFilesystem = errors.New("filesystem error")
	// ErrOCR marks a rasterization or recognition failure
	ErrOCR = errors.New("ocr failed")
)
