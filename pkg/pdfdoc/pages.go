package pdfdoc

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating its config directory under the user's home.
	api.DisableConfigDir()
}

func newConfiguration() *model.Configuration {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return cfg
}

// PageCount returns the number of pages of the PDF at path as seen by pdfcpu
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return n, nil
}

// Validate checks the PDF at path with pdfcpu in relaxed mode
func Validate(path string) error {
	if err := api.ValidateFile(path, newConfiguration()); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return nil
}

// ExtractPage writes the page at the zero-based index of src to dst as a
// single-page PDF. dst is created or truncated.
func ExtractPage(src, dst string, index int) error {
	if index < 0 {
		return fmt.Errorf("invalid page index %d", index)
	}
	selected := []string{strconv.Itoa(index + 1)}
	if err := api.TrimFile(src, dst, selected, newConfiguration()); err != nil {
		return fmt.Errorf("failed to extract page %d of %s: %w", index+1, src, err)
	}
	return nil
}
