package porename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardar/porename/pkg/pdfdoc"
)

// pageWriter writes page index of src to dst as a single-page PDF
type pageWriter func(src, dst string, index int) error

// SplitPages writes each page of src to its own file, named by nameFor(index),
// then removes src. It returns the written paths in page
// order.
//
// Pages are first written under a hidden temporary name and moved into place
// once complete. When a page fails, the pages already written are removed and
// src is left untouched. When only the final removal of src fails, the error
// is returned together with the written paths.
func SplitPages(src string, nameFor func(index int) string) ([]string, error) {
	if err := pdfdoc.Validate(src); err != nil {
		return nil, err
	}
	pageCount, err := pdfdoc.PageCount(src)
	if err != nil {
		return nil, err
	}
	return splitPages(src, pageCount, nameFor, pdfdoc.ExtractPage)
}

func splitPages(src string, pageCount int, nameFor func(index int) string, write pageWriter) ([]string, error) {
	dir := filepath.Dir(src)
	written := make([]string, 0, pageCount)

	rollback := func(cause error) ([]string, error) {
		var errs []error
		for _, path := range written {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return nil, fmt.Errorf("%w (rollback: %v)", cause, errors.Join(errs...))
		}
		return nil, cause
	}

	for i := 0; i < pageCount; i++ {
		final := filepath.Join(dir, nameFor(i))
		tmp := filepath.Join(dir, "."+filepath.Base(final)+".part")

		if err := write(src, tmp, i); err != nil {
			_ = os.Remove(tmp)
			return rollback(fmt.Errorf("%w: %w", ErrUnreadablePDF, err))
		}
		if err := renameNoClobber(tmp, final); err != nil {
			_ = os.Remove(tmp)
			return rollback(err)
		}
		written = append(written, final)
	}

	if err := os.Remove(src); err != nil {
		return written, fmt.Errorf("%w: remove %s after split: %v", ErrFilesystem, filepath.Base(src), err)
	}
	return written, nil
}
