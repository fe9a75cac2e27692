package porename

import (
	"fmt"
	"path/filepath"

	"github.com/gardar/porename/pkg/pdfdoc"
)

// Normalize runs the first pass on one file and returns the paths it became:
//
//	native            {date}_{stem}{ext}
//	scanned, 1 page   {date}_{stem}_{ext}
//	scanned, N pages  {date}_{stem}_{page}{ext}, page = 1..N, source removed
//
// The trailing underscore of single-page scans matches the output of the
// tool this replaces, and is what the second pass expects.
func (p *Pipeline) Normalize(path string) ([]string, Classification, error) {
	src, err := statSource(path)
	if err != nil {
		return nil, Scanned, err
	}
	date := src.DateTag()

	class, pages, err := inspect(path)
	if err != nil {
		return nil, class, err
	}

	switch {
	case class == Native:
		dst := filepath.Join(src.Dir, fmt.Sprintf("%s_%s%s", date, src.Stem, src.Ext))
		if err := renameNoClobber(path, dst); err != nil {
			return nil, class, err
		}
		return []string{dst}, class, nil

	case pages == 1:
		dst := filepath.Join(src.Dir, fmt.Sprintf("%s_%s_%s", date, src.Stem, src.Ext))
		if err := renameNoClobber(path, dst); err != nil {
			return nil, class, err
		}
		return []string{dst}, class, nil

	default:
		outputs, err := SplitPages(path, func(i int) string {
			return fmt.Sprintf("%s_%s_%d%s", date, src.Stem, i+1, src.Ext)
		})
		return outputs, class, err
	}
}

// inspect classifies the PDF at path and counts its pages
func inspect(path string) (Classification, int, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return Scanned, 0, err
	}
	defer doc.Close()

	class, err := classifyDocument(doc)
	if err != nil {
		return class, 0, err
	}
	return class, doc.NumPages(), nil
}
