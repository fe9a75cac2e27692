package porename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// prefixLength is the part of the stem kept in the final name: the date tag
// written by Normalize.
const prefixLength = 8

// CandidateBase returns the final name of a file before its occurrence index
func CandidateBase(stem string, ids IdentifierSet) string {
	prefix := []rune(stem)
	if len(prefix) > prefixLength {
		prefix = prefix[:prefixLength]
	}
	if ids.Empty() {
		return fmt.Sprintf("%s_%s", string(prefix), notFoundToken)
	}
	return fmt.Sprintf("%s_%s", string(prefix), ids.Token())
}

// Finalize renames the file at path to {base}_{n}{ext}, where base comes from
// CandidateBase and n is the next index of base in registry.
//
// A target held by an input of the same pass that is still pending is freed by
// moving that input aside. A target held by any other file is skipped, so no
// file is ever overwritten. The index is only recorded once the rename
// succeeded.
func (p *Pipeline) Finalize(path string, ids IdentifierSet, registry *NameRegistry) (string, error) {
	src, err := statSource(path)
	if err != nil {
		return "", err
	}
	base := CandidateBase(src.Stem, ids)

	for n := registry.NextIndex(base); ; n++ {
		dst := filepath.Join(src.Dir, fmt.Sprintf("%s_%d%s", base, n, src.Ext))
		taken, err := occupiedByOther(path, dst)
		if err != nil {
			return "", err
		}
		if taken {
			if !registry.pending(dst) {
				p.logger.Warn("final name already taken, trying next index", "file", src.Name(), "name", filepath.Base(dst))
				continue
			}
			if err := p.setAside(dst, registry); err != nil {
				return "", err
			}
		}
		if err := renameNoClobber(path, dst); err != nil {
			return "", err
		}
		registry.commit(base, n)
		registry.done(path)
		return dst, nil
	}
}

// setAside renames the pending input at path to {stem}~{k}{ext}. The date
// prefix is kept, so its own final name does not change.
func (p *Pipeline) setAside(path string, registry *NameRegistry) error {
	dir, name := filepath.Split(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for k := 1; ; k++ {
		dst := filepath.Join(dir, fmt.Sprintf("%s~%d%s", stem, k, ext))
		if _, err := os.Lstat(dst); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("%w: %v", ErrFilesystem, err)
		}
		if err := renameNoClobber(path, dst); err != nil {
			return err
		}
		registry.moved(path, dst)
		p.logger.Info("pending file moved out of the way", "file", name, "name", filepath.Base(dst))
		return nil
	}
}
