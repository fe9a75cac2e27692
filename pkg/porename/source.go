package porename

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// dateLayout renders a DateTag, YYYYMMDD
const dateLayout = "20060102"

// SourceFile is a PDF found in the working directory
type SourceFile struct {
	Path    string
	Dir     string
	Stem    string // Name without the final extension
	Ext     string // Final extension as found on disk, dot included
	ModTime time.Time
}

// Name returns the file name with its extension
func (s SourceFile) Name() string {
	return s.Stem + s.Ext
}

// DateTag returns the YYYYMMDD tag of the file's modification time
func (s SourceFile) DateTag() string {
	return DateTag(s.ModTime)
}

// DateTag formats t, in local time, as YYYYMMDD
func DateTag(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// statSource builds a SourceFile from the file at path
func statSource(path string) (SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SourceFile{}, fmt.Errorf("%w: %v", ErrFilesystem, err)
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	return SourceFile{
		Path:    path,
		Dir:     filepath.Dir(path),
		Stem:    strings.TrimSuffix(name, ext),
		Ext:     ext,
		ModTime: info.ModTime(),
	}, nil
}

// isPDFName reports whether name has a .pdf extension, ignoring case, and a
// non-empty stem.
func isPDFName(name string) bool {
	ext := filepath.Ext(name)
	return strings.EqualFold(ext, ".pdf") && len(name) > len(ext)
}

// ListPDFs returns the regular files of dir with a .pdf extension in name order.
// Symbolic links are followed: a link to a regular file is listed, and renamed
// as a link later on.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrFilesystem, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if !isPDFName(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !entry.Type().IsRegular() {
			if entry.Type()&fs.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// renameNoClobber renames src to dst unless dst already holds another file
func renameNoClobber(src, dst string) error {
	if exists, err := occupiedByOther(src, dst); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: rename %s: %s already exists", ErrFilesystem, filepath.Base(src), filepath.Base(dst))
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrFilesystem, err)
	}
	return nil
}

// occupiedByOther reports whether dst exists and is not the file at src
func occupiedByOther(src, dst string) (bool, error) {
	dstInfo, err := os.Lstat(dst)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFilesystem, err)
	}
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFilesystem, err)
	}
	return !os.SameFile(srcInfo, dstInfo), nil
}
