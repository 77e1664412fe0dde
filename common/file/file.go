// Package file provides the on-disk layout for generated capsule images.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PathPattern is the layout consumed by the UEFI capsule plugin.
const PathPattern = "{directory}/{language}/LC_IMAGES/fwupd-{width}-{height}.{suffix}"

// Template expands PathPattern for a fixed output directory.
type Template struct {
	Directory string
	Pattern   string
}

// NewTemplate returns a Template rooted at directory.
// Trailing slashes are removed so the expanded paths never contain "//".
func NewTemplate(directory string) *Template {
	for len(directory) > 1 && strings.HasSuffix(directory, "/") {
		directory = directory[:len(directory)-1]
	}
	return &Template{
		Directory: directory,
		Pattern:   PathPattern,
	}
}

// Path returns the output file for one language and resolution.
func (t *Template) Path(language string, width, height int, suffix string) string {
	r := strings.NewReplacer(
		"{directory}", t.Directory,
		"{language}", language,
		"{width}", strconv.Itoa(width),
		"{height}", strconv.Itoa(height),
		"{suffix}", suffix,
	)
	return r.Replace(t.Pattern)
}

// Exists reports whether something is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFile writes data to path, creating parent directories with mode 0755.
// The content is written to a temporary sibling first and renamed into place,
// so a reader never observes a partially written image.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// DisplayPath shortens path for progress messages.
// destDir wins over buildRoot; when neither is a prefix of path it is returned unchanged.
func DisplayPath(path, destDir, buildRoot string) string {
	prefix := destDir
	if prefix == "" {
		prefix = buildRoot
	}
	if prefix == "" || !strings.HasPrefix(path, prefix) {
		return path
	}
	return path[len(prefix):]
}

// FormatSize converts bytes into a human-readable string.
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	if bytes >= GB {
		return fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	} else if bytes >= MB {
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	} else {
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	}
}
