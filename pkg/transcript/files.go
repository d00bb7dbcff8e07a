package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
)

// Filename date pattern: exports are commonly named like
// "GMT20240115-000000_Recording.txt".
var fileDateRegex = regexp.MustCompile(`GMT(\d{8})`)

// UnknownDate is returned for filenames that carry no GMT date.
const UnknownDate = "Unknown Date"

// FileDate extracts the date digits following "GMT" in a filename. The value
// is opaque display metadata and is never parsed into a calendar type.
func FileDate(filename string) string {
	matches := fileDateRegex.FindStringSubmatch(filepath.Base(filename))
	if matches == nil {
		return UnknownDate
	}
	return matches[1]
}

// SortByDate returns the paths ordered by their filename date, so "Day 1" is
// the earliest session regardless of the order files were supplied. Paths
// without a date sort after dated ones; the sort is stable, so ties keep
// their supplied order.
func SortByDate(paths []string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := FileDate(sorted[i]), FileDate(sorted[j])
		if (di == UnknownDate) != (dj == UnknownDate) {
			return dj == UnknownDate
		}
		return di < dj
	})
	return sorted
}

// DayLabels returns the session labels "Day 1".."Day n".
func DayLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Day %d", i+1)
	}
	return labels
}

// DiscoverFiles finds the transcript files at path. A single .txt file is
// returned as-is; a directory is walked recursively for .txt files. Any other
// single file fails with ErrInvalidArgument.
func DiscoverFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !strings.HasSuffix(strings.ToLower(path), ".txt") {
			return nil, fmt.Errorf("%s is not a .txt transcript: %w", path, cserrors.ErrInvalidArgument)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".txt") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
