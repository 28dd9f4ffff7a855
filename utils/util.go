package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ReadyDir creates the parent directories of filename
func ReadyDir(filename string) error {
	dir := filepath.Dir(filename)
	return os.MkdirAll(dir, os.FileMode(0755))
}

// Exists returns true if a file exists
func Exists(fpath string) bool {
	_, err := os.Stat(fpath)
	return !os.IsNotExist(err)
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// IsRegular follows symlinks
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}

// Within reports whether fpath is dir or lies beneath it
func Within(dir, fpath string) bool {
	ad, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	ap, err := filepath.Abs(fpath)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(ad, ap)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
