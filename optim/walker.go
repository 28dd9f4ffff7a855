package optim

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-imsto/imoptim/utils"
)

// Extensions accepted by the walker, compared case-insensitively
var Extensions = []string{".jpg", ".jpeg", ".png"}

// OutputExt replaces the source extension when renaming is on
const OutputExt = ".jpg"

// IsImage reports whether name has an accepted extension
func IsImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// WalkFunc receives each matching file
type WalkFunc func(job Job)

// Walker mirrors InputRoot under OutputRoot
type Walker struct {
	InputRoot  string
	OutputRoot string
	RenameExt  bool
}

// Target maps a path relative to the input root to its output path
func (w *Walker) Target(rel string) string {
	if w.RenameExt {
		rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + OutputExt
	}
	return filepath.Join(w.OutputRoot, rel)
}

// Walk calls fn for every image under the input root, in directory order.
// A symlinked root is followed. Unreadable directories are logged and skipped.
func (w *Walker) Walk(fn WalkFunc) error {
	root, err := filepath.EvalSymlinks(w.InputRoot)
	if err != nil || !utils.IsDir(root) {
		return fmt.Errorf("%w: %s", ErrInputRoot, w.InputRoot)
	}

	skip, err := w.nestedOutput(root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger().Warnw("walk fail", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if skip != "" && path == skip {
				logger().Infow("skip output root", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !IsImage(d.Name()) {
			return nil
		}
		if !d.Type().IsRegular() && !(d.Type()&fs.ModeSymlink != 0 && utils.IsRegular(path)) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			logger().Warnw("rel fail", "path", path, "err", err)
			return nil
		}
		fn(Job{Src: filepath.Join(w.InputRoot, rel), Rel: rel, Dst: w.Target(rel)})
		return nil
	})
}

// nestedOutput returns the output root as seen under the resolved input
// root when it lies strictly inside it, or "" otherwise.
func (w *Walker) nestedOutput(root string) (string, error) {
	if w.OutputRoot == "" || !utils.Within(w.InputRoot, w.OutputRoot) {
		return "", nil
	}
	ai, err := filepath.Abs(w.InputRoot)
	if err != nil {
		return "", err
	}
	ao, err := filepath.Abs(w.OutputRoot)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(ai, ao)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", fmt.Errorf("%w: %s", ErrSameRoot, w.InputRoot)
	}
	return filepath.Join(root, rel), nil
}
