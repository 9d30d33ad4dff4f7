package sync

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// copyFile copies src over dst when their contents differ, creating
// parent directories and preserving the source file mode. It reports
// whether a copy took place. An unreadable destination is overwritten
// rather than diffed.
func (s *Syncer) copyFile(src, dst string) (bool, error) {
	content, err := afero.ReadFile(appFs, src)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", src, err)
	}

	existing, err := afero.ReadFile(appFs, dst)
	if err == nil && bytes.Equal(content, existing) {
		return false, nil
	}

	if s.config.DryRun {
		return true, nil
	}

	mode := os.FileMode(0644)
	if info, err := appFs.Stat(src); err == nil {
		mode = info.Mode()
	}

	dir := filepath.Dir(dst)
	if err := appFs.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := afero.WriteFile(appFs, dst, content, mode); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return true, nil
}

// mirrorDir makes dst an exact copy of src: new and modified files are
// copied, entries absent from src are pruned. It reports whether any
// operation took place.
func (s *Syncer) mirrorDir(src, dst string) (bool, error) {
	changed := false
	expected := map[string]bool{}

	err := afero.Walk(appFs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		expected[rel] = true
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			exists, err := afero.DirExists(appFs, target)
			if err != nil || exists {
				return err
			}

			changed = true
			if s.config.DryRun {
				return nil
			}

			return appFs.MkdirAll(target, 0755)
		}

		copied, err := s.copyFile(path, target)
		if err != nil {
			return err
		}

		if copied {
			s.config.Logger.Infof("Copied %s", target)
			changed = true
		}

		return nil
	})

	if err != nil {
		return changed, fmt.Errorf("failed to mirror %s: %w", src, err)
	}

	pruned, err := s.pruneStale(dst, expected)
	if err != nil {
		return changed || pruned, fmt.Errorf("failed to prune %s: %w", dst, err)
	}

	return changed || pruned, nil
}

// pruneStale removes entries of dst that are not part of the mirrored
// source anymore.
func (s *Syncer) pruneStale(dst string, expected map[string]bool) (bool, error) {
	exists, err := afero.DirExists(appFs, dst)
	if err != nil || !exists {
		return false, err
	}

	var stale []string

	err = afero.Walk(appFs, dst, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dst, path)
		if err != nil {
			return err
		}

		if rel == "." || expected[rel] {
			return nil
		}

		stale = append(stale, path)
		if info.IsDir() {
			return filepath.SkipDir
		}

		return nil
	})

	if err != nil {
		return false, err
	}

	pruned := false
	for _, path := range stale {
		s.config.Logger.Infof("Pruned %s", path)

		if !s.config.DryRun {
			if err := appFs.RemoveAll(path); err != nil {
				return pruned, err
			}
		}

		pruned = true
	}

	return pruned, nil
}
