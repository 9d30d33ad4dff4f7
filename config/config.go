package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var appFs = afero.NewOsFs()

// PsConfig is the configuration struct, passed to the synchronizer
type PsConfig struct {
	// When DryRun is true, we display what would change but touch nothing
	DryRun bool

	// Logger should be used to send all logs
	Logger *logrus.Logger

	// TaskList is the path of the file listing the target repositories
	TaskList string

	// SourceDir is the directory holding the distributable prompt files
	SourceDir string

	// GuidelinesDir is the SourceDir subdirectory mirrored into every target
	GuidelinesDir string

	// TargetSubdir is the subdirectory receiving prompts in each repository
	TargetSubdir string

	// IgnoreEntry is the line maintained in each repository's .gitignore.
	// Defaults to TargetSubdir.
	IgnoreEntry string

	// GitAuthor overrides the committer name (facultative)
	GitAuthor string

	// GitEmail overrides the committer email (facultative)
	GitEmail string

	// GitTimeout is the max execution time for git commands
	GitTimeout time.Duration
}

// Init validates the configuration and applies derived defaults
func (c *PsConfig) Init() error {
	if c.TaskList == "" {
		return fmt.Errorf("a task list file is required (--task-list)")
	}

	subdir, err := cleanRelative(c.TargetSubdir)
	if err != nil {
		return fmt.Errorf("invalid target subdirectory %q: %w", c.TargetSubdir, err)
	}
	c.TargetSubdir = subdir

	guidelines, err := cleanRelative(c.GuidelinesDir)
	if err != nil {
		return fmt.Errorf("invalid guidelines directory %q: %w", c.GuidelinesDir, err)
	}
	c.GuidelinesDir = guidelines

	if c.IgnoreEntry == "" {
		c.IgnoreEntry = c.TargetSubdir
	}

	c.SourceDir, err = filepath.Abs(c.SourceDir)
	if err != nil {
		return fmt.Errorf("failed to resolve the source directory: %w", err)
	}

	exists, err := afero.DirExists(appFs, c.SourceDir)
	if err != nil {
		return fmt.Errorf("failed to check the source directory %s: %w", c.SourceDir, err)
	}

	if !exists {
		return fmt.Errorf("source directory %s not found", c.SourceDir)
	}

	return nil
}

// cleanRelative normalizes a configured path to a clean, slash separated
// path relative to its root.
func cleanRelative(p string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))

	if cleaned == "." || cleaned == "" {
		return "", fmt.Errorf("empty path")
	}

	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("path must be relative, without parent references")
	}

	return cleaned, nil
}
