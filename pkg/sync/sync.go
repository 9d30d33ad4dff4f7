// Package sync distributes a shared directory of prompt files into many
// target repositories: it maintains each repository's ignore rule,
// mirrors the guidelines directory, copies the listed prompt files, and
// commits whatever changed. Failures are contained to their repository.
package sync

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/promptsync/promptsync/config"
	"github.com/promptsync/promptsync/pkg/tasklist"
)

var appFs = afero.NewOsFs()

// VCS is the narrow version control interface the synchronizer needs.
type VCS interface {
	HasChanges(dir string, paths ...string) (bool, error)
	Commit(dir string, message string, paths ...string) error
}

// Syncer synchronizes the shared prompt files into target repositories.
type Syncer struct {
	config *config.PsConfig
	vcs    VCS
}

// New creates a new Syncer.
func New(conf *config.PsConfig, vcs VCS) *Syncer {
	return &Syncer{
		config: conf,
		vcs:    vcs,
	}
}

// Run processes every task in order and collects per repository results.
func (s *Syncer) Run(tasks tasklist.List) *Summary {
	summary := &Summary{Results: make([]Result, 0, len(tasks))}

	for _, task := range tasks {
		summary.Results = append(summary.Results, s.syncRepo(task))
	}

	return summary
}

func (s *Syncer) syncRepo(task tasklist.Task) Result {
	res := Result{RepoPath: task.RepoPath}

	exists, err := afero.DirExists(appFs, task.RepoPath)
	if task.RepoPath == "" || err != nil || !exists {
		s.config.Logger.Warnf("Skipping %q: not a directory", task.RepoPath)
		res.Skipped = true
		return res
	}

	s.config.Logger.Infof("Processing repository %s", task.RepoPath)

	res.IgnoreChanged, err = s.ensureIgnoreEntry(task.RepoPath)
	if err != nil {
		s.config.Logger.Errorf("%v", err)
		res.Err = errors.Join(res.Err, err)
	}

	res.AssetsChanged, err = s.mirrorGuidelines(task.RepoPath)
	if err != nil {
		s.config.Logger.Errorf("%v", err)
		res.Err = errors.Join(res.Err, err)
	}

	var copyErr error
	res.FilesChanged, copyErr = s.copyListed(task)
	if copyErr != nil {
		res.Err = errors.Join(res.Err, copyErr)
	}

	s.commit(task.RepoPath, &res)

	return res
}

// mirrorGuidelines mirrors the shared guidelines directory into the
// repository's target subdirectory. A missing source is only a warning.
func (s *Syncer) mirrorGuidelines(repo string) (bool, error) {
	src := filepath.Join(s.config.SourceDir, filepath.FromSlash(s.config.GuidelinesDir))

	exists, err := afero.DirExists(appFs, src)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", src, err)
	}

	if !exists {
		s.config.Logger.Warnf("Guidelines directory %s not found, skipping", src)
		return false, nil
	}

	dst := filepath.Join(repo, filepath.FromSlash(s.config.TargetSubdir), filepath.FromSlash(s.config.GuidelinesDir))

	return s.mirrorDir(src, dst)
}

// copyListed copies the task's prompt files into the repository's target
// subdirectory. Unsafe or missing entries are skipped with a warning;
// copy failures don't stop the remaining files.
func (s *Syncer) copyListed(task tasklist.Task) ([]string, error) {
	if len(task.Files) == 0 {
		s.config.Logger.Debugf("No prompt files listed for %s", task.RepoPath)
		return nil, nil
	}

	var changed []string
	var errs error

	for _, name := range task.Files {
		rel, err := safeRel(name)
		if err != nil {
			s.config.Logger.Warnf("Skipping prompt %q for %s: %v", name, task.RepoPath, err)
			continue
		}

		src := filepath.Join(s.config.SourceDir, filepath.FromSlash(rel))

		exists, err := afero.Exists(appFs, src)
		if err == nil && !exists {
			s.config.Logger.Warnf("Prompt %s not found in %s, skipping", rel, s.config.SourceDir)
			continue
		}

		dst := filepath.Join(task.RepoPath, filepath.FromSlash(s.config.TargetSubdir), filepath.FromSlash(rel))

		copied, err := s.copyFile(src, dst)
		if err != nil {
			s.config.Logger.Errorf("%v", err)
			errs = errors.Join(errs, err)
			continue
		}

		if copied {
			s.config.Logger.Infof("Copied %s", dst)
			changed = append(changed, rel)
		}
	}

	return changed, errs
}

// commit records the synchronized changes when the repository has
// trackable pending changes under the managed paths.
func (s *Syncer) commit(repo string, res *Result) {
	if !res.changed() {
		s.config.Logger.Debugf("Nothing to synchronize in %s", repo)
		return
	}

	if s.config.DryRun {
		s.config.Logger.Infof("Would commit in %s: %q", repo, commitMessage(res))
		return
	}

	var pending []string

	for _, p := range s.managedPaths(repo) {
		changed, err := s.vcs.HasChanges(repo, p)
		if err != nil {
			s.config.Logger.Warnf("Failed to check pending changes in %s: %v", repo, err)
			res.Err = errors.Join(res.Err, err)
			return
		}

		if changed {
			pending = append(pending, p)
		}
	}

	if len(pending) == 0 {
		s.config.Logger.Debugf("No trackable changes in %s", repo)
		return
	}

	if err := s.vcs.Commit(repo, commitMessage(res), pending...); err != nil {
		s.config.Logger.Warnf("Failed to commit in %s: %v", repo, err)
		res.Err = errors.Join(res.Err, err)
		return
	}

	res.Committed = true
	s.config.Logger.Infof("Committed prompt updates in %s", repo)
}

// managedPaths lists the repository paths promptsync is responsible for,
// relative to the repository root.
func (s *Syncer) managedPaths(repo string) []string {
	paths := []string{".gitignore"}

	subdir := filepath.Join(repo, filepath.FromSlash(s.config.TargetSubdir))
	if exists, _ := afero.DirExists(appFs, subdir); exists {
		paths = append(paths, s.config.TargetSubdir)
	}

	return paths
}

// safeRel validates a listed file path, keeping it relative to the
// prompts directory.
func safeRel(name string) (string, error) {
	cleaned := path.Clean(name)

	if cleaned == "." || cleaned == "" {
		return "", fmt.Errorf("empty path")
	}

	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("path escapes the prompts directory")
	}

	return cleaned, nil
}
