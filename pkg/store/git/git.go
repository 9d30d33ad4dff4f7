package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout is the max execution time for git commands.
var DefaultTimeout = 60 * time.Second

type logger interface {
	Debugf(format string, args ...interface{})
}

// Store runs git commands against target repositories. A single Store
// serves any number of repositories; methods take the repository path.
type Store struct {
	Logger  logger
	Author  string
	Email   string
	Timeout time.Duration
	DryRun  bool
}

// New instantiate a new git Store. Author and email are optional; when
// empty, the target repository's own identity applies.
func New(log logger, dryRun bool, author, email string, timeout time.Duration) *Store {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Store{
		Logger:  log,
		Author:  author,
		Email:   email,
		Timeout: timeout,
		DryRun:  dryRun,
	}
}

// Git wraps the git command.
func (s *Store) Git(dir string, args ...string) error {
	s.Logger.Debugf("Running git %s in %s", strings.Join(args, " "), dir)

	if s.DryRun {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...) // #nosec
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s failed with code %v: %s", strings.Join(args, " "), err, out)
	}

	return nil
}

// HasChanges tests whether the repository has uncommitted changes,
// restricted to the given paths when provided.
func (s *Store) HasChanges(dir string, paths ...string) (changed bool, err error) {
	args := []string{"status", "--porcelain"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}

	s.Logger.Debugf("Running git %s in %s", strings.Join(args, " "), dir)

	if s.DryRun {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...) // #nosec
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("git status failed with code %v: %s", err, out)
	}

	if len(out) != 0 {
		return true, nil
	}

	return false, nil
}

// Commit stages the given paths (or the whole repository, when no path is
// given) and records a commit with the provided message.
func (s *Store) Commit(dir string, message string, paths ...string) error {
	addArgs := []string{"add", "-A"}
	if len(paths) > 0 {
		addArgs = append(addArgs, "--")
		addArgs = append(addArgs, paths...)
	}

	if err := s.Git(dir, addArgs...); err != nil {
		return fmt.Errorf("failed to stage changes in %s: %w", dir, err)
	}

	commitArgs := []string{}
	if s.Author != "" {
		commitArgs = append(commitArgs, "-c", "user.name="+s.Author)
	}

	if s.Email != "" {
		commitArgs = append(commitArgs, "-c", "user.email="+s.Email)
	}

	commitArgs = append(commitArgs, "commit", "-m", message)

	if err := s.Git(dir, commitArgs...); err != nil {
		return fmt.Errorf("failed to commit in %s: %w", dir, err)
	}

	return nil
}
