package sync

import (
	"fmt"
	"strings"
)

// Result captures what happened to one target repository.
type Result struct {
	RepoPath      string
	IgnoreChanged bool
	AssetsChanged bool
	FilesChanged  []string
	Committed     bool
	Skipped       bool
	Err           error
}

func (r *Result) changed() bool {
	return r.IgnoreChanged || r.AssetsChanged || len(r.FilesChanged) > 0
}

// Summary aggregates the results of a whole run, in task order.
type Summary struct {
	Results []Result
}

// Updated counts the repositories where something was synchronized.
func (s *Summary) Updated() int {
	count := 0
	for i := range s.Results {
		if s.Results[i].changed() && s.Results[i].Err == nil {
			count++
		}
	}
	return count
}

// Skipped counts the repositories left untouched because their path
// didn't validate.
func (s *Summary) Skipped() int {
	count := 0
	for i := range s.Results {
		if s.Results[i].Skipped {
			count++
		}
	}
	return count
}

// Errored counts the repositories where at least one step failed.
func (s *Summary) Errored() int {
	count := 0
	for i := range s.Results {
		if s.Results[i].Err != nil {
			count++
		}
	}
	return count
}

// String renders the final tally.
func (s *Summary) String() string {
	return fmt.Sprintf("%d updated, %d skipped, %d errored of %d repositories",
		s.Updated(), s.Skipped(), s.Errored(), len(s.Results))
}

// commitMessage names the changed categories, in a fixed order.
func commitMessage(r *Result) string {
	var parts []string

	if r.IgnoreChanged {
		parts = append(parts, "gitignore")
	}

	if r.AssetsChanged {
		parts = append(parts, "guidelines")
	}

	switch n := len(r.FilesChanged); {
	case n == 1:
		parts = append(parts, "1 prompt file")
	case n > 1:
		parts = append(parts, fmt.Sprintf("%d prompt files", n))
	}

	return "chore: sync prompts (" + strings.Join(parts, ", ") + ")"
}
