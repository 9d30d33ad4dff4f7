// Package tasklist loads the declarative list of repositories to synchronize.
package tasklist

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"
)

var appFs = afero.NewOsFs()

// Task describes one target repository and the prompt files it should receive.
type Task struct {
	RepoPath string   `json:"repository_path"`
	Files    []string `json:"prompts"`
}

// List is an ordered set of synchronization tasks.
type List []Task

// Load reads and parses a task list file. The file may be JSON (the
// historical format) or YAML. Listed file paths are normalized to
// forward slashes.
func Load(path string) (List, error) {
	content, err := afero.ReadFile(appFs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task list %s: %w", path, err)
	}

	var tasks List
	if err := yaml.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse task list %s: %w", path, err)
	}

	for i := range tasks {
		for j, file := range tasks[i].Files {
			tasks[i].Files[j] = strings.ReplaceAll(file, "\\", "/")
		}
	}

	return tasks, nil
}
