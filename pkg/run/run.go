// Package run wires the promptsync services together for a one-shot
// synchronization run.
package run

import (
	"fmt"

	"github.com/promptsync/promptsync/config"
	"github.com/promptsync/promptsync/pkg/store/git"
	"github.com/promptsync/promptsync/pkg/sync"
	"github.com/promptsync/promptsync/pkg/tasklist"
)

// Run loads the task list and synchronizes every listed repository. Only
// an unusable task list makes the run fail; per repository problems are
// logged and reflected in the final tally.
func Run(conf *config.PsConfig) error {
	tasks, err := tasklist.Load(conf.TaskList)
	if err != nil {
		return fmt.Errorf("failed to load the task list: %w", err)
	}

	if conf.DryRun {
		conf.Logger.Info("Dry run: no file or repository will be modified")
	}

	repo := git.New(conf.Logger, conf.DryRun, conf.GitAuthor, conf.GitEmail, conf.GitTimeout)
	summary := sync.New(conf, repo).Run(tasks)

	conf.Logger.Infof("Done: %s", summary)

	return nil
}
