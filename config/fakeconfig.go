package config

import (
	"time"

	"github.com/promptsync/promptsync/pkg/log"
)

// FakeConfig returns a configuration struct preset for unit tests
func FakeConfig() *PsConfig {
	logger, _ := log.New("", "", "test")

	return &PsConfig{
		DryRun:        true,
		Logger:        logger,
		TaskList:      "/tmp/promptsync/tasks.json",
		SourceDir:     "/tmp/promptsync/prompts",
		GuidelinesDir: "programming_guidelines",
		TargetSubdir:  ".cursor/rules/global_prompts",
		IgnoreEntry:   ".cursor/rules/global_prompts",
		GitTimeout:    time.Second,
	}
}
