package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	taskList    string
	sourceDir   string
	targetDir   string
	guidelines  string
	ignoreEntry string
	dryRun      bool
	logLevel    string
	logOutput   string
	logServer   string
	gitAuthor   string
	gitEmail    string
	gitTimeout  int
)

func bindPFlag(key string, cmd string) {
	if err := viper.BindPFlag(key, RootCmd.PersistentFlags().Lookup(cmd)); err != nil {
		log.Fatal("Failed to bind cli argument:", err)
	}
}

func init() {
	cobra.OnInitialize(loadConfigFile)
	RootCmd.AddCommand(versionCmd)

	defaultCfg := "/etc/promptsync/" + appName + ".yaml"
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultCfg, "Configuration file")

	RootCmd.PersistentFlags().StringVarP(&taskList, "task-list", "t", "", "File listing the repositories to synchronize")
	bindPFlag("task-list", "task-list")

	RootCmd.PersistentFlags().StringVarP(&sourceDir, "source-dir", "s", ".cursor/rules/global_prompts", "Directory holding the shared prompt files")
	bindPFlag("source-dir", "source-dir")

	RootCmd.PersistentFlags().StringVarP(&targetDir, "target-subdir", "e", ".cursor/rules/global_prompts", "Subdirectory receiving the prompts in each repository")
	bindPFlag("target-subdir", "target-subdir")

	RootCmd.PersistentFlags().StringVarP(&guidelines, "guidelines-dir", "g", "programming_guidelines", "Source subdirectory mirrored into every repository")
	bindPFlag("guidelines-dir", "guidelines-dir")

	RootCmd.PersistentFlags().StringVarP(&ignoreEntry, "ignore-entry", "i", "", "Line maintained in each .gitignore (defaults to the target subdirectory)")
	bindPFlag("ignore-entry", "ignore-entry")

	RootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "Dry-run mode: don't write or commit anything")
	bindPFlag("dry-run", "dry-run")

	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "info", "Log level")
	bindPFlag("log-level", "log-level")

	RootCmd.PersistentFlags().StringVarP(&logOutput, "log-output", "o", "stderr", "Log output")
	bindPFlag("log-output", "log-output")

	RootCmd.PersistentFlags().StringVarP(&logServer, "log-server", "r", "", "Log server (if using syslog)")
	bindPFlag("log-server", "log-server")

	RootCmd.PersistentFlags().StringVarP(&gitAuthor, "git-author", "a", "", "Committer name (defaults to each repository's identity)")
	bindPFlag("git-author", "git-author")

	RootCmd.PersistentFlags().StringVarP(&gitEmail, "git-email", "m", "", "Committer email")
	bindPFlag("git-email", "git-email")

	RootCmd.PersistentFlags().IntVarP(&gitTimeout, "git-timeout", "p", 60, "Max execution time for git commands, in seconds")
	bindPFlag("git-timeout", "git-timeout")
}
