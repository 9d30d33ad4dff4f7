package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/promptsync/promptsync/config"
	pslog "github.com/promptsync/promptsync/pkg/log"
	"github.com/promptsync/promptsync/pkg/run"
)

const appName = "promptsync"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   appName,
	Short: "Distribute shared prompt files across git repositories",
	Long: "Distribute a shared directory of AI prompt and rules files across " +
		"many git repositories, committing whatever changed in each of them.",

	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := pslog.New(viper.GetString("log-level"), viper.GetString("log-server"), viper.GetString("log-output"))
		if err != nil {
			return fmt.Errorf("failed to initialize the logger: %w", err)
		}

		conf := &config.PsConfig{
			DryRun:        viper.GetBool("dry-run"),
			Logger:        logger,
			TaskList:      viper.GetString("task-list"),
			SourceDir:     viper.GetString("source-dir"),
			GuidelinesDir: viper.GetString("guidelines-dir"),
			TargetSubdir:  viper.GetString("target-subdir"),
			IgnoreEntry:   viper.GetString("ignore-entry"),
			GitAuthor:     viper.GetString("git-author"),
			GitEmail:      viper.GetString("git-email"),
			GitTimeout:    time.Duration(viper.GetInt("git-timeout")) * time.Second,
		}

		if err := conf.Init(); err != nil {
			return fmt.Errorf("failed to initialize the configuration: %w", err)
		}

		return run.Run(conf)
	},
}

// Execute adds all child commands to the root command and sets their flags.
func Execute() error {
	return RootCmd.Execute()
}
