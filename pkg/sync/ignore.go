package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ensureIgnoreEntry makes sure the repository's .gitignore contains the
// configured entry, appending it when absent. The check is a plain
// substring match, as entries may appear with trailing slashes or
// comments around them.
func (s *Syncer) ensureIgnoreEntry(repo string) (bool, error) {
	if s.config.IgnoreEntry == "" {
		return false, nil
	}

	ignoreFile := filepath.Join(repo, ".gitignore")

	content, err := afero.ReadFile(appFs, ignoreFile)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %w", ignoreFile, err)
	}

	if strings.Contains(string(content), s.config.IgnoreEntry) {
		return false, nil
	}

	if s.config.DryRun {
		return true, nil
	}

	entry := s.config.IgnoreEntry + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		entry = "\n" + entry
	}

	f, err := appFs.OpenFile(ignoreFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", ignoreFile, err)
	}

	if _, err := f.WriteString(entry); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("failed to append to %s: %w", ignoreFile, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s: %w", ignoreFile, err)
	}

	return true, nil
}
