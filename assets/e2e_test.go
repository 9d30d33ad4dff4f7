//go:build ignore

// end-to-end tests.
// The promptsync and git binaries must be reachable in $PATH.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, name string, args ...string) string {
	t.Helper()

	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		t.Fatalf("%s %s failed with code %v: %s", name, strings.Join(args, " "), err, out)
	}

	return string(out)
}

func write(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestE2E(t *testing.T) {
	source := t.TempDir()
	repo := t.TempDir()

	write(t, filepath.Join(source, "general.mdc"), "be nice")
	write(t, filepath.Join(source, "programming_guidelines", "style.md"), "tabs")
	run(t, "git", "init", "-q", repo)

	taskList := filepath.Join(t.TempDir(), "tasks.json")
	write(t, taskList, fmt.Sprintf(`[{"repository_path": %q, "prompts": ["general.mdc"]}]`, repo))

	sync := func() {
		run(t, "promptsync", "-t", taskList, "-s", source, "-a", "e2e", "-m", "e2e@test")
	}

	target := filepath.Join(repo, ".cursor", "rules", "global_prompts")

	sync()

	content, err := os.ReadFile(filepath.Join(target, "general.mdc"))
	if err != nil || string(content) != "be nice" {
		t.Fatalf("listed prompt not synced (%v): %q", err, content)
	}

	if _, err := os.Stat(filepath.Join(target, "programming_guidelines", "style.md")); err != nil {
		t.Fatalf("guidelines not synced: %v", err)
	}

	if count := run(t, "git", "-C", repo, "rev-list", "--count", "HEAD"); strings.TrimSpace(count) != "1" {
		t.Fatalf("expected exactly one commit, got %s", count)
	}

	// a second run must be a no-op
	sync()

	if count := run(t, "git", "-C", repo, "rev-list", "--count", "HEAD"); strings.TrimSpace(count) != "1" {
		t.Fatalf("the second run should not commit again, got %s", count)
	}

	// a changed prompt is picked up
	write(t, filepath.Join(source, "general.mdc"), "be really nice")
	sync()

	content, err = os.ReadFile(filepath.Join(target, "general.mdc"))
	if err != nil || string(content) != "be really nice" {
		t.Fatalf("modified prompt not synced (%v): %q", err, content)
	}

	// a removed guideline is pruned
	if err := os.Remove(filepath.Join(source, "programming_guidelines", "style.md")); err != nil {
		t.Fatal(err)
	}
	sync()

	if _, err := os.Stat(filepath.Join(target, "programming_guidelines", "style.md")); !os.IsNotExist(err) {
		t.Fatalf("stale guideline should be pruned (%v)", err)
	}
}
