package tasklist

import (
	"testing"

	"github.com/spf13/afero"
)

const jsonList = `[
  {"repository_path": "/home/dev/projects/alpha", "prompts": ["general.mdc", "go\\style.mdc"]},
  {"repository_path": "/home/dev/projects/beta", "prompts": []}
]`

const yamlList = `- repository_path: /home/dev/projects/alpha
  prompts:
    - general.mdc
- repository_path: /home/dev/projects/beta
`

func TestLoadJSON(t *testing.T) {
	appFs = afero.NewMemMapFs()
	defer func() { appFs = afero.NewOsFs() }()

	if err := afero.WriteFile(appFs, "/tasks.json", []byte(jsonList), 0644); err != nil {
		t.Fatal(err)
	}

	tasks, err := Load("/tasks.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	if tasks[0].RepoPath != "/home/dev/projects/alpha" {
		t.Errorf("unexpected repository path: %s", tasks[0].RepoPath)
	}

	if tasks[0].Files[1] != "go/style.mdc" {
		t.Errorf("backslashes should be normalized, got %s", tasks[0].Files[1])
	}

	if len(tasks[1].Files) != 0 {
		t.Errorf("expected an empty file list, got %v", tasks[1].Files)
	}
}

func TestLoadYAML(t *testing.T) {
	appFs = afero.NewMemMapFs()
	defer func() { appFs = afero.NewOsFs() }()

	if err := afero.WriteFile(appFs, "/tasks.yaml", []byte(yamlList), 0644); err != nil {
		t.Fatal(err)
	}

	tasks, err := Load("/tasks.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 2 || tasks[1].RepoPath != "/home/dev/projects/beta" {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	appFs = afero.NewMemMapFs()
	defer func() { appFs = afero.NewOsFs() }()

	if _, err := Load("/nonexistent.json"); err == nil {
		t.Error("loading a missing task list should fail")
	}
}

func TestLoadGarbage(t *testing.T) {
	appFs = afero.NewMemMapFs()
	defer func() { appFs = afero.NewOsFs() }()

	if err := afero.WriteFile(appFs, "/tasks.json", []byte("{not a list"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load("/tasks.json"); err == nil {
		t.Error("loading an unparsable task list should fail")
	}
}

func TestLoadEmptyList(t *testing.T) {
	appFs = afero.NewMemMapFs()
	defer func() { appFs = afero.NewOsFs() }()

	if err := afero.WriteFile(appFs, "/tasks.json", []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	tasks, err := Load("/tasks.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}
