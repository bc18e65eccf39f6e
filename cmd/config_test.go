package cmd

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wwells/Recipes/internal/config"
)

func TestConfig_Default(t *testing.T) {
	setupCommandTest(t)

	out, _, err := executeCommand(t, "config")
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	for _, want := range []string{"catalog.path", "data/recipes.json", "report.sample_size", "(next to catalog)"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q. Got:\n%s", want, out)
		}
	}
}

func TestConfig_JSON(t *testing.T) {
	setupCommandTest(t)

	out, _, err := executeCommand(t, "config", "--json", "--catalog", "book.json", "-y")
	if err != nil {
		t.Fatalf("config --json failed: %v", err)
	}

	var got config.Config
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nGot: %s", err, out)
	}
	if got.Catalog.Path != "book.json" {
		t.Errorf("catalog.path = %q, want book.json", got.Catalog.Path)
	}
	if !got.Confirm.AssumeYes {
		t.Error("confirm.assume_yes should follow --yes")
	}
}

func TestConfig_Path(t *testing.T) {
	setupCommandTest(t)

	out, _, err := executeCommand(t, "config", "--path")
	if err != nil {
		t.Fatalf("config --path failed: %v", err)
	}
	if !strings.Contains(out, "No config file found") {
		t.Errorf("expected defaults message, got: %q", out)
	}
}

func TestConfig_FileAndEnv(t *testing.T) {
	dir := setupCommandTest(t)
	writeFile(t, filepath.Join(dir, ".recipectl.yaml"), "report:\n  sample_size: 6\n")
	t.Setenv("RECIPECTL_SNAPSHOTS_DIR", "history")

	out, _, err := executeCommand(t, "config", "--json")
	if err != nil {
		t.Fatalf("config --json failed: %v", err)
	}

	var got config.Config
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if got.Report.SampleSize != 6 {
		t.Errorf("report.sample_size = %d, want 6", got.Report.SampleSize)
	}
	if got.Snapshots.Dir != "history" {
		t.Errorf("snapshots.dir = %q, want history", got.Snapshots.Dir)
	}
	if got.File == "" {
		t.Error("expected config file path to be reported")
	}
}
