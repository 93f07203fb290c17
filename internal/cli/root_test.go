package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setupDataDir(t *testing.T) {
	t.Helper()
	t.Setenv("BUDDY_DATA_DIR", t.TempDir())
	t.Setenv("BUDDY_DATABASE_PATH", "")
	t.Setenv("BUDDY_CONFIG_PATH", "")
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("NEWS_API_KEY", "")
	t.Setenv("STOCKS_API_KEY", "")
	t.Setenv("TELEGRAM_TOKEN", "")
}

func TestAddListMarkHistoryFlow(t *testing.T) {
	setupDataDir(t)

	out, err := runCommand(t, "add", "Morning run", "--time", "7:00", "--recurrence", "daily", "--category", "health")
	if err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Added activity #1: Morning run at 07:00 (daily)") {
		t.Fatalf("unexpected add output: %s", out)
	}

	out, err = runCommand(t, "list")
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Morning run") || !strings.Contains(out, "Total: 1 activities") {
		t.Fatalf("unexpected list output: %s", out)
	}

	out, err = runCommand(t, "mark", "1", "done", "--note", "felt great")
	if err != nil {
		t.Fatalf("mark: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Marked activity #1 as done") {
		t.Fatalf("unexpected mark output: %s", out)
	}

	out, err = runCommand(t, "history", "1")
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	if !strings.Contains(out, "done - felt great") {
		t.Fatalf("unexpected history output: %s", out)
	}
	if !strings.Contains(out, "Current streak: 🔥 1 days") {
		t.Fatalf("expected streak line: %s", out)
	}
}

func TestAddRequiresTime(t *testing.T) {
	setupDataDir(t)

	if _, err := runCommand(t, "add", "Run"); err == nil {
		t.Fatal("expected error when --time is missing")
	}
}

func TestMarkRejectsBadStatus(t *testing.T) {
	setupDataDir(t)

	if out, err := runCommand(t, "add", "Run", "--time", "07:00"); err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}
	if _, err := runCommand(t, "mark", "1", "finished"); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestDeleteWithForce(t *testing.T) {
	setupDataDir(t)

	if out, err := runCommand(t, "add", "Run", "--time", "07:00"); err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}
	out, err := runCommand(t, "delete", "1", "--force")
	if err != nil {
		t.Fatalf("delete: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Deleted activity #1") {
		t.Fatalf("unexpected delete output: %s", out)
	}

	if _, err := runCommand(t, "show", "1"); err == nil {
		t.Fatal("expected error showing a deleted activity")
	}
}

func TestCategoriesCommand(t *testing.T) {
	setupDataDir(t)

	out, err := runCommand(t, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, category := range []string{"Work", "Health", "Other"} {
		if !strings.Contains(out, category) {
			t.Fatalf("missing category %s in output: %s", category, out)
		}
	}
}

func TestConfigShowAndSet(t *testing.T) {
	setupDataDir(t)

	out, err := runCommand(t, "config", "--location", "Tbilisi", "--units", "imperial")
	if err != nil {
		t.Fatalf("config set: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Preferences saved.") {
		t.Fatalf("unexpected config output: %s", out)
	}

	out, err = runCommand(t, "config", "--show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Location:    Tbilisi") || !strings.Contains(out, "Units:       imperial") {
		t.Fatalf("settings not persisted: %s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "buddy dev") {
		t.Fatalf("unexpected version output: %s", out)
	}
}
