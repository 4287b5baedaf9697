package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// resetFlags puts every flag of cmd and its subcommands back to its default.
// rootCmd is shared by all tests and cobra keeps parsed values between runs.
func resetFlags(cmd *cobra.Command) {
	for _, name := range []string{"help", "version", "config", "path", "title", "force"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("[database]\npath = %q\n\n[ui]\napp_title = \"Cheese Shop\"\n", filepath.Join(dir, "data", "shop.db"))
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "starterkit") {
		t.Errorf("expected help to contain 'starterkit', got %q", out)
	}
	if !strings.Contains(out, "--path") {
		t.Errorf("expected help to list --path, got %q", out)
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", out)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	if _, err := execute(t, "invalid-command"); err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	configForce = false
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := execute(t, "config", "init", "--config", path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v, want already exists", err)
	}

	out, err = execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"My App", "(min-width: 60px)", "static-content", "1.1.1.1:53"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q in %q", want, out)
		}
	}
}

func TestOrdersAndReset(t *testing.T) {
	path := writeConfig(t)

	out, err := execute(t, "orders", "--config", path)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if !strings.Contains(out, "No orders yet.") {
		t.Errorf("orders output = %q", out)
	}

	out, err = execute(t, "reset", "--config", path)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(out, "Shop reset") {
		t.Errorf("reset output = %q", out)
	}
}

func TestHelpDoesNotLeakIntoNextRun(t *testing.T) {
	if _, err := execute(t, "--help"); err != nil {
		t.Fatalf("help: %v", err)
	}
	if _, err := execute(t, "invalid-command"); err == nil {
		t.Error("expected error for invalid command after a --help run")
	}

	out, err := execute(t, "config", "--help")
	if err != nil {
		t.Fatalf("config help: %v", err)
	}
	if !strings.Contains(out, "init") {
		t.Errorf("config help missing subcommands: %q", out)
	}
	if _, err := execute(t, "version"); err != nil {
		t.Fatalf("version after help: %v", err)
	}
}
