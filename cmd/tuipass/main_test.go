package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tuipass/internal/model"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	return runCLINoEnv(t, stdin, args...)
}

func runCLINoEnv(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGroupsCommandListsAllGroups(t *testing.T) {
	out, err := runCLI(t, "", "groups")
	if err != nil {
		t.Fatalf("groups: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected header + 10 groups, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "upper_letters") || !strings.Contains(lines[1], " 26 ") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestScoreCommandFromArg(t *testing.T) {
	out, err := runCLI(t, "", "score", "Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out != "36.05 bit  Very Weak\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestScoreCommandFromStdin(t *testing.T) {
	out, err := runCLI(t, "aaaa\n", "score")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out != "0.00 bit  Very Weak\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGenCommandPrintsPasswords(t *testing.T) {
	out, err := runCLI(t, "", "gen", "--group", "lower_letters", "--length", "8", "--count", "3")
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 passwords, got %q", out)
	}
	for _, line := range lines {
		if len(line) != 8 || strings.Trim(line, "abcdefghijklmnopqrstuvwxyz") != "" {
			t.Fatalf("unexpected password %q", line)
		}
	}
}

func TestGenCommandScoreTable(t *testing.T) {
	out, err := runCLI(t, "", "gen", "--group", "numbers", "--length", "4", "--score")
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "Password") || !strings.Contains(lines[1], "bit") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestGenCommandUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("NO_COLOR", "1")
	path := filepath.Join(dir, "tuipass", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := "[generator]\nlength = 5\ngroups = [\"numbers\"]\nexclude = \"012345678\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCLINoEnv(t, "", "gen")
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if out != "99999\n" {
		t.Fatalf("expected config-driven password, got %q", out)
	}

	out, err = runCLINoEnv(t, "", "gen", "--length", "2")
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if out != "99\n" {
		t.Fatalf("expected flag to override config length, got %q", out)
	}
}

func TestGenCommandRejectsBlockedConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"fully excluded", []string{"gen", "--group", "numbers", "--exclude", "0123456789"}, `group "numbers" is fully excluded`},
		{"too short", []string{"gen", "--length", "2"}, "--length must be at least 3"},
		{"unknown group", []string{"gen", "--group", "emoji"}, `unknown group "emoji"`},
		{"zero length", []string{"gen", "--length", "0"}, "--length must be > 0"},
		{"bad count", []string{"gen", "--count", "0"}, "--count must be > 0"},
		{"only similar", []string{"gen", "--group", "", "--extra", "0O", "--exclude-similar"}, "no characters left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestGateErrorNothingSelected(t *testing.T) {
	err := gateError(model.Config{Length: 8})
	if err == nil || !strings.Contains(err.Error(), "at least one") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultConfigTemplateMentionsDefaults(t *testing.T) {
	tmpl := defaultConfigTemplate()
	for _, want := range []string{"[generator]", `"upper_letters", "lower_letters", "numbers"`, "# require-all = true"} {
		if !strings.Contains(tmpl, want) {
			t.Fatalf("template missing %q:\n%s", want, tmpl)
		}
	}
}
