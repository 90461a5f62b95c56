package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type fixture struct {
	dir    string
	input  string
	output string
}

func newFixture(t *testing.T, content string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		input:  filepath.Join(dir, "input.txt"),
		output: filepath.Join(dir, "output.txt"),
	}
	if err := os.WriteFile(f.input, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	return f
}

func (f fixture) run(t *testing.T, command string, flags ...string) (int, string) {
	t.Helper()
	args := append([]string{"pipefile"}, flags...)
	args = append(args, f.input, command, f.output)

	var stderr bytes.Buffer
	status := run(context.Background(), args, &stderr)
	return status, stderr.String()
}

func (f fixture) readOutput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}

// installScript puts an executable script in a fresh directory at the front of PATH.
func installScript(t *testing.T, name, body string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestIntegration_CatRoundTrip(t *testing.T) {
	for _, source := range []string{"pipe", "file"} {
		t.Run(source, func(t *testing.T) {
			f := newFixture(t, "hello\n")

			status, stderr := f.run(t, "cat", "--stdin-source", source)
			if status != 0 {
				t.Fatalf("Expected status 0, got %d (stderr: %s)", status, stderr)
			}
			if got := f.readOutput(t); got != "hello\n" {
				t.Errorf("Expected %q, got %q", "hello\n", got)
			}
		})
	}
}

func TestIntegration_WordCountMatchesDirectInvocation(t *testing.T) {
	f := newFixture(t, "one\ntwo\nthree\n")

	direct := exec.Command("wc", "-l")
	in, err := os.Open(f.input)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	direct.Stdin = in
	expected, err := direct.Output()
	if err != nil {
		t.Skipf("wc not available: %v", err)
	}

	status, stderr := f.run(t, "wc -l")
	if status != 0 {
		t.Fatalf("Expected status 0, got %d (stderr: %s)", status, stderr)
	}
	if got := f.readOutput(t); got != string(expected) {
		t.Errorf("Expected %q, got %q", string(expected), got)
	}
}

func TestIntegration_SmallChunksLargeInput(t *testing.T) {
	// Larger than a default pipe buffer so the parent blocks on writes.
	content := strings.Repeat("0123456789abcdef\n", 16*1024)
	f := newFixture(t, content)

	status, stderr := f.run(t, "cat", "--chunk-size", "7")
	if status != 0 {
		t.Fatalf("Expected status 0, got %d (stderr: %s)", status, stderr)
	}
	if got := f.readOutput(t); got != content {
		t.Errorf("Output differs from input (got %d bytes, want %d)", len(got), len(content))
	}
}

func TestIntegration_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "output.txt")

	var stderr bytes.Buffer
	status := run(context.Background(), []string{"pipefile", filepath.Join(dir, "absent.txt"), "cat", output}, &stderr)

	if status != 1 {
		t.Errorf("Expected status 1, got %d", status)
	}
	if !strings.Contains(stderr.String(), "open input file") {
		t.Errorf("Expected stderr to name the failing operation, got %q", stderr.String())
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("Expected no output file, stat returned %v", err)
	}
}

func TestIntegration_CommandNotFound(t *testing.T) {
	f := newFixture(t, "data\n")

	status, stderr := f.run(t, "nonexistent-command-xyz --flag")
	if status != 1 {
		t.Errorf("Expected status 1, got %d", status)
	}
	if !strings.Contains(stderr, "command not found: nonexistent-command-xyz") {
		t.Errorf("Expected command not found message, got %q", stderr)
	}
}

func TestIntegration_MissingPATH(t *testing.T) {
	f := newFixture(t, "data\n")
	t.Setenv("PATH", "")
	os.Unsetenv("PATH")

	status, stderr := f.run(t, "cat")
	if status != 1 {
		t.Errorf("Expected status 1, got %d", status)
	}
	if !strings.Contains(stderr, "command not found: cat") {
		t.Errorf("Expected command not found message, got %q", stderr)
	}
}

func TestIntegration_ExitStatusPropagates(t *testing.T) {
	installScript(t, "exit-seven", "cat >/dev/null\nexit 7")
	f := newFixture(t, "data\n")

	status, _ := f.run(t, "exit-seven")
	if status != 7 {
		t.Errorf("Expected status 7, got %d", status)
	}
}

func TestIntegration_ScriptArgumentsAndStdin(t *testing.T) {
	installScript(t, "prefix-lines", `while IFS= read -r line; do printf '%s:%s\n' "$1" "$line"; done`)
	f := newFixture(t, "a\nb\n")

	status, stderr := f.run(t, "prefix-lines   tag")
	if status != 0 {
		t.Fatalf("Expected status 0, got %d (stderr: %s)", status, stderr)
	}
	if got := f.readOutput(t); got != "tag:a\ntag:b\n" {
		t.Errorf("Expected prefixed lines, got %q", got)
	}
}

func TestIntegration_SignaledChild(t *testing.T) {
	installScript(t, "self-kill", "kill -9 $$")
	f := newFixture(t, "data\n")

	status, stderr := f.run(t, "self-kill")
	if status != -1 {
		t.Errorf("Expected status -1, got %d", status)
	}
	if !strings.Contains(stderr, "wait for command") {
		t.Errorf("Expected wait failure on stderr, got %q", stderr)
	}
}

func TestIntegration_ChildIgnoringStdin(t *testing.T) {
	// The child exits without reading; the parent must not die on the broken pipe.
	installScript(t, "ignore-stdin", "echo done")
	f := newFixture(t, strings.Repeat("x", 256*1024))

	status, stderr := f.run(t, "ignore-stdin")
	if status != 0 {
		t.Fatalf("Expected status 0, got %d (stderr: %s)", status, stderr)
	}
	if got := f.readOutput(t); got != "done\n" {
		t.Errorf("Expected %q, got %q", "done\n", got)
	}
}

func TestIntegration_ConfigFileAndLogFile(t *testing.T) {
	f := newFixture(t, "hello\n")
	logPath := filepath.Join(f.dir, "pipefile.log")
	cfgPath := filepath.Join(f.dir, "pipefile.yml")
	cfgBody := "chunk_size: 2\nlog:\n  level: debug\n  format: json\n  file: " + logPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgBody), 0644); err != nil {
		t.Fatal(err)
	}

	status, stderr := f.run(t, "cat", "--config", cfgPath)
	if status != 0 {
		t.Fatalf("Expected status 0, got %d (stderr: %s)", status, stderr)
	}
	if got := f.readOutput(t); got != "hello\n" {
		t.Errorf("Expected %q, got %q", "hello\n", got)
	}

	logs, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	if !strings.Contains(string(logs), `"chunks":3`) {
		t.Errorf("Expected streaming record with 3 chunks, got %s", logs)
	}
}
