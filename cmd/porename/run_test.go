package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gardar/porename/pkg/pdfdoc/pdfdoctest"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunCommandRenamesNativePDF(t *testing.T) {
	base := t.TempDir()
	configPath := writeConfig(t, base, "log:\n  format: json\n")
	workDir := filepath.Join(base, "orders")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(workDir, "invoice.pdf")
	pdfdoctest.WriteNative(t, path, "Order 4501234567")
	pdfdoctest.SetModTime(t, path, time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local))

	stdout, stderr, err := executeRoot(t, "--config", configPath, "--dir", workDir)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(stdout, "File 20240301_invoice.pdf renamed successfully") {
		t.Errorf("stdout missing success line:\n%s", stdout)
	}
	if !strings.Contains(stderr, `"run_id"`) {
		t.Errorf("expected json logs tagged with run_id, got:\n%s", stderr)
	}
	if _, err := os.Stat(filepath.Join(workDir, "20240301_4501234567_0.pdf")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
}

func TestRunCommandCreatesWorkDir(t *testing.T) {
	base := t.TempDir()
	configPath := writeConfig(t, base, "work_dir: inbox\n")

	if _, _, err := executeRoot(t, "run", "--config", configPath); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	info, err := os.Stat(filepath.Join(base, "inbox"))
	if err != nil || !info.IsDir() {
		t.Fatalf("working directory not created: %v", err)
	}
}

func TestRunCommandKeepsGoingOnBrokenFiles(t *testing.T) {
	base := t.TempDir()
	configPath := writeConfig(t, base, "log:\n  level: error\n")
	if err := os.WriteFile(filepath.Join(base, "broken.pdf"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeRoot(t, "--config", configPath, "--dir", base)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(stdout, "File broken.pdf failed during normalize") {
		t.Errorf("stdout missing failure line:\n%s", stdout)
	}
}

func TestRunCommandRejectsBadConfig(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "ocr:\n  engine: abbyy\n")
	if _, _, err := executeRoot(t, "--config", configPath, "--dir", t.TempDir()); err == nil {
		t.Fatal("expected config error")
	}
}
