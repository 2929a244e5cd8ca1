package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const runTimeout = 30 * time.Second

// TestEndToEnd drives a built binary. Build it first and point
// YEARGRID_BIN at it, e.g. go build -o bin/yeargrid ./cmd/yeargrid.
func TestEndToEnd(t *testing.T) {
	bin := os.Getenv("YEARGRID_BIN")
	if bin == "" {
		t.Skip("YEARGRID_BIN not set")
	}
	if _, err := os.Stat(bin); err != nil {
		t.Fatalf("binary not found at %s: %v", bin, err)
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	output := filepath.Join(tempDir, "out", "wall.png")
	configPath := filepath.Join(tempDir, "config.yaml")

	config := fmt.Sprintf(`data_dir: %q
output: %q
apply_wallpaper: false
interactive: never
screen:
  width: 1280
  height: 800
  taskbar_safe: 40
`, dataDir, output)
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "YEARGRID_") && !strings.HasPrefix(e, "HOME=") {
			env = append(env, e)
		}
	}
	env = append(env,
		"HOME="+tempDir,
		"YEARGRID_CONFIG="+configPath,
		"YEARGRID_YEAR=2026",
	)

	run := func(args ...string) string {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		cmd := exec.CommandContext(ctx, bin, args...)
		cmd.Env = env
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			t.Fatalf("yeargrid %v failed: %v\nstdout: %s\nstderr: %s", args, err, stdout.String(), stderr.String())
		}
		return stdout.String()
	}

	// 1. First run: no checkpoints yet, editor is skipped without a terminal
	out := run()
	if !strings.Contains(out, "Wallpaper updated successfully.") {
		t.Errorf("missing completion message in %q", out)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("wallpaper not written: %v", err)
	}
	cfg, err := png.DecodeConfig(f)
	f.Close()
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 1280 || cfg.Height != 800 {
		t.Errorf("expected 1280x800, got %dx%d", cfg.Width, cfg.Height)
	}

	// 2. Seed datasets, including a malformed line, and run again
	checkpoints := "2099-12-31|Year end\nnot a date|Broken\n"
	if err := os.WriteFile(filepath.Join(dataDir, "checkpoints.txt"), []byte(checkpoints), 0644); err != nil {
		t.Fatal(err)
	}
	out = run()
	if !strings.Contains(out, "Year end") {
		t.Errorf("expected nearest checkpoint in summary, got %q", out)
	}

	// 3. Version flag
	if out := run("--version"); !strings.Contains(out, "v") {
		t.Errorf("unexpected version output %q", out)
	}
}
