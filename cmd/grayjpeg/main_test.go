package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vearutop/grayjpeg"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.jpg")
	bm, err := grayjpeg.NewBitmap(32, 24)
	if err != nil {
		t.Fatal(err)
	}
	for i := range bm.Pix {
		bm.Pix[i] = float32(i%32) / 31
	}
	if err := grayjpeg.WriteFile(in, bm); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	raw := filepath.Join(dir, "in.gfb")

	for _, tc := range []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
		out    string // File expected to exist afterwards.
	}{
		{name: "no args", args: nil, code: 2, stderr: "Usage: grayjpeg"},
		{name: "unknown command", args: []string{"convert"}, code: 2, stderr: "Usage: grayjpeg"},
		{name: "bad flag", args: []string{"info", "-nope"}, code: 1, stderr: "error:"},
		{name: "info missing input", args: []string{"info"}, code: 1, stderr: "missing required arguments"},
		{name: "info", args: []string{"info", "-in", in}, code: 0, stdout: "32x24, 8-bit, 1 components\n"},
		{name: "info nonexistent", args: []string{"info", "-in", filepath.Join(dir, "none.jpg")}, code: 1, stderr: "error:"},
		{
			name: "roundtrip", code: 0, out: filepath.Join(dir, "rt.jpg"),
			args: []string{"roundtrip", "-in", in, "-out", filepath.Join(dir, "rt.jpg"), "-q", "90", "-round"},
		},
		{name: "roundtrip missing output", args: []string{"roundtrip", "-in", in}, code: 1, stderr: "missing required arguments"},
		{
			name: "resize", code: 0, out: filepath.Join(dir, "small.jpg"),
			args: []string{"resize", "-in", in, "-out", filepath.Join(dir, "small.jpg"), "-w", "16", "-interp", "lanczos3"},
		},
		{
			name: "resize bad interpolation", code: 1, stderr: "error:",
			args: []string{"resize", "-in", in, "-out", filepath.Join(dir, "bad.jpg"), "-w", "16", "-interp", "cubic-ish"},
		},
		{name: "resize missing size", args: []string{"resize", "-in", in, "-out", filepath.Join(dir, "x.jpg")}, code: 1, stderr: "missing required arguments"},
		{name: "dump", args: []string{"dump", "-in", in, "-out", raw}, code: 0, out: raw},
		{
			name: "restore", code: 0, out: filepath.Join(dir, "restored.jpg"),
			args: []string{"restore", "-in", raw, "-out", filepath.Join(dir, "restored.jpg")},
		},
		{name: "restore not raw", args: []string{"restore", "-in", in, "-out", filepath.Join(dir, "r.jpg")}, code: 1, stderr: "error:"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != tc.code {
				t.Fatalf("exit code %d, want %d, stderr: %s", code, tc.code, stderr.String())
			}
			if tc.stdout != "" && stdout.String() != tc.stdout {
				t.Fatalf("unexpected stdout %q, want %q", stdout.String(), tc.stdout)
			}
			if !strings.Contains(stderr.String(), tc.stderr) {
				t.Fatalf("stderr %q does not contain %q", stderr.String(), tc.stderr)
			}
			if tc.code == 0 && stderr.Len() != 0 {
				t.Fatalf("unexpected stderr %q", stderr.String())
			}
			if tc.out == "" {
				return
			}
			if _, err := os.Stat(tc.out); err != nil {
				t.Fatalf("output missing: %v", err)
			}
		})
	}

	small, err := grayjpeg.ReadFile(filepath.Join(dir, "small.jpg"))
	if err != nil {
		t.Fatalf("read resized: %v", err)
	}
	if small.Width != 16 || small.Height != 12 {
		t.Fatalf("unexpected resized size %dx%d", small.Width, small.Height)
	}
	restored, err := grayjpeg.ReadFile(filepath.Join(dir, "restored.jpg"))
	if err != nil {
		t.Fatalf("read restored: %v", err)
	}
	if restored.Width != 32 || restored.Height != 24 {
		t.Fatalf("unexpected restored size %dx%d", restored.Width, restored.Height)
	}
}
