package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vijay06092004/digital-signal-processing/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeCapture(t *testing.T, n int) string {
	t.Helper()

	var b strings.Builder
	for _, v := range testutil.RawCodes(5, 40_000_000, 40_000, n) {
		fmt.Fprintf(&b, "%d\n", v)
	}

	path := filepath.Join(t.TempDir(), "adc.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunCommand(t *testing.T) {
	input := writeCapture(t, 200)
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, "run", "-i", input, "-o", outDir, "--log-level", "error")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}

	for _, want := range []string{"Samples: 200", "kalman_estimated", "fir_blackman_weights", "Dominant bin", "Spectral centroid"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report lacks %q:\n%s", want, out)
		}
	}

	for _, name := range []string{"normalized.txt", "weights.txt", "fft.txt", "wavelet_weights.txt", "fir_hamming.txt"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestRunCommandCSVFromConfig(t *testing.T) {
	input := writeCapture(t, 64)
	outDir := filepath.Join(t.TempDir(), "csv")

	cfgPath := filepath.Join(t.TempDir(), "adcfilter.yaml")
	cfg := fmt.Sprintf("log_level: error\ninput:\n  path: %s\noutput:\n  dir: %s\n  csv: true\nfilter:\n  shapes: [rect]\n", input, outDir)

	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if out, err := execute(t, "run", "-c", cfgPath); err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "kalman_fixed.csv"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(data), "kalman_fixed\n") {
		t.Fatalf("missing header: %q", data[:min(len(data), 40)])
	}

	if _, err := os.Stat(filepath.Join(outDir, "fir_hamming.csv")); !os.IsNotExist(err) {
		t.Fatalf("only the configured shapes should run: %v", err)
	}
}

func TestRunCommandMissingInput(t *testing.T) {
	_, err := execute(t, "run", "-i", filepath.Join(t.TempDir(), "nope.txt"), "--no-output", "--log-level", "error")
	if err == nil || !strings.Contains(err.Error(), "source unavailable") {
		t.Fatalf("err=%v, want source unavailable", err)
	}
}

func TestWindowsCommand(t *testing.T) {
	out, err := execute(t, "windows", "--size", "10", "hann", "rect")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "hanning") || !strings.Contains(out, "rect") || strings.Contains(out, "blackman") {
		t.Fatalf("unexpected table:\n%s", out)
	}

	out, err = execute(t, "windows", "--coefficients", "--size", "3", "rect")
	if err != nil {
		t.Fatal(err)
	}

	if strings.TrimSpace(out) != "rect [1.000000 1.000000 1.000000]" {
		t.Fatalf("got %q", out)
	}

	if _, err := execute(t, "windows", "kaiser"); err == nil {
		t.Fatal("expected error for unknown shape")
	}
}

func TestWindowsList(t *testing.T) {
	out, err := execute(t, "windows", "--list")
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(out, "\n"); got != 5 {
		t.Fatalf("listed %d shapes, want 5:\n%s", got, out)
	}
}
