package wavefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-modwave/dsp/bitcode"
	"github.com/cwbudde/algo-modwave/dsp/modwave"
)

func generate(t *testing.T, code string, steps int) *modwave.WaveformSet {
	t.Helper()
	seq, _, err := bitcode.Parse(code)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", code, err)
	}
	ws, err := modwave.NewGenerator(modwave.WithSteps(steps)).Generate(seq)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return ws
}

func TestWriteTable(t *testing.T) {
	ws := generate(t, "1", 2)

	var sb strings.Builder
	if err := Write(&sb, ws); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	want := []string{
		"# t [cycle] AM          FM          PM",
		"+0.00000000 +0.00000000 +0.00000000 +0.00000000",
		"+0.50000000 +0.00000000 -0.00000000 +0.00000000",
		"# Created with algo-modwave",
	}

	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d\n%s", len(lines), len(want), sb.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteRowCount(t *testing.T) {
	ws := generate(t, "d_12", 10)

	var sb strings.Builder
	if err := Write(&sb, ws); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// header + N*steps rows + footer
	if want := 1 + 8*10 + 1; len(lines) != want {
		t.Fatalf("line count = %d, want %d", len(lines), want)
	}
}

func TestWriteRejectsEmpty(t *testing.T) {
	var sb strings.Builder

	if err := Write(&sb, nil); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("Write(nil) error = %v, want ErrEmptySet", err)
	}
	if err := Write(&sb, &modwave.WaveformSet{}); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("Write(empty) error = %v, want ErrEmptySet", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("writer received %d bytes on failure", sb.Len())
	}
}

func TestWriteRejectsMismatchedLengths(t *testing.T) {
	ws := generate(t, "1", 4)
	ws.PM = ws.PM[:2]

	var sb strings.Builder
	if err := Write(&sb, ws); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Write() error = %v, want ErrLengthMismatch", err)
	}
}

func TestSave(t *testing.T) {
	ws := generate(t, "101", 5)
	filename := filepath.Join(t.TempDir(), "wave_101.txt")

	if err := Save(ws, filename); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# t [cycle]") {
		t.Fatalf("file does not start with header: %q", string(data[:20]))
	}
}

func TestSaveRejectsEmptyFilename(t *testing.T) {
	ws := generate(t, "1", 2)
	if err := Save(ws, ""); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("Save() error = %v, want ErrInvalidTarget", err)
	}
}
