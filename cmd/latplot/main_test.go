package main

import (
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeSamples(t *testing.T, dir, name string, vals []uint32) string {
	t.Helper()
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.NativeEndian.PutUint32(b[i*4:], v)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestValidateArgsRequiresInput(t *testing.T) {
	if err := validateArgs(nil); err == nil {
		t.Fatal("expected error for zero input files")
	}
	if err := validateArgs([]string{}); err == nil {
		t.Fatal("expected error for empty input list")
	}
	if err := validateArgs([]string{"a.bin"}); err != nil {
		t.Fatalf("unexpected error for one file: %v", err)
	}
	if err := validateArgs([]string{"a.bin", "b.bin"}); err != nil {
		t.Fatalf("unexpected error for two files: %v", err)
	}
}

func TestExportChartPNGNilViewer(t *testing.T) {
	// Must return without touching the window when viewer state is absent.
	exportChartPNG(nil, nil, "line.png")
	exportChartPNG(&viewer{}, nil, "line.png")
}

func TestLoadFigureOrderAndSkip(t *testing.T) {
	dir := t.TempDir()
	p1 := writeSamples(t, dir, "a.bin", []uint32{10, 20, 30, 40})
	short := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(short, []byte{1, 2}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	p2 := writeSamples(t, dir, "b.bin", []uint32{5, 6, 7})

	fig, skipped, err := loadFigure([]string{p1, short, p2})
	if err != nil {
		t.Fatalf("loadFigure: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped file got %d", skipped)
	}
	paths := fig.Paths()
	if len(paths) != 2 || paths[0] != p1 || paths[1] != p2 {
		t.Fatalf("unexpected figure paths: %v", paths)
	}
}

func TestLoadFigureUnreadableIsFatal(t *testing.T) {
	dir := t.TempDir()
	good := writeSamples(t, dir, "a.bin", []uint32{1, 2, 3, 4})
	if _, _, err := loadFigure([]string{good, filepath.Join(dir, "absent.bin")}); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestLoadFigureAllSkipped(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(short, []byte{9}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	fig, skipped, err := loadFigure([]string{short})
	if err != nil {
		t.Fatalf("loadFigure: %v", err)
	}
	if skipped != 1 || fig.Len() != 0 {
		t.Fatalf("expected everything skipped, got skipped=%d len=%d", skipped, fig.Len())
	}
}

func TestRunExportMode(t *testing.T) {
	dir := t.TempDir()
	p := writeSamples(t, dir, "a.bin", []uint32{10, 20, 30, 40, 50, 60, 70, 80})
	fig, _, err := loadFigure([]string{p})
	if err != nil {
		t.Fatalf("loadFigure: %v", err)
	}
	outDir := filepath.Join(dir, "out")
	if err := runExportMode(fig, outDir); err != nil {
		t.Fatalf("runExportMode: %v", err)
	}
	for _, name := range []string{"line.png", "histogram.png"} {
		f, err := os.Open(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
			t.Fatalf("%s: empty image", name)
		}
	}
}
