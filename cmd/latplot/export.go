package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"

	"github.com/w23/latplot/src/plotter"
)

// runExportMode renders both charts and writes them as PNGs under outDir.
// It runs headlessly without creating a UI window.
func runExportMode(fig *plotter.Figure, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	const w, h = 1100, 420
	toRender := []struct {
		name string
		fn   func(int, int) image.Image
	}{
		{"line.png", fig.RenderLine},
		{"histogram.png", fig.RenderHistogram},
	}
	for _, item := range toRender {
		img := item.fn(w, h)
		if img == nil {
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return nil
}

// exportChartPNG saves the currently displayed chart image via a save dialog.
func exportChartPNG(v *viewer, img *canvas.Image, defaultName string) {
	if v == nil || v.window == nil {
		return
	}
	if img == nil || img.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", v.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, img.Image)
	}, v.window)
	fs.SetFileName(defaultName)
	fs.Show()
}
