// latplot entrypoint.
//
// Two modes:
//  1. Viewer mode (default): decode the input files, build both charts and
//     show them side by side in a window; the process blocks until the window
//     is closed.
//  2. Export mode (-export <dir>): render the same charts headlessly as PNGs
//     into a directory and exit without opening a window.
//
// Input files are flat binary dumps of native-order uint32 latency samples
// in microseconds. An unreadable file aborts the run before any window is
// shown; a file too short to hold a single sample is skipped with a warning.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/w23/latplot/src/logging"
	"github.com/w23/latplot/src/plotter"
	"github.com/w23/latplot/src/samples"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: latplot [flags] <file1> [file2 ...]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Input files are raw native-order uint32 latency samples in microseconds.\n\n")
	flag.PrintDefaults()
}

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	exportDir := flag.String("export", "", "Render charts as PNGs into this directory and exit (no window)")
	flag.Usage = usage
	flag.Parse()
	logging.SetLevel(*logLevel)

	files := flag.Args()
	if err := validateArgs(files); err != nil {
		fmt.Fprintf(os.Stderr, "latplot: %v\n", err)
		usage()
		os.Exit(2)
	}

	fig, skipped, err := loadFigure(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "latplot: %v\n", err)
		os.Exit(2)
	}
	if fig.Len() == 0 {
		fmt.Fprintf(os.Stderr, "latplot: no plottable input (%d file(s) skipped)\n", skipped)
		os.Exit(1)
	}

	if *exportDir != "" {
		if err := runExportMode(fig, *exportDir); err != nil {
			fmt.Fprintf(os.Stderr, "latplot: %v\n", err)
			os.Exit(1)
		}
		return
	}
	runViewer(fig)
}

// validateArgs checks the positional arguments before any file is touched.
// At least one input file is required.
func validateArgs(files []string) error {
	if len(files) == 0 {
		return errors.New("at least one input file is required")
	}
	return nil
}

// loadFigure processes the input files in argument order. An unreadable file
// is fatal; a file with zero complete samples is skipped with a warning and
// counted.
func loadFigure(files []string) (*plotter.Figure, int, error) {
	fig := plotter.New()
	skipped := 0
	for _, path := range files {
		err := fig.AddFile(path)
		switch {
		case err == nil:
		case errors.Is(err, samples.ErrNoSamples):
			logging.Warnf("%v; skipping", err)
			skipped++
		default:
			return nil, skipped, err
		}
	}
	return fig, skipped, nil
}

type viewer struct {
	app    fyne.App
	window fyne.Window
	fig    *plotter.Figure

	lineCanvas *canvas.Image
	histCanvas *canvas.Image
}

// runViewer opens the window and blocks until the user closes it.
func runViewer(fig *plotter.Figure) {
	a := app.NewWithID("com.w23.latplot")
	w := a.NewWindow("Rendering time")
	w.Resize(fyne.NewSize(1280, 520))

	v := &viewer{app: a, window: w, fig: fig}
	v.lineCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	v.lineCanvas.FillMode = canvas.ImageFillContain
	v.lineCanvas.SetMinSize(fyne.NewSize(600, 440))
	v.histCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	v.histCanvas.FillMode = canvas.ImageFillContain
	v.histCanvas.SetMinSize(fyne.NewSize(600, 440))

	w.SetContent(container.NewGridWithColumns(2, v.lineCanvas, v.histCanvas))
	buildMenus(v)
	v.redraw()

	// Redraw charts when the window width changes so they scale with it.
	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		prevW := 0
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := w.Canvas()
				if c == nil {
					continue
				}
				curW := int(c.Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(func() { v.redraw() })
				}
			}
		}
	}()

	w.ShowAndRun()
}

// chartSize sizes one chart to half the window width, with sane bounds.
func (v *viewer) chartSize() (int, int) {
	cw, ch := 600, 440
	if v.window != nil && v.window.Canvas() != nil {
		if half := int(v.window.Canvas().Size().Width/2) - 12; half > cw {
			cw = half
		}
	}
	return cw, ch
}

func (v *viewer) redraw() {
	cw, ch := v.chartSize()
	if img := v.fig.RenderLine(cw, ch); img != nil {
		v.lineCanvas.Image = img
		v.lineCanvas.Refresh()
	}
	if img := v.fig.RenderHistogram(cw, ch); img != nil {
		v.histCanvas.Image = img
		v.histCanvas.Refresh()
	}
}

func buildMenus(v *viewer) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Line Chart…", func() { exportChartPNG(v, v.lineCanvas, "line.png") }),
		fyne.NewMenuItem("Export Histogram…", func() { exportChartPNG(v, v.histCanvas, "histogram.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { v.window.Close() }),
	)
	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := v.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { v.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { v.window.Close() })
	}
}
