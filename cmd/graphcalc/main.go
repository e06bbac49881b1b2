package main

import (
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/vdobler/graphcalc"
	"github.com/vdobler/graphcalc/display"
	"github.com/vdobler/graphcalc/logger"
	"gonum.org/v1/plot/vg"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "YAML file with formulas, variables, ranges, size and output")
	formulas := pflag.String("formulas", "", "formulas to draw, separated by ';'")
	variables := pflag.String("variables", "", "variable definitions, separated by ';'")
	ranges := pflag.String("ranges", "", "X, Y and Z ranges, separated by ';'")
	width := pflag.Int("width", 0, "frame width in pixels")
	height := pflag.Int("height", 0, "frame height in pixels")
	output := pflag.String("output", "", "PNG file to write")
	fontSize := pflag.Float64("font-size", 10, "label font size in pixels")
	zoom := pflag.Int("zoom", 0, "zoom in (positive) or out (negative) by this many steps of √2")
	panX := pflag.Int("pan-x", 0, "move the picture right by this many pixels")
	panY := pflag.Int("pan-y", 0, "move the picture down by this many pixels")
	probe := pflag.String("probe", "", "print the values under pixel 'x,y'")
	devicePreview := pflag.String("device-preview", "", "PNG file showing the frame on an RGB565 device with status bar")
	deviceSize := pflag.String("device-size", "160x128", "device size for --device-preview")
	timeout := pflag.Duration("timeout", time.Minute, "give up if the frame is not ready in time")
	pflag.Parse()
	if pflag.NArg() != 0 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	ctx, cancelFn := context.WithTimeout(ctx, *timeout)
	defer cancelFn()
	logger.SetDefault(func() logger.Logger {
		return l
	})
	defer belt.Flush(ctx)

	cfg := graphcalc.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = graphcalc.LoadConfig(*configPath); err != nil {
			l.Fatal(err)
		}
	}
	overrideString := func(name string, dst *string, v string) {
		if pflag.CommandLine.Changed(name) {
			*dst = v
		}
	}
	overrideString("formulas", &cfg.Formulas, *formulas)
	overrideString("variables", &cfg.Variables, *variables)
	overrideString("ranges", &cfg.Ranges, *ranges)
	overrideString("output", &cfg.Output, *output)
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	l.Debugf("config: %#+v", cfg)

	style := graphcalc.DefaultStyle(vg.Length(*fontSize))
	in, err := cfg.Input()
	if err != nil {
		l.Fatal(err)
	}
	if *zoom != 0 || *panX != 0 || *panY != 0 {
		in, err = moveView(in, cfg, style, *zoom, *panX, *panY)
		if err != nil {
			l.Fatal(err)
		}
	}

	published := make(chan *graphcalc.OutputState, 1)
	r := graphcalc.NewRefresher(ctx, cfg.Width, cfg.Height, style)
	r.OnPublish = func(o *graphcalc.OutputState) {
		published <- o
	}
	if err := r.Request(ctx, in); err != nil {
		fmt.Fprintln(os.Stderr, r.ErrorText(ctx))
		os.Exit(1)
	}
	resultText, ok := r.ResultText(ctx)
	if !ok {
		logger.Warnf(ctx, "formulas cannot be evaluated as plain numbers")
	}
	fmt.Println(resultText)

	o, err := waitFrame(ctx, r, published)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *probe != "" {
		var px, py int
		if _, err := fmt.Sscanf(*probe, "%d,%d", &px, &py); err != nil {
			l.Fatalf("invalid --probe %q: %v", *probe, err)
		}
		fmt.Println(o.Probe(px, py))
	}

	if err := imgio.Save(cfg.Output, o.Image, imgio.PNGEncoder()); err != nil {
		l.Fatal(err)
	}
	logger.Infof(ctx, "wrote %s", cfg.Output)

	if *devicePreview != "" {
		var dw, dh int
		if _, err := fmt.Sscanf(*deviceSize, "%dx%d", &dw, &dh); err != nil || dw < 1 || dh < 1 {
			l.Fatalf("invalid --device-size %q", *deviceSize)
		}
		if err := writeDevicePreview(*devicePreview, o.Image, dw, dh, resultText); err != nil {
			l.Fatal(err)
		}
		logger.Infof(ctx, "wrote %s", *devicePreview)
	}
}

// moveView rewrites the ranges of in as dragging the picture by (dx, dy)
// pixels and then pressing a zoom button zoomSteps times would.
func moveView(
	in graphcalc.Input,
	cfg graphcalc.Config,
	style graphcalc.Style,
	zoomSteps, dx, dy int,
) (graphcalc.Input, error) {
	o, err := graphcalc.Prepare(in, cfg.Width, cfg.Height, style)
	if err != nil {
		return in, err
	}
	o.XRange = o.XRange.WithRange(o.XRange.DraggedBy(dx))
	o.YRange = o.YRange.WithRange(o.YRange.DraggedBy(-dy))
	ranges := o.Zoom(math.Pow(graphcalc.ZoomInRatio, float64(zoomSteps)))

	moved, err := graphcalc.ParseInput("", "", ranges)
	if err != nil {
		return in, err
	}
	in.Ranges = moved.Ranges
	return in, nil
}

func waitFrame(
	ctx context.Context,
	r *graphcalc.Refresher,
	published <-chan *graphcalc.OutputState,
) (*graphcalc.OutputState, error) {
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case o := <-published:
			return o, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
			if r.Passes(ctx) > 0 {
				if msg := r.ErrorText(ctx); msg != "" {
					return nil, fmt.Errorf("%s", msg)
				}
			}
		}
	}
}

func writeDevicePreview(path string, frame image.Image, w, h int, status string) error {
	fb := display.NewFramebuffer(w, h)
	screen := display.NewScreen(fb)
	if h <= screen.StatusHeight() {
		return fmt.Errorf("device height %d leaves no room for the frame", h)
	}
	scaled := transform.Resize(frame, w, h-screen.StatusHeight(), transform.Linear)
	fb.Present = func([]byte) error {
		return imgio.Save(path, fb.Image(), imgio.PNGEncoder())
	}
	return screen.Show(scaled, status, false)
}
