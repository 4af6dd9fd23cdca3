// Command cptinfo inspects a GMT cpt file and renders a preview colorbar.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/shaharkadmiel/cmaptools"
)

func main() {
	var (
		output  = flag.String("o", "preview.png", "output PNG file")
		width   = flag.Int("width", 512, "preview width in pixels")
		height  = flag.Int("height", 96, "preview height in pixels")
		vmin    = flag.Float64("vmin", math.NaN(), "stretch range minimum")
		vmax    = flag.Float64("vmax", math.NaN(), "stretch range maximum")
		hinge   = flag.Float64("hinge", math.NaN(), "override the hinge value")
		noHinge = flag.Bool("no-hinge", false, "read as a plain sequential palette")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.cpt\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cmaptools.SetLogger(log)

	var opts []cmaptools.Option
	if *noHinge {
		opts = append(opts, cmaptools.WithoutHinge())
	} else if !math.IsNaN(*hinge) {
		opts = append(opts, cmaptools.WithHinge(*hinge))
	}

	cm, err := cmaptools.ReadFile(flag.Arg(0), opts...)
	if err != nil {
		log.Error("read failed", "file", flag.Arg(0), "err", err)
		os.Exit(1)
	}

	switch c := cm.(type) {
	case *cmaptools.DynamicColormap:
		if !math.IsNaN(*vmin) && !math.IsNaN(*vmax) {
			if err := c.SetLimits(*vmin, *vmax); err != nil {
				log.Error("invalid range", "err", err)
				os.Exit(1)
			}
		}
		r := c.Range()
		log.Info("dynamic colormap",
			"name", c.Name(), "hinge", r.Hinge, "vmin", r.VMin, "vmax", r.VMax,
			"split_fraction", c.SplitFraction())
	case *cmaptools.Palette:
		lo, hi := c.Domain()
		log.Info("sequential palette", "name", c.Name(), "vmin", lo, "vmax", hi)
	}

	if err := cmaptools.SavePreviewPNG(*output, cm, *width, *height); err != nil {
		log.Error("preview failed", "err", err)
		os.Exit(1)
	}
	log.Info("preview saved", "file", *output, "size", fmt.Sprintf("%dx%d", *width, *height))
}
