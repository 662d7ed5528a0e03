// Command mcubes extracts an isosurface of a procedural field with a
// parallel slice pipeline and writes it as OBJ and a PNG preview.
//
// Usage:
//
//	mcubes -field noise -slices 8 -resolution 6 -obj surface.obj -png surface.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mcubes"
	"github.com/gogpu/mcubes/field"
	"github.com/gogpu/mcubes/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("mcubes: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		mcubes.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer mcubes.SetLogger(nil)
	}

	f, err := field.Lookup(cfg.Field)
	if err != nil {
		return err
	}
	opts := []mcubes.Option{mcubes.WithField(f)}
	if cfg.Cache > 0 {
		opts = append(opts, mcubes.WithGeometryCache(cfg.Cache))
	}
	if cfg.Instant {
		opts = append(opts, mcubes.WithInstantUpdate())
	}

	o, err := mcubes.New(cfg.Slices, opts...)
	if err != nil {
		return err
	}
	defer o.Close()

	ctx := context.Background()
	if d, _ := cfg.timeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	start := time.Now()
	o.Update(cfg.params())
	if err := o.Wait(ctx); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	elapsed := time.Since(start)

	merged, err := o.Merged()
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for _, in := range o.Info() {
		p.Fprintf(stdout, "slice %d  z[%d,%d)  %d vertices  %d triangles  worker %s\n",
			in.Index, in.ZStart, in.ZEnd, in.Vertices, in.Triangles, in.Worker)
	}
	p.Fprintf(stdout, "total  %d vertices  %d triangles  in %v\n",
		merged.NumVertices(), merged.NumPrimitives(), elapsed.Round(time.Millisecond))

	if cfg.OBJ != "" {
		if err := o.SaveOBJ(cfg.OBJ); err != nil {
			return err
		}
		p.Fprintf(stdout, "wrote %s\n", cfg.OBJ)
	}

	if cfg.PNG != "" {
		opt := render.DefaultPreviewOptions()
		opt.Width, opt.Height = cfg.Size, cfg.Size
		opt.Caption = p.Sprintf("%s  %d slices  %d triangles", cfg.Field, cfg.Slices, merged.NumPrimitives())
		img, err := render.RenderPreview(merged, opt)
		if err != nil {
			return err
		}
		if err := render.SavePNG(cfg.PNG, img); err != nil {
			return err
		}
		p.Fprintf(stdout, "wrote %s\n", cfg.PNG)
	}
	return nil
}

// parseArgs builds the configuration from an optional -config file and
// the flags set explicitly in args.
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	def := defaultConfig()
	fs := flag.NewFlagSet("mcubes", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "JSON config file")
		slices     = fs.Int("slices", def.Slices, "number of slices and workers")
		resolution = fs.Int("resolution", def.Resolution, "cells per axis exponent (2<<r), 1..7")
		zoom       = fs.Float64("zoom", float64(def.Zoom), "magnification; the volume edge is 2/zoom")
		iso        = fs.Float64("iso", float64(def.Iso), "isovalue")
		pos        = fs.String("pos", "0,0,0", "viewer position x,y,z in the field")
		fieldName  = fs.String("field", def.Field, "field: sphere, noise or gyroid")
		obj        = fs.String("obj", "", "write the surface as OBJ")
		png        = fs.String("png", "", "write a PNG preview")
		size       = fs.Int("size", def.Size, "preview size in pixels")
		cacheSize  = fs.Int("cache", 0, "geometry cache entries per slice (0 disables)")
		instant    = fs.Bool("instant", false, "refresh slices as they finish")
		timeout    = fs.String("timeout", def.Timeout, "give up after this long")
		verbose    = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return cfg, err
		}
	}

	var perr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "slices":
			cfg.Slices = *slices
		case "resolution":
			cfg.Resolution = *resolution
		case "zoom":
			cfg.Zoom = float32(*zoom)
		case "iso":
			cfg.Iso = float32(*iso)
		case "pos":
			p, err := parsePos(*pos)
			if err != nil {
				perr = err
			}
			cfg.Pos = p
		case "field":
			cfg.Field = *fieldName
		case "obj":
			cfg.OBJ = *obj
		case "png":
			cfg.PNG = *png
		case "size":
			cfg.Size = *size
		case "cache":
			cfg.Cache = *cacheSize
		case "instant":
			cfg.Instant = *instant
		case "timeout":
			cfg.Timeout = *timeout
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if perr != nil {
		return cfg, perr
	}
	return cfg, cfg.validate()
}
