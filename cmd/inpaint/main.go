// Command inpaint fills the masked region of an image by patch-based
// inpainting.
//
// Usage:
//
//	inpaint -image photo.png -mask hole.png -out filled.png [-config inpaint.yaml]
//
// Mask pixels equal to hole_value (default 255) are filled; pixels equal to
// valid_value (default 0) are kept. PNG, JPEG, TIFF and BMP inputs are read,
// the result is written as PNG. SIGINT stops the run between two fills and
// still writes the partial result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/inpaint"
	"github.com/katalvlaran/inpaint/raster"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		log.Error().Err(err).Msg("inpaint failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("inpaint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	imagePath := fs.String("image", "", "input image path")
	maskPath := fs.String("mask", "", "hole mask path")
	outPath := fs.String("out", "", "output PNG path")
	configPath := fs.String("config", "", "optional YAML config file")
	depthPath := fs.String("depth", "", "optional depth map, read as gray levels")
	debug := fs.Bool("debug", false, "debug logging")
	human := fs.Bool("human", false, "console instead of JSON logs")
	maxIter := fs.Int("max-iter", 0, "stop after this many fills (0: no limit)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *imagePath == "" || *maskPath == "" || *outPath == "" {
		return errors.New("-image, -mask and -out are required")
	}

	// Logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *debug {
		logger = logger.Level(zerolog.DebugLevel)
	}
	if *human {
		logger = logger.Output(zerolog.ConsoleWriter{Out: stderr})
	}
	log.Logger = logger

	// Config
	cfg := inpaint.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = inpaint.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	// Inputs
	start := time.Now()
	src, err := decode(*imagePath)
	if err != nil {
		return err
	}
	maskImg, err := decode(*maskPath)
	if err != nil {
		return err
	}
	im, err := raster.FromImage(src)
	if err != nil {
		return err
	}
	mask, err := gridgraph.FromImage(maskImg, cfg.GridOptions())
	if err != nil {
		return err
	}
	if *depthPath != "" {
		if im, err = withDepth(im, *depthPath); err != nil {
			return err
		}
		cfg.DepthChannel = im.Channels - 1
	}

	ip, err := inpaint.New(im, mask, cfg,
		inpaint.WithLogger(logger),
		inpaint.WithMaxIterations(*maxIter),
	)
	if err != nil {
		return err
	}

	// Fill
	n, runErr := ip.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if err := encode(*outPath, ip.OutputImage()); err != nil {
		return err
	}
	logger.Info().
		Int64("duration(ms)", time.Since(start).Milliseconds()).
		Int("fills", n).
		Int("holes_left", ip.RemainingHoles()).
		Stringer("state", ip.State()).
		Str("out", *outPath).
		Msg("done")
	return runErr
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func withDepth(im *raster.Image, path string) (*raster.Image, error) {
	d, err := decode(path)
	if err != nil {
		return nil, err
	}
	plane, err := raster.FromGray(d)
	if err != nil {
		return nil, err
	}
	return im.AppendChannel(plane)
}

func encode(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
