// SPDX-License-Identifier: EPL-2.0

// Command sampleprep renders source audio into the Elements sample
// files a card needs: nine wavetables cut from one concatenated source
// and a noise sample, all mono 16-bit at 48 kHz.
//
//	sampleprep -wavetables tables.wav -noise noise.ogg -out card/elements
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/samplebank"
	"github.com/ik5/samplebank/audio"
	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/formats"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sampleprep:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sampleprep", flag.ContinueOnError)
	var (
		tablesPath = fs.String("wavetables", "", "concatenated wavetable source (wav, aiff, mp3, ogg)")
		noisePath  = fs.String("noise", "", "noise source (wav, aiff, mp3, ogg)")
		outDir     = fs.String("out", filepath.Join("samples", catalog.ElementsFolder), "output folder")
		force      = fs.Bool("force", false, "overwrite existing files")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tablesPath == "" || *noisePath == "" {
		fs.Usage()
		return errors.New("-wavetables and -noise are required")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg := formats.DefaultRegistry()
	cat := catalog.Elements()

	tables, err := render(reg, *tablesPath, logger)
	if err != nil {
		return err
	}
	if len(tables) != cat.SegmentFrames() {
		logger.Warn("sampleprep: wavetable source length differs from the boundary table",
			"samples", len(tables), "want", cat.SegmentFrames())
	}

	noise, err := render(reg, *noisePath, logger)
	if err != nil {
		return err
	}
	if len(noise) != cat.FinalFrames() {
		logger.Warn("sampleprep: noise source length differs from the catalog",
			"samples", len(noise), "want", cat.FinalFrames())
	}

	files, err := samplebank.Prepare(cat, tables, noise)
	if err != nil {
		return err
	}

	written, err := samplebank.WriteFiles(*outDir, files, catalog.ElementsSampleRate, *force)
	for _, path := range written {
		logger.Info("sampleprep: wrote", "path", path)
	}
	if err != nil {
		return err
	}
	if skipped := len(files) - len(written); skipped > 0 {
		logger.Info("sampleprep: kept existing files, use -force to regenerate", "skipped", skipped)
	}
	return nil
}

func render(reg *audio.Registry, path string, logger *slog.Logger) ([]int16, error) {
	dec, ok := reg.ForFile(path)
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	logger.Debug("sampleprep: decoding", "path", path, "rate", src.SampleRate(), "channels", src.Channels())

	pcm, err := samplebank.RenderMono16(src, catalog.ElementsSampleRate, max(src.BufSize(), 4096))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}
	return pcm, nil
}
