package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/wallcal/blobfield"
)

func newSnapshotCmd(a *app) *cobra.Command {
	var (
		width, height int
		ratio         float64
		frames        int
		seed          uint64
		static        bool
		output        string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the blob field headlessly to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.cfg.Snapshot
			if !cmd.Flags().Changed("width") {
				width = snap.Width
			}
			if !cmd.Flags().Changed("height") {
				height = snap.Height
			}
			if !cmd.Flags().Changed("ratio") {
				ratio = snap.PixelRatio
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Background.Seed
			}
			if !cmd.Flags().Changed("static") {
				static = a.cfg.Background.ReducedMotion
			}
			if width < 1 || height < 1 || ratio <= 0 {
				return fmt.Errorf("invalid snapshot size %dx%d at ratio %v", width, height, ratio)
			}
			if frames < 1 {
				frames = 1
			}
			if snap.MaxFrames > 0 && frames > snap.MaxFrames {
				frames = snap.MaxFrames
			}

			bg, err := a.background()
			if err != nil {
				return err
			}

			surface := blobfield.Snapshot(blobfield.SnapshotOptions{
				Width:      float64(width),
				Height:     float64(height),
				PixelRatio: ratio,
				Frames:     frames,
				Seed:       seed,
				Static:     static,
				Logger:     log.Default(),
			})

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return surface.EncodePNG(w, bg)
			})
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&width, "width", 0, "logical width")
	fl.IntVar(&height, "height", 0, "logical height")
	fl.Float64Var(&ratio, "ratio", 0, "device pixels per logical pixel")
	fl.IntVar(&frames, "frames", 1, "frames to simulate before capture")
	fl.Uint64Var(&seed, "seed", 0, "blob seed, 0 picks a random field")
	fl.BoolVar(&static, "static", false, "capture the reduced-motion frame")
	fl.StringVarP(&output, "output", "o", "background.png", "output file, - for stdout")
	return cmd
}

// writeOutput encodes into path, or stdout for "-"
func writeOutput(stdout io.Writer, path string, encode func(io.Writer) error) error {
	if path == "-" {
		return encode(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
