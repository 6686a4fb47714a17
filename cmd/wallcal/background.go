package main

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/wallcal/blobfield"
	"github.com/lixenwraith/wallcal/core"
	"github.com/lixenwraith/wallcal/frame"
	"github.com/lixenwraith/wallcal/terminal"
)

func newBackgroundCmd(a *app) *cobra.Command {
	var (
		fps           int
		supersample   int
		seed          uint64
		reducedMotion bool
	)

	cmd := &cobra.Command{
		Use:   "background",
		Short: "Animate the blob field in the terminal (q, Esc or Ctrl-C quits)",
		RunE: func(cmd *cobra.Command, args []string) error {
			bg := &a.cfg.Background
			if cmd.Flags().Changed("fps") {
				bg.FPS = fps
			}
			if cmd.Flags().Changed("supersample") {
				bg.Supersample = supersample
			}
			if cmd.Flags().Changed("seed") {
				bg.Seed = seed
			}
			if cmd.Flags().Changed("reduced-motion") {
				bg.ReducedMotion = reducedMotion
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if !terminal.IsTerminal(os.Stdout) {
				return terminal.ErrNotTerminal
			}
			return a.runBackground(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "frame rate")
	cmd.Flags().IntVar(&supersample, "supersample", 0, "raster pixels per cell column")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "blob seed, 0 picks a random field")
	cmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "draw one static frame")
	return cmd
}

func (a *app) runBackground(ctx context.Context) error {
	color, err := a.background()
	if err != nil {
		return err
	}

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer func() {
		core.SetCrashHook(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg := a.cfg.Background
	loop := frame.NewLoop(cfg.FrameInterval())
	loop.Start()
	defer loop.Stop()

	host := terminal.NewHost(screen, loop)

	var src blobfield.Source
	if cfg.Seed != 0 {
		src = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	anim := blobfield.New(blobfield.Options{
		Surface:       terminal.NewSurface(screen, color, cfg.Supersample),
		Scheduler:     loop,
		Resize:        host,
		Rand:          src,
		ReducedMotion: cfg.ReducedMotion,
		Logger:        log.Default(),
	})
	anim.Start()
	defer anim.Stop()

	log.Printf("background: running at %v per frame, reduced motion %v", cfg.FrameInterval(), cfg.ReducedMotion)

	err = host.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Printf("background: stopped after %d frames", anim.Frames())
	return err
}
