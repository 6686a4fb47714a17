package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/wallcal/calendar"
	"github.com/lixenwraith/wallcal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, baseURL, lang string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar page and poster API",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := &a.cfg.Server
			if cmd.Flags().Changed("addr") {
				sc.Addr = addr
			}
			if cmd.Flags().Changed("base-url") {
				sc.BaseURL = baseURL
			}
			if cmd.Flags().Changed("lang") {
				sc.Language = lang
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			srv, err := a.newServer()
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public URL prefix for generated links")
	cmd.Flags().StringVar(&lang, "lang", "", "default page language")
	return cmd
}

func (a *app) newServer() (*server.Server, error) {
	pal, err := a.palette()
	if err != nil {
		return nil, err
	}
	bg, err := a.background()
	if err != nil {
		return nil, err
	}

	// Access logs go to stderr unless the debug log file is active
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if a.logFile != nil {
		logger = log.Default()
	}

	sc, snap := a.cfg.Server, a.cfg.Snapshot
	return server.New(server.Options{
		Addr:            sc.Addr,
		BaseURL:         sc.BaseURL,
		Language:        calendar.MatchLanguage(sc.Language),
		ShutdownTimeout: sc.ShutdownTimeout,
		Palette:         pal,
		Background:      bg,
		Snapshot: server.SnapshotLimits{
			Width:      snap.Width,
			Height:     snap.Height,
			PixelRatio: snap.PixelRatio,
			MaxFrames:  snap.MaxFrames,
		},
		Logger: logger,
	}), nil
}
