package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/wallcal/calendar"
	"github.com/lixenwraith/wallcal/config"
	"github.com/lixenwraith/wallcal/render"
)

// app carries state shared by subcommands
type app struct {
	configPath string
	debug      bool

	cfg     *config.Config
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "wallcal",
		Short:         "Wallpaper calendars with an animated blob field background",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = a.debug
			}
			a.cfg = cfg
			a.logFile = setupLogging(cfg.Debug)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logFile != nil {
				a.logFile.Close()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "write debug log to "+logDir+"/"+logFileName)

	root.AddCommand(
		newBackgroundCmd(a),
		newServeCmd(a),
		newLinkCmd(a),
		newSnapshotCmd(a),
		newPosterCmd(a),
	)
	return root
}

// background returns the configured page background color
func (a *app) background() (render.RGB, error) {
	bg, err := calendar.ParseHex(a.cfg.Background.Color)
	if err != nil {
		return render.RGB{}, fmt.Errorf("background color: %w", err)
	}
	return bg, nil
}

// palette returns the configured poster palette
func (a *app) palette() (calendar.Palette, error) {
	p := a.cfg.Palette
	return calendar.ParsePalette(p.Background, p.Lived, p.Future, p.Current)
}
