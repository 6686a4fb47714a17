package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/wallcal/calendar"
)

func newPosterCmd(a *app) *cobra.Command {
	var (
		f      formFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Render a calendar poster to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(a)
			if err != nil {
				return err
			}
			pal, err := a.palette()
			if err != nil {
				return err
			}

			today := calendar.DateOf(time.Now())
			p, err := calendar.Render(req, today, pal)
			if err != nil {
				return err
			}

			if output == "" {
				output = req.Filename(today)
			}
			return writeOutput(cmd.OutOrStdout(), output, p.EncodePNG)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout; defaults to the download name")
	return cmd
}
