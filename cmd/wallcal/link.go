package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/wallcal/calendar"
)

// errIncomplete is returned when the form does not yet produce a poster link
var errIncomplete = errors.New("form incomplete")

// formFlags mirrors the three calendar forms of the page
type formFlags struct {
	kind     string
	birth    string
	lifespan int
	device   string
	width    int
	height   int
	goal     string
	start    string
	deadline string
	baseURL  string
	lang     string
}

func (f *formFlags) register(cmd *cobra.Command) {
	now := time.Now()
	fl := cmd.Flags()
	fl.StringVarP(&f.kind, "type", "t", string(calendar.KindLife), "calendar type: life, year or goal")
	fl.StringVar(&f.birth, "birth", "1990-01-01", "birth date YYYY-MM-DD")
	fl.IntVar(&f.lifespan, "lifespan", calendar.DefaultLifespan, "expected lifespan in years")
	fl.StringVar(&f.device, "device", calendar.DefaultDevice, "device preset WxH or custom")
	fl.IntVar(&f.width, "width", calendar.DefaultWidth, "custom device width")
	fl.IntVar(&f.height, "height", calendar.DefaultHeight, "custom device height")
	fl.StringVar(&f.goal, "goal", "", "goal name")
	fl.StringVar(&f.start, "start", calendar.DateOf(now).String(), "goal start YYYY-MM-DD")
	fl.StringVar(&f.deadline, "deadline", calendar.DateOf(now.AddDate(0, 3, 0)).String(), "goal deadline YYYY-MM-DD")
	fl.StringVar(&f.baseURL, "base-url", "", "link prefix, defaults to the configured base or http://localhost:8080")
	fl.StringVar(&f.lang, "lang", "", "placeholder language")
}

// link builds the link the page would show for these inputs
func (f *formFlags) link(a *app) (calendar.Link, error) {
	base := f.baseURL
	if base == "" {
		base = a.cfg.Server.BaseURL
	}
	if base == "" {
		base = "http://localhost:8080"
	}
	lang := f.lang
	if lang == "" {
		lang = a.cfg.Server.Language
	}
	b := calendar.NewBuilder(base, calendar.MatchLanguage(lang))

	switch calendar.Kind(strings.ToLower(f.kind)) {
	case calendar.KindLife:
		return b.LifeURL(calendar.LifeForm{
			Birth:    splitDate(f.birth),
			Lifespan: f.lifespan,
			Device:   f.device,
			Width:    f.width,
			Height:   f.height,
		}), nil
	case calendar.KindYear:
		return b.YearURL(calendar.YearForm{Device: f.device, Width: f.width, Height: f.height}), nil
	case calendar.KindGoal:
		return b.GoalURL(calendar.GoalForm{
			Name:     f.goal,
			Start:    splitDate(f.start),
			Deadline: splitDate(f.deadline),
			Device:   f.device,
			Width:    f.width,
			Height:   f.height,
		}), nil
	default:
		return calendar.Link{}, fmt.Errorf("%w: %q", calendar.ErrUnknownKind, f.kind)
	}
}

// request resolves the flags into the poster request the link encodes
func (f *formFlags) request(a *app) (calendar.Request, error) {
	l, err := f.link(a)
	if err != nil {
		return calendar.Request{}, err
	}
	if !l.Valid {
		return calendar.Request{}, errIncomplete
	}
	u, err := url.Parse(l.URL)
	if err != nil {
		return calendar.Request{}, err
	}
	return calendar.ParseRequest(u.Query())
}

// splitDate turns YYYY-MM-DD into form fields; malformed input stays raw so validation rejects it
func splitDate(s string) calendar.Fields {
	parts := strings.SplitN(s, "-", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return calendar.ClampFields(calendar.Fields{Year: parts[0], Month: parts[1], Day: parts[2]})
}

func newLinkCmd(a *app) *cobra.Command {
	var f formFlags

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the poster link for the given form inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := f.link(a)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.URL)
			if !l.Valid {
				return errIncomplete
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
