package calendar

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Kind selects the poster layout
type Kind string

const (
	KindLife Kind = "life"
	KindYear Kind = "year"
	KindGoal Kind = "goal"
)

// Image size bounds and defaults
const (
	MinSize       = 100
	MaxSize       = 5000
	DefaultWidth  = 1290
	DefaultHeight = 2796
)

// Lifespan bounds in years
const (
	MinLifespan     = 50
	MaxLifespan     = 120
	DefaultLifespan = 90
)

// DefaultGoalName is used when the goal name is left empty
const DefaultGoalName = "My Goal"

var (
	ErrMissingBirth = errors.New("missing birth parameter")
	ErrInvalidDate  = errors.New("invalid date format")
	ErrInvalidParam = errors.New("invalid parameter")
	ErrMissingParam = errors.New("missing parameter")
	ErrUnknownKind  = errors.New("unknown calendar type")
	ErrEmptyRange   = errors.New("deadline is before start")
)

// Request describes one poster
type Request struct {
	Kind          Kind
	Width, Height int

	// life
	Birth    Date
	Lifespan int

	// goal
	Goal            string
	Start, Deadline Date
}

// ParseRequest reads a poster request from query parameters
// Sizes and lifespan are clamped; malformed numbers and dates are errors
func ParseRequest(q url.Values) (Request, error) {
	req := Request{Kind: Kind(strings.ToLower(q.Get("type")))}
	if req.Kind == "" {
		req.Kind = KindLife
	}

	var err error
	if req.Width, err = intParam(q, "w", DefaultWidth); err != nil {
		return Request{}, err
	}
	if req.Height, err = intParam(q, "h", DefaultHeight); err != nil {
		return Request{}, err
	}
	req.Width = clampInt(req.Width, MinSize, MaxSize)
	req.Height = clampInt(req.Height, MinSize, MaxSize)

	switch req.Kind {
	case KindLife:
		birth := q.Get("birth")
		if birth == "" {
			return Request{}, ErrMissingBirth
		}
		if req.Birth, err = ParseDate(birth); err != nil {
			return Request{}, err
		}
		if req.Lifespan, err = intParam(q, "lifespan", DefaultLifespan); err != nil {
			return Request{}, err
		}
		req.Lifespan = clampInt(req.Lifespan, MinLifespan, MaxLifespan)

	case KindYear:

	case KindGoal:
		req.Goal = strings.TrimSpace(q.Get("goal"))
		if req.Goal == "" {
			req.Goal = DefaultGoalName
		}
		if req.Start, err = dateParam(q, "start"); err != nil {
			return Request{}, err
		}
		if req.Deadline, err = dateParam(q, "deadline"); err != nil {
			return Request{}, err
		}
		if req.Start.DaysUntil(req.Deadline) < 0 {
			return Request{}, ErrEmptyRange
		}

	default:
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	return req, nil
}

// Filename returns the download name for the rendered poster
func (r Request) Filename(today Date) string {
	switch r.Kind {
	case KindYear:
		return fmt.Sprintf("year-calendar-%d.png", today.Year)
	case KindGoal:
		return fmt.Sprintf("goal-calendar-%s.png", r.Deadline)
	default:
		return fmt.Sprintf("life-calendar-%s.png", r.Birth)
	}
}

func intParam(q url.Values, key string, def int) (int, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, key, s)
	}
	return v, nil
}

func dateParam(q url.Values, key string) (Date, error) {
	s := q.Get(key)
	if s == "" {
		return Date{}, fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	return ParseDate(s)
}
