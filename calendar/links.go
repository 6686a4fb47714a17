package calendar

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder replaces a link whose form input does not validate
const Placeholder = "Complete step 1 first..."

// GeneratePath is the poster endpoint links point at
const GeneratePath = "/api/generate"

// PreviewWidth bounds the width of preview images
const PreviewWidth = 400

// Languages the page is offered in, the first is the default
var Languages = []language.Tag{language.English, language.Russian}

var languageMatcher = language.NewMatcher(Languages)

func init() {
	message.SetString(language.Russian, Placeholder, "Сначала заполните шаг 1...")
}

// MatchLanguage picks a supported language from preference strings such as a
// lang query value or an Accept-Language header
func MatchLanguage(prefs ...string) language.Tag {
	_, idx := language.MatchStrings(languageMatcher, prefs...)
	return Languages[idx]
}

// Link is a generated poster URL; when Valid is false URL holds the placeholder
type Link struct {
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}

// LifeForm is the raw input of the life calendar form
type LifeForm struct {
	Birth    Fields
	Lifespan int // 0 selects DefaultLifespan
	Device   string
	Width    int // custom device only
	Height   int
}

// YearForm is the raw input of the year calendar form
type YearForm struct {
	Device        string
	Width, Height int
}

// GoalForm is the raw input of the goal calendar form
type GoalForm struct {
	Name            string
	Start, Deadline Fields
	Device          string
	Width, Height   int
}

// DefaultLifeForm is the initial life form state
func DefaultLifeForm() LifeForm {
	return LifeForm{
		Birth:    Fields{Year: "1990", Month: "01", Day: "01"},
		Lifespan: DefaultLifespan,
		Device:   DefaultDevice,
	}
}

// DefaultGoalForm starts the goal today with a deadline three months out
func DefaultGoalForm(now time.Time) GoalForm {
	return GoalForm{
		Start:    FieldsOf(DateOf(now)),
		Deadline: FieldsOf(DateOf(now.AddDate(0, 3, 0))),
		Device:   DefaultDevice,
	}
}

// Builder produces poster links rooted at Base
type Builder struct {
	Base    string
	printer *message.Printer
}

// NewBuilder creates a builder for links under base, localizing the placeholder to lang
func NewBuilder(base string, lang language.Tag) *Builder {
	return &Builder{
		Base:    strings.TrimRight(base, "/"),
		printer: message.NewPrinter(lang),
	}
}

// LifeURL links a life calendar; the birth date must validate
func (b *Builder) LifeURL(f LifeForm) Link {
	birth, ok := f.Birth.Date()
	if !ok {
		return b.placeholder()
	}
	lifespan := f.Lifespan
	if lifespan == 0 {
		lifespan = DefaultLifespan
	}
	dev := ResolveDevice(f.Device, f.Width, f.Height)

	q := url.Values{}
	q.Set("type", string(KindLife))
	q.Set("birth", birth.String())
	q.Set("lifespan", strconv.Itoa(lifespan))
	setSize(q, dev.Width, dev.Height)
	return b.link(q)
}

// YearURL links a year calendar, always valid
func (b *Builder) YearURL(f YearForm) Link {
	dev := ResolveDevice(f.Device, f.Width, f.Height)

	q := url.Values{}
	q.Set("type", string(KindYear))
	setSize(q, dev.Width, dev.Height)
	return b.link(q)
}

// GoalURL links a goal calendar; both dates must validate
func (b *Builder) GoalURL(f GoalForm) Link {
	start, okStart := f.Start.Date()
	deadline, okEnd := f.Deadline.Date()
	if !okStart || !okEnd {
		return b.placeholder()
	}
	name := f.Name
	if name == "" {
		name = DefaultGoalName
	}
	dev := ResolveDevice(f.Device, f.Width, f.Height)

	q := url.Values{}
	q.Set("type", string(KindGoal))
	q.Set("goal", name)
	q.Set("start", start.String())
	q.Set("deadline", deadline.String())
	setSize(q, dev.Width, dev.Height)
	return b.link(q)
}

// Preview rewrites a valid link to a small image of the same aspect ratio
func Preview(l Link) Link {
	if !l.Valid {
		return l
	}
	u, err := url.Parse(l.URL)
	if err != nil {
		return l
	}
	q := u.Query()
	w, err1 := strconv.Atoi(q.Get("w"))
	h, err2 := strconv.Atoi(q.Get("h"))
	if err1 != nil || err2 != nil || w <= 0 {
		return l
	}
	pw, ph := PreviewSize(w, h)
	setSize(q, pw, ph)
	u.RawQuery = q.Encode()
	return Link{URL: u.String(), Valid: true}
}

// PreviewSize scales w x h down to at most PreviewWidth wide
func PreviewSize(w, h int) (int, int) {
	pw := min(w, PreviewWidth)
	return pw, int(math.Round(float64(pw) * float64(h) / float64(w)))
}

func (b *Builder) link(q url.Values) Link {
	return Link{URL: b.Base + GeneratePath + "?" + q.Encode(), Valid: true}
}

func (b *Builder) placeholder() Link {
	return Link{URL: b.printer.Sprintf(Placeholder)}
}

func setSize(q url.Values, w, h int) {
	q.Set("w", strconv.Itoa(w))
	q.Set("h", strconv.Itoa(h))
}
