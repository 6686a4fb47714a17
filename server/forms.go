package server

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/lixenwraith/wallcal/calendar"
)

// Query keys of the page forms
const (
	keyBirthYear  = "birth_year"
	keyBirthMonth = "birth_month"
	keyBirthDay   = "birth_day"
	keyLifespan   = "lifespan"
	keyDevice     = "device"
	keyWidth      = "w"
	keyHeight     = "h"
	keyGoal       = "goal"
	keyStartYear  = "start_year"
	keyStartMonth = "start_month"
	keyStartDay   = "start_day"
	keyEndYear    = "end_year"
	keyEndMonth   = "end_month"
	keyEndDay     = "end_day"
	keyLang       = "lang"
)

// forms holds the three calendar forms filled from a request
type forms struct {
	Life calendar.LifeForm
	Year calendar.YearForm
	Goal calendar.GoalForm
}

// formsFromQuery starts from the page defaults and applies any supplied values
// Date fields are clamped the way the inputs clamp on blur
func formsFromQuery(q url.Values, now time.Time) forms {
	f := forms{
		Life: calendar.DefaultLifeForm(),
		Year: calendar.YearForm{Device: calendar.DefaultDevice},
		Goal: calendar.DefaultGoalForm(now),
	}

	device := q.Get(keyDevice)
	w, _ := strconv.Atoi(q.Get(keyWidth))
	h, _ := strconv.Atoi(q.Get(keyHeight))
	if device != "" {
		f.Life.Device, f.Year.Device, f.Goal.Device = device, device, device
	}
	f.Life.Width, f.Life.Height = w, h
	f.Year.Width, f.Year.Height = w, h
	f.Goal.Width, f.Goal.Height = w, h

	f.Life.Birth = override(f.Life.Birth, q, keyBirthYear, keyBirthMonth, keyBirthDay)
	if v, err := strconv.Atoi(q.Get(keyLifespan)); err == nil {
		f.Life.Lifespan = v
	}

	f.Goal.Name = q.Get(keyGoal)
	f.Goal.Start = override(f.Goal.Start, q, keyStartYear, keyStartMonth, keyStartDay)
	f.Goal.Deadline = override(f.Goal.Deadline, q, keyEndYear, keyEndMonth, keyEndDay)
	return f
}

func override(f calendar.Fields, q url.Values, year, month, day string) calendar.Fields {
	if v, ok := q[year]; ok {
		f.Year = v[0]
	}
	if v, ok := q[month]; ok {
		f.Month = v[0]
	}
	if v, ok := q[day]; ok {
		f.Day = v[0]
	}
	return calendar.ClampFields(f)
}

// requestLanguage prefers the lang query value, then Accept-Language, then the server default
func (s *Server) requestLanguage(r *http.Request) language.Tag {
	return calendar.MatchLanguage(r.URL.Query().Get(keyLang), r.Header.Get("Accept-Language"), s.opts.Language.String())
}

// baseURL returns the configured public base or the origin of r
func (s *Server) baseURL(r *http.Request) string {
	if s.opts.BaseURL != "" {
		return s.opts.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host
}
