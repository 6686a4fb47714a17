package server

import (
	"bytes"
	"html/template"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/wallcal/calendar"
)

// Page strings, keyed by their English text
const (
	msgTitle    = "Wallpaper calendars"
	msgLife     = "Life calendar"
	msgYear     = "Year calendar"
	msgGoal     = "Goal calendar"
	msgLifeHint = "Every week of your life, one dot each."
	msgYearHint = "Every day of this year."
	msgGoalHint = "Every day until your deadline."
)

func init() {
	ru := map[string]string{
		msgTitle:    "Календари для обоев",
		msgLife:     "Календарь жизни",
		msgYear:     "Календарь года",
		msgGoal:     "Календарь цели",
		msgLifeHint: "Каждая неделя вашей жизни, по точке на неделю.",
		msgYearHint: "Каждый день этого года.",
		msgGoalHint: "Каждый день до вашего дедлайна.",
	}
	for key, msg := range ru {
		message.SetString(language.Russian, key, msg)
	}
}

type pageSection struct {
	ID      string
	Title   string
	Hint    string
	Link    calendar.Link
	Preview calendar.Link
}

type pageData struct {
	Lang     string
	Title    string
	Sections []pageSection
	Devices  []calendar.Device
	Device   string
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; min-height: 100vh; color: #f5f5f5; font-family: sans-serif;
       background: #0a0a0a url("/api/background.png?w=1024&h=768&static=1") center / cover no-repeat; }
main { max-width: 720px; margin: 0 auto; padding: 48px 16px; }
section { margin: 32px 0; padding: 16px; border-radius: 12px; background: rgba(255,255,255,0.04); }
input { width: 100%; box-sizing: border-box; }
img { max-width: 160px; border-radius: 8px; }
</style>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<form method="get" action="/">
<input type="hidden" name="lang" value="{{.Lang}}">
<select name="device" onchange="this.form.submit()">
{{- range .Devices}}
<option value="{{.ID}}"{{if eq .ID $.Device}} selected{{end}}>{{.Width}} × {{.Height}}</option>
{{- end}}
</select>
</form>
{{- range .Sections}}
<section id="{{.ID}}">
<h2>{{.Title}}</h2>
<p>{{.Hint}}</p>
<input id="{{.ID}}-url" readonly value="{{.Link.URL}}">
{{- if .Preview.Valid}}
<p><a href="{{.Link.URL}}"><img src="{{.Preview.URL}}" alt="{{.Title}}"></a></p>
{{- end}}
</section>
{{- end}}
</main>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	lang := s.requestLanguage(r)
	p := message.NewPrinter(lang)
	b := calendar.NewBuilder(s.baseURL(r), lang)
	f := formsFromQuery(r.URL.Query(), s.opts.Now())

	life, year, goal := b.LifeURL(f.Life), b.YearURL(f.Year), b.GoalURL(f.Goal)
	data := pageData{
		Lang:  lang.String(),
		Title: p.Sprintf(msgTitle),
		Sections: []pageSection{
			{ID: "life", Title: p.Sprintf(msgLife), Hint: p.Sprintf(msgLifeHint), Link: life, Preview: calendar.Preview(life)},
			{ID: "year", Title: p.Sprintf(msgYear), Hint: p.Sprintf(msgYearHint), Link: year, Preview: calendar.Preview(year)},
			{ID: "goal", Title: p.Sprintf(msgGoal), Hint: p.Sprintf(msgGoalHint), Link: goal, Preview: calendar.Preview(goal)},
		},
		Devices: calendar.Devices,
		Device:  f.Year.Device,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Printf("server: render index: %v", err)
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
