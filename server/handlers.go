package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lixenwraith/wallcal/blobfield"
	"github.com/lixenwraith/wallcal/calendar"
)

// Background render bounds
const (
	minSnapshotSide = 16
	maxSnapshotSide = 4096
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := calendar.ParseRequest(r.URL.Query())
	if err != nil {
		http.Error(w, requestErrorText(err), http.StatusBadRequest)
		return
	}

	today := calendar.DateOf(s.opts.Now())
	poster, err := calendar.Render(req, today, s.opts.Palette)
	if err != nil {
		s.logger.Printf("server: render %s poster: %v", req.Kind, err)
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := poster.EncodePNG(&buf); err != nil {
		s.logger.Printf("server: encode %s poster: %v", req.Kind, err)
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Content-Disposition", "inline; filename="+req.Filename(today))
	h.Set("Cache-Control", "public, max-age=86400")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// requestErrorText maps parse failures onto the plain-text messages clients expect
func requestErrorText(err error) string {
	switch {
	case errors.Is(err, calendar.ErrMissingBirth):
		return "Missing birth parameter"
	case errors.Is(err, calendar.ErrInvalidDate):
		return "Invalid date format"
	default:
		return "Invalid parameter: " + err.Error()
	}
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := formsFromQuery(q, s.opts.Now())
	b := calendar.NewBuilder(s.baseURL(r), s.requestLanguage(r))

	var link calendar.Link
	switch calendar.Kind(q.Get("type")) {
	case calendar.KindLife, "":
		link = b.LifeURL(f.Life)
	case calendar.KindYear:
		link = b.YearURL(f.Year)
	case calendar.KindGoal:
		link = b.GoalURL(f.Goal)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown type %q", q.Get("type"))})
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleBackground(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lim := s.opts.Snapshot

	width, err1 := intQuery(q.Get("w"), lim.Width)
	height, err2 := intQuery(q.Get("h"), lim.Height)
	frames, err3 := intQuery(q.Get("frames"), 1)
	seed, err4 := strconv.ParseUint(orDefault(q.Get("seed"), "0"), 10, 64)
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		http.Error(w, "Invalid parameter: "+err.Error(), http.StatusBadRequest)
		return
	}

	width = clamp(width, minSnapshotSide, maxSnapshotSide)
	height = clamp(height, minSnapshotSide, maxSnapshotSide)
	frames = clamp(frames, 1, max(lim.MaxFrames, 1))

	surface := blobfield.Snapshot(blobfield.SnapshotOptions{
		Width:      float64(width),
		Height:     float64(height),
		PixelRatio: lim.PixelRatio,
		Frames:     frames,
		Seed:       seed,
		Static:     q.Get("static") == "1",
		Logger:     s.logger,
	})

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf, s.opts.Background); err != nil {
		s.logger.Printf("server: encode background: %v", err)
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "image/png")
	if seed == 0 {
		h.Set("Cache-Control", "no-store")
	} else {
		h.Set("Cache-Control", "public, max-age=86400")
	}
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

func intQuery(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
