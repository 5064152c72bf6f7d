package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

// sessionView is the template data for the session area
type sessionView struct {
	Menu         string
	Feedback     string
	Notification string
	HistoryCount int
	PrefCount    int
	Weekend      bool
	Busy         bool
}

// sessionData builds the view from the planner snapshot and session settings
func (s *Server) sessionData() sessionView {
	snap := s.planner.Snapshot()

	prefCount := 0
	for _, tok := range strings.Split(snap.Preferences, ",") {
		if strings.TrimSpace(tok) != "" {
			prefCount++
		}
	}

	s.lock.Lock()
	weekend := s.weekend
	s.lock.Unlock()

	return sessionView{
		Menu:         snap.Menu,
		Feedback:     snap.Feedback,
		Notification: snap.Notification,
		HistoryCount: len(snap.History),
		PrefCount:    prefCount,
		Weekend:      weekend,
		Busy:         snap.State == "generating" || snap.State == "updating",
	}
}

// weekendMode returns the current weekend setting
func (s *Server) weekendMode() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.weekend
}

// indexHandler displays the main menu page
func (s *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	data := struct {
		ActivePage string
		Session    sessionView
		Version    string
	}{
		ActivePage: "home",
		Session:    s.sessionData(),
		Version:    s.version,
	}

	if err := s.renderPage(w, "index.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// generateHandler requests a fresh menu and returns the session partial
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	s.planner.Generate(r.Context(), s.weekendMode())
	s.renderSession(w)
}

// updateHandler submits feedback, revises the menu and returns the session
// partial. Blank feedback or a missing menu is a no-op in the planner.
func (s *Server) updateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	feedback := r.FormValue("feedback")
	s.planner.SetFeedback(feedback)
	s.planner.Update(r.Context(), feedback, s.weekendMode())
	s.renderSession(w)
}

// transcriptHandler appends a speech transcript to the feedback buffer
func (s *Server) transcriptHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	if text := strings.TrimSpace(r.FormValue("text")); text != "" {
		s.planner.AppendTranscript(text)
	}
	s.renderSession(w)
}

// clearHandler forgets menu history and the displayed menu
func (s *Server) clearHandler(w http.ResponseWriter, r *http.Request) {
	s.planner.Clear(r.Context())
	s.renderSession(w)
}

// settingsHandler displays the settings page
func (s *Server) settingsHandler(w http.ResponseWriter, _ *http.Request) {
	snap := s.planner.Snapshot()

	data := struct {
		ActivePage  string
		Preferences string
		Weekend     bool
		Version     string
	}{
		ActivePage:  "settings",
		Preferences: snap.Preferences,
		Weekend:     s.weekendMode(),
		Version:     s.version,
	}

	if err := s.renderPage(w, "settings.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// saveSettingsHandler persists the preference string verbatim and updates
// weekend mode. Called on every edit, not just on an explicit save.
func (s *Server) saveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	s.planner.SetPreferences(r.Context(), r.FormValue("preferences"))

	weekend := r.FormValue("weekend") == "on"
	s.lock.Lock()
	s.weekend = weekend
	s.lock.Unlock()

	if r.Header.Get("HX-Request") == "true" {
		if _, err := fmt.Fprint(w, `<span class="saved-indicator">Saved</span>`); err != nil {
			log.Printf("[WARN] failed to write response: %v", err)
		}
		return
	}

	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

// renderSession renders the session partial for htmx swaps
func (s *Server) renderSession(w http.ResponseWriter) {
	if err := s.templates.ExecuteTemplate(w, "session.html", s.sessionData()); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render session", err)
	}
}
