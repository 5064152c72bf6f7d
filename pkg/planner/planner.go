// Package planner orchestrates the menu session: it builds generation and
// revision requests from stored state, runs the two-call feedback update as a
// join, and merges newly learned constraints back into the store.
package planner

import (
	"context"
	"html"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/dailymenu/pkg/llm"
)

//go:generate moq -out mocks/chef.go -pkg mocks -skip-ensure -fmt goimports . Chef
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// user-facing fallback strings, returned instead of raw errors
const (
	msgGenerateEmpty  = "Sorry, I couldn't generate a menu at this time."
	msgGenerateFailed = "Error generating menu. Please check your connection or API key."
	msgUpdateEmpty    = "Sorry, I couldn't update the menu."
	msgUpdateFailed   = "Error updating menu. Please try again."
)

// State represents the session state
type State string

// session states
const (
	StateIdle       State = "idle"       // no menu shown
	StateGenerating State = "generating" // generation request in flight
	StateDisplaying State = "displaying" // menu shown, nothing pending
	StateUpdating   State = "updating"   // feedback update in flight
)

// Chef generates and revises menus via the LLM
type Chef interface {
	GenerateMenu(ctx context.Context, req llm.GenerateRequest) (string, error)
	UpdateMenu(ctx context.Context, currentMenu, feedback string, weekend bool) (string, error)
	ExtractConstraints(ctx context.Context, feedback string) ([]string, error)
}

// Store persists menu history and preferences
type Store interface {
	History() []string
	Preferences() string
	AppendMenu(ctx context.Context, menu string)
	ClearHistory(ctx context.Context)
	SetPreferences(ctx context.Context, text string)
	MergeConstraints(ctx context.Context, items []string) string
}

// Planner is the menu session controller. It owns the transient draft and
// feedback buffer and mediates all store access. Safe for concurrent use,
// though callers are expected to avoid re-entrant Generate/Update while one
// is in flight (Snapshot exposes the busy state for that).
type Planner struct {
	store           Store
	chef            Chef
	notificationTTL time.Duration
	sanitizer       *bluemonday.Policy

	mu           sync.Mutex
	state        State
	menu         string // current draft, empty means none
	feedback     string
	notification string
	notifyTimer  *time.Timer
	closed       bool
}

// New creates a planner over the given store and chef
func New(store Store, chef Chef, notificationTTL time.Duration) *Planner {
	if notificationTTL <= 0 {
		notificationTTL = 3 * time.Second
	}
	return &Planner{
		store:           store,
		chef:            chef,
		notificationTTL: notificationTTL,
		sanitizer:       bluemonday.StrictPolicy(),
		state:           StateIdle,
	}
}

// Snapshot is the session state as seen by the UI
type Snapshot struct {
	State        State
	Menu         string
	Feedback     string
	Notification string
	History      []string
	Preferences  string
}

// Snapshot returns the current session state for rendering
func (p *Planner) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		State:        p.state,
		Menu:         p.menu,
		Feedback:     p.feedback,
		Notification: p.notification,
		History:      p.store.History(),
		Preferences:  p.store.Preferences(),
	}
}

// Generate requests a fresh daily menu. On success the feedback buffer is
// cleared and the menu is appended to history. On failure history stays
// untouched and a fixed user-facing message is returned instead.
func (p *Planner) Generate(ctx context.Context, weekend bool) string {
	p.mu.Lock()
	prev := p.state
	p.state = StateGenerating
	p.mu.Unlock()

	req := llm.GenerateRequest{
		Today:       time.Now(),
		Weekend:     weekend,
		History:     p.store.History(),
		Preferences: p.store.Preferences(),
	}

	text, err := p.chef.GenerateMenu(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		log.Printf("[ERROR] menu generation failed: %v", err)
		p.state = prev
		return msgGenerateFailed
	}

	text = p.plainText(text)
	if text == "" {
		p.state = prev
		return msgGenerateEmpty
	}

	p.menu = text
	p.feedback = ""
	p.state = StateDisplaying
	p.store.AppendMenu(ctx, text)
	return text
}

// Update revises the current menu per user feedback and, in parallel, mines
// the feedback for permanent dietary constraints. The two calls are joined:
// if either fails nothing is changed, not even the successful half. No-op
// when there is no current menu or the feedback is blank.
func (p *Planner) Update(ctx context.Context, feedback string, weekend bool) string {
	p.mu.Lock()
	menu := p.menu
	if menu == "" || strings.TrimSpace(feedback) == "" {
		p.mu.Unlock()
		return menu
	}
	p.state = StateUpdating
	p.clearNotificationLocked()
	p.mu.Unlock()

	var revised string
	var constraints []string

	// both requests run in flight together, neither result is consumed
	// until both complete
	var g errgroup.Group
	g.Go(func() error {
		var err error
		revised, err = p.chef.UpdateMenu(ctx, menu, feedback, weekend)
		return err
	})
	g.Go(func() error {
		var err error
		constraints, err = p.chef.ExtractConstraints(ctx, feedback)
		return err
	})
	err := g.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateDisplaying

	if err != nil {
		log.Printf("[ERROR] menu update failed: %v", err)
		return msgUpdateFailed
	}

	revised = p.plainText(revised)
	if revised == "" {
		return msgUpdateEmpty
	}

	p.menu = revised
	p.feedback = ""
	p.store.AppendMenu(ctx, revised)

	if len(constraints) > 0 {
		merged := p.store.MergeConstraints(ctx, constraints)
		log.Printf("[INFO] learned constraints %q, preferences now %q", constraints, merged)
		p.notifyLocked("Learned new preference: " + strings.Join(constraints, ", "))
	}

	return revised
}

// AppendTranscript appends a speech transcript to the feedback buffer,
// space-separated when the buffer is non-empty
func (p *Planner) AppendTranscript(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.feedback != "" {
		p.feedback += " " + text
		return
	}
	p.feedback = text
}

// SetFeedback replaces the feedback buffer
func (p *Planner) SetFeedback(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feedback = text
}

// Clear forgets menu history and the displayed menu, back to the idle state
func (p *Planner) Clear(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store.ClearHistory(ctx)
	p.menu = ""
	p.state = StateIdle
}

// SetPreferences overwrites the stored preference string verbatim
func (p *Planner) SetPreferences(ctx context.Context, text string) {
	p.store.SetPreferences(ctx, text)
}

// Close cancels any pending notification timer
func (p *Planner) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.clearNotificationLocked()
}

// notifyLocked raises a notification that auto-dismisses after the configured
// TTL, caller holds the lock. The timer is dropped on Close, so a torn-down
// planner never fires a stale callback.
func (p *Planner) notifyLocked(msg string) {
	if p.closed {
		return
	}
	if p.notifyTimer != nil {
		p.notifyTimer.Stop()
	}
	p.notification = msg
	p.notifyTimer = time.AfterFunc(p.notificationTTL, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.notification = ""
	})
}

// clearNotificationLocked dismisses the notification, caller holds the lock
func (p *Planner) clearNotificationLocked() {
	if p.notifyTimer != nil {
		p.notifyTimer.Stop()
		p.notifyTimer = nil
	}
	p.notification = ""
}

// plainText strips any markup from model output, it is untrusted
func (p *Planner) plainText(text string) string {
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(text)))
}
