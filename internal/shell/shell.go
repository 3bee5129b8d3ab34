package shell

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// ScrollThreshold is the offset in pixels at which the nav turns opaque.
	ScrollThreshold = 50

	// CopyConfirmation is how long "Copied" stays visible.
	CopyConfirmation = 2 * time.Second
)

// Clipboard receives the copied contact email.
type Clipboard interface {
	WriteText(text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteText(text string) error {
	return f(text)
}

// State is a snapshot of the shell for rendering.
type State struct {
	Active      Panel
	Scrolled    bool
	Copied      bool
	ScrollToTop bool
}

// Shell holds the view-local UI state of one page session. It is not shared
// between sessions.
type Shell struct {
	mu          sync.Mutex
	clock       clockwork.Clock
	clipboard   Clipboard
	email       string
	active      Panel
	scrolled    bool
	copied      bool
	scrollToTop bool
	revert      clockwork.Timer
	copyGen     int
	onChange    func(State)
}

// Option configures a Shell.
type Option func(*Shell)

// WithClock replaces the real clock, mainly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Shell) { s.clock = c }
}

// WithClipboard sets the clipboard used by CopyEmail.
func WithClipboard(c Clipboard) Option {
	return func(s *Shell) { s.clipboard = c }
}

// OnChange registers a callback invoked after asynchronous state changes
// (the confirmation revert).
func OnChange(fn func(State)) Option {
	return func(s *Shell) { s.onChange = fn }
}

// New creates a shell on the default panel. email is the value CopyEmail writes.
func New(email string, opts ...Option) *Shell {
	s := &Shell{
		clock:  clockwork.NewRealClock(),
		email:  email,
		active: DefaultPanel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select makes p the active panel and requests a scroll to the top.
// Selecting the active panel again leaves the state unchanged.
func (s *Shell) Select(p Panel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = p
	s.scrollToTop = true
}

// Scroll records the viewport offset.
func (s *Shell) Scroll(y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrolled = y >= ScrollThreshold
}

// CopyEmail writes the contact email and shows the confirmation for
// CopyConfirmation. A clipboard failure is logged and otherwise ignored.
// Copying again restarts the window.
func (s *Shell) CopyEmail() {
	if s.clipboard != nil {
		if err := s.clipboard.WriteText(s.email); err != nil {
			slog.Error("copy failed", "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.copied = true
	if s.revert != nil {
		s.revert.Stop()
	}
	s.copyGen++
	gen := s.copyGen
	s.revert = s.clock.AfterFunc(CopyConfirmation, func() { s.clearCopied(gen) })
}

// clearCopied ignores reverts from a superseded copy whose timer fired
// before Stop could cancel it.
func (s *Shell) clearCopied(gen int) {
	s.mu.Lock()
	if gen != s.copyGen {
		s.mu.Unlock()
		return
	}
	s.copied = false
	s.revert = nil
	state := s.stateLocked()
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(state)
	}
}

// State returns the current snapshot.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Active returns the selected panel.
func (s *Shell) Active() Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Close stops a pending confirmation revert.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revert != nil {
		s.revert.Stop()
		s.revert = nil
	}
}

func (s *Shell) stateLocked() State {
	return State{
		Active:      s.active,
		Scrolled:    s.scrolled,
		Copied:      s.copied,
		ScrollToTop: s.scrollToTop,
	}
}
