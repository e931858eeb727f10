package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var (
	ErrNoPTY       = errors.New("ssh: session has no pty")
	ErrUnknownTerm = errors.New("ssh: terminal type not allowed")
)

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the terminal types a client may ask for. TERM ends up
// in the process environment and picks a terminfo entry, so it is never
// taken verbatim.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// AllowedTerm reports whether term may be used for a session screen.
func AllowedTerm(term string) bool { return allowedTerms[term] }

// termOf returns the client's TERM, or DefaultTerm when it sent none.
func termOf(env []string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok {
			return v
		}
	}
	return DefaultTerm
}

// termMu guards os.Setenv("TERM") around screen creation; tcell reads the
// terminal type from the environment.
var termMu sync.Mutex

// NewScreen creates and initialises a tcell screen backed by s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if term == "" {
		term = termOf(s.Environ())
	}
	if !AllowedTerm(term) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerm, term)
	}

	tty := NewSessionTty(s, pty, winCh)
	termMu.Lock()
	os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
