// Package ssh adapts gliderlabs SSH sessions into tcell screens.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty over one SSH session, so every client
// gets its own screen.
type SessionTty struct {
	session gossh.Session

	mu       sync.Mutex
	window   gossh.Window
	onResize func()

	winCh <-chan gossh.Window
	once  sync.Once
}

// NewSessionTty wraps s. pty carries the initial window size; winCh
// delivers later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, window: pty.Window, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// The channel is opened and torn down by the server handler, and writes
// are flushed as they happen.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts a
// goroutine that follows the resize channel until the session ends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				fn := t.onResize
				t.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}()
	})
}
