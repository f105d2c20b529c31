// Package ssh adapts gliderlabs SSH sessions to tcell terminals.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH session, so each client
// can drive its own tcell.Screen.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window
	watch   sync.Once

	mu     sync.Mutex
	width  int
	height int
	resize func()
}

// NewSessionTty wraps s. pty carries the initial window size and winCh the
// later window-change requests.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		winCh:   winCh,
		width:   pty.Window.Width,
		height:  pty.Window.Height,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start begins tracking window changes. The channel is already open, so
// there is nothing else to set up.
func (t *SessionTty) Start() error {
	t.watch.Do(func() { go t.watchWindow() })
	return nil
}

// Stop and Drain are no-ops: the server handler owns the channel and SSH
// writes are not buffered here.
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.width, Height: t.height}, nil
}

// NotifyResize registers the callback run after every window change.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()
}

func (t *SessionTty) watchWindow() {
	for win := range t.winCh {
		t.mu.Lock()
		t.width, t.height = win.Width, win.Height
		cb := t.resize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
