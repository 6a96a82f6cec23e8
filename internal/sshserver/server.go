// Package sshserver hosts the visibility demo over SSH. Every session
// gets its own grid, controller, and viewpoint: the demo state is
// confined to the session goroutine, matching the single-owner rule of
// the core.
package sshserver

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gliderlabs/ssh"

	"gridsight/internal/ansi"
	"gridsight/internal/fov"
	"gridsight/internal/grid"
	"gridsight/internal/view"
)

const frameInterval = 50 * time.Millisecond

// Config holds the per-session demo parameters.
type Config struct {
	GridW   int
	GridH   int
	Radius  int
	Scatter int
}

// Server wraps the SSH listener and per-session demo loops.
type Server struct {
	addr     string
	hostKey  string
	cfg      Config
	sessions atomic.Int64
}

// New creates a server bound to addr. hostKey may be empty, in which
// case the SSH library generates an ephemeral key.
func New(addr, hostKey string, cfg Config) *Server {
	return &Server{addr: addr, hostKey: hostKey, cfg: cfg}
}

// Start begins listening for SSH connections and blocks.
func (s *Server) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	if s.hostKey != "" {
		if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
			return fmt.Errorf("set host key: %w", err)
		}
	}
	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *Server) handleSession(sess ssh.Session) {
	_, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	id := s.sessions.Add(1)
	user := sess.User()
	log.Printf("session %d connected (%s)", id, user)
	defer log.Printf("session %d disconnected", id)

	m, err := grid.New(s.cfg.GridW, s.cfg.GridH)
	if err != nil {
		fmt.Fprintf(sess, "Error: %v\n", err)
		return
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + id))
	m.ScatterWalls(rng, s.cfg.Scatter)
	ctrl := view.NewController(m, s.cfg.Radius)
	pointer := fov.Point{X: s.cfg.GridW / 2, Y: s.cfg.GridH / 2}

	io.WriteString(sess, ansi.EnableAltScreen())
	io.WriteString(sess, ansi.HideCursor())
	io.WriteString(sess, ansi.ClearScreen())
	defer func() {
		io.WriteString(sess, ansi.ShowCursor())
		io.WriteString(sess, ansi.DisableAltScreen())
	}()

	actionCh := make(chan action, 16)
	quitCh := make(chan struct{})

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, a := range parseInput(buf[:n]) {
				if a == actQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- a:
				default:
				}
			}
		}
	}()

	// Window resizes do not change the fixed-size grid; drain them so
	// the channel never blocks the SSH library.
	go func() {
		for range winCh {
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	dirty := true
	for {
		select {
		case <-quitCh:
			return
		case a := <-actionCh:
			if s.applyAction(a, m, ctrl, &pointer, rng) {
				dirty = true
			}
		case <-ticker.C:
			if ctrl.Tick(pointer) {
				dirty = true
			}
			if dirty {
				vp, hasVP := ctrl.Viewpoint()
				io.WriteString(sess, ansi.RenderFrame(m.Snapshot(), vp, hasVP, ctrl.Radius()))
				dirty = false
			}
		}
	}
}

// applyAction mutates the session state for one input action and
// reports whether a redraw is needed.
func (s *Server) applyAction(a action, m *grid.Map, ctrl *view.Controller, pointer *fov.Point, rng *rand.Rand) bool {
	switch a {
	case actUp:
		return movePointer(m, pointer, 0, 1)
	case actDown:
		return movePointer(m, pointer, 0, -1)
	case actLeft:
		return movePointer(m, pointer, -1, 0)
	case actRight:
		return movePointer(m, pointer, 1, 0)
	case actToggle:
		if m.IsInBounds(*pointer) {
			m.ToggleOpaque(*pointer)
			ctrl.Invalidate()
			return true
		}
	case actRadiusUp:
		ctrl.AdjustRadius(1)
		return true
	case actRadiusDown:
		ctrl.AdjustRadius(-1)
		return true
	case actRegen:
		m.ClearOpaque()
		m.ScatterWalls(rng, s.cfg.Scatter)
		ctrl.Invalidate()
		return true
	}
	return false
}

// movePointer shifts the viewpoint cell, clamped to the grid.
func movePointer(m *grid.Map, pointer *fov.Point, dx, dy int) bool {
	next := fov.Point{X: pointer.X + dx, Y: pointer.Y + dy}
	if !m.IsInBounds(next) {
		return false
	}
	*pointer = next
	return true
}
