// Package vtpty spawns a child process attached to a pseudo-terminal and
// exposes its reader/writer halves, resize, and exit-status plumbing.
package vtpty

import (
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
)

// closeTimeout bounds how long Close waits for the child to exit after
// SIGTERM before escalating to SIGKILL.
const closeTimeout = 5 * time.Second

// ExitStatus is delivered exactly once on the channel returned by Exited.
type ExitStatus struct {
	Code int
	Err  error
}

// Config controls how a child process is spawned.
type Config struct {
	// Argv is the command and its arguments. Argv[0] is resolved with
	// exec.LookPath semantics.
	Argv []string
	// Dir is the child's working directory. Empty uses the parent's.
	Dir string
	// Env is appended to the parent's full environment (TERM and
	// COLORTERM=truecolor are always set; DESKTOP_STARTUP_ID is always
	// stripped, per a terminal emulator's usual child-spawn hygiene).
	Env []string
	// Term is the terminfo name advertised to the child. Falls back to
	// "xterm-256color" when empty.
	Term string
	// Rows, Cols, CellWidth, CellHeight seed the initial PTY geometry.
	Rows, Cols, CellWidth, CellHeight uint16
}

// PTY wraps a spawned child's pseudo-terminal.
type PTY struct {
	mu     sync.Mutex
	file   *os.File
	cmd    *exec.Cmd
	closed bool

	exitCh chan ExitStatus
	done   chan struct{}
}

// Spawn starts the configured command attached to a new PTY.
func Spawn(cfg Config) (*PTY, error) {
	if len(cfg.Argv) == 0 {
		cfg.Argv = []string{os.Getenv("SHELL")}
		if cfg.Argv[0] == "" {
			cfg.Argv[0] = "/bin/sh"
		}
	}

	cmd := exec.Command(cfg.Argv[0], cfg.Argv[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg)
	cmd.SysProcAttr = &syscall.SysProcAttr{}

	var (
		f   *os.File
		err error
	)
	if cfg.Rows > 0 && cfg.Cols > 0 {
		f, err = pty.StartWithSize(cmd, &pty.Winsize{
			Rows: cfg.Rows, Cols: cfg.Cols,
			X: cfg.CellWidth * cfg.Cols, Y: cfg.CellHeight * cfg.Rows,
		})
	} else {
		f, err = pty.Start(cmd)
	}
	if err != nil {
		return nil, err
	}

	p := &PTY{
		file:   f,
		cmd:    cmd,
		exitCh: make(chan ExitStatus, 1),
		done:   make(chan struct{}),
	}

	go p.wait()

	return p, nil
}

func buildEnv(cfg Config) []string {
	term := cfg.Term
	if term == "" {
		term = "xterm-256color"
	}

	base := os.Environ()
	env := make([]string, 0, len(base)+len(cfg.Env)+2)
	for _, kv := range base {
		if strings.HasPrefix(kv, "DESKTOP_STARTUP_ID=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "TERM="+term, "COLORTERM=truecolor")
	env = append(env, cfg.Env...)
	return env
}

func (p *PTY) wait() {
	err := p.cmd.Wait()
	code := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else {
			code = -1
		}
	}
	p.exitCh <- ExitStatus{Code: code, Err: err}
	close(p.done)
}

// Read reads output bytes from the child. It does not hold the instance
// lock across the blocking syscall.
func (p *PTY) Read(b []byte) (int, error) {
	p.mu.Lock()
	f, closed := p.file, p.closed
	p.mu.Unlock()
	if closed || f == nil {
		return 0, io.EOF
	}
	return f.Read(b)
}

// Write sends input bytes to the child.
func (p *PTY) Write(b []byte) (int, error) {
	p.mu.Lock()
	f, closed := p.file, p.closed
	p.mu.Unlock()
	if closed || f == nil {
		return 0, io.ErrClosedPipe
	}
	return f.Write(b)
}

// Resize delivers new grid and pixel dimensions to the kernel, which
// signals the child with the platform equivalent of SIGWINCH.
func (p *PTY) Resize(cols, rows, cellW, cellH int) error {
	p.mu.Lock()
	f, closed := p.file, p.closed
	p.mu.Unlock()
	if closed || f == nil {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{
		Rows: uint16(rows), Cols: uint16(cols),
		X: uint16(cellW * cols), Y: uint16(cellH * rows),
	})
}

// Exited returns a channel that receives exactly one ExitStatus when the
// child terminates.
func (p *PTY) Exited() <-chan ExitStatus {
	return p.exitCh
}

// Close terminates the child (SIGTERM, escalating to SIGKILL after
// closeTimeout) and releases the PTY file descriptor.
func (p *PTY) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	f := p.file
	cmd := p.cmd
	p.file = nil
	p.mu.Unlock()

	if f != nil {
		_ = f.Close()
	}

	if cmd == nil || cmd.Process == nil {
		return nil
	}

	_ = cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-p.done:
		return nil
	case <-time.After(closeTimeout):
	}

	_ = cmd.Process.Signal(syscall.SIGKILL)
	<-p.done
	return nil
}
