// Command termpipe-demo wires a Terminal, an event loop, and a spawned
// PTY together and dumps the resulting grid to stdout once the child
// exits. It is a thin wiring example, not a full interactive client.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	term "github.com/termpipe/termpipe"
	"github.com/termpipe/termpipe/eventloop"
	"github.com/termpipe/termpipe/scheduler"
	"github.com/termpipe/termpipe/vtpty"
)

// ptyResponseWriter adapts an eventloop.Loop's bounded write queue to the
// io.Writer shape Terminal wants for its ResponseProvider, so device
// status replies and mouse reports flow back through the same
// backpressure path as user input instead of writing the PTY directly.
type ptyResponseWriter struct {
	loop *eventloop.Loop
}

func (w ptyResponseWriter) Write(p []byte) (int, error) {
	return w.loop.Write(p)
}

func main() {
	rows, cols := 24, 80

	p, err := vtpty.Spawn(vtpty.Config{
		Argv: []string{shellPath()},
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		log.Fatalf("spawn: %v", err)
	}
	defer p.Close()

	var mu sync.Mutex
	t := term.New(term.WithSize(rows, cols))

	childExited := make(chan struct{})
	go func() {
		<-p.Exited()
		close(childExited)
	}()

	loop := eventloop.New(eventloop.Config{
		Reader:      p,
		Writer:      p,
		Sink:        t,
		Mutex:       &mu,
		ChildExited: childExited,
		WakeDisplay: func() {
			// A real client would post a redraw here; the demo just lets
			// the final snapshot print after the loop exits.
		},
	})
	t.SetResponseProvider(ptyResponseWriter{loop: loop})

	sched := scheduler.New()
	blinkStop := make(chan struct{})
	go runBlinkCursor(sched, blinkStop)

	stdinDone := make(chan struct{})
	go forwardStdin(loop, stdinDone)

	go func() {
		<-loop.Done()
		close(blinkStop)
	}()

	loop.Run()

	mu.Lock()
	fmt.Print(t.String())
	mu.Unlock()
}

// runBlinkCursor ticks the scheduler's blink-cursor topic every 500ms
// until stop closes, demonstrating the scheduler package's intended use
// without requiring a real display loop to drive it.
func runBlinkCursor(sched *scheduler.Scheduler, stop <-chan struct{}) {
	sched.Every(time.Now(), 500*time.Millisecond, scheduler.TopicBlinkCursor, func() {})
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			sched.CancelTopic(scheduler.TopicBlinkCursor)
			return
		case now := <-ticker.C:
			sched.Tick(now)
		}
	}
}

func forwardStdin(loop *eventloop.Loop, done chan<- struct{}) {
	defer close(done)
	r := bufio.NewReader(os.Stdin)
	buf := make([]byte, 1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := loop.Write(buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func shellPath() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}
