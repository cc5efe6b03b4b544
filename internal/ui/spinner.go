package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// isTerminalStderr reports whether stderr is an interactive terminal. When
// it isn't (piped output, CI logs), the spinner prints one line instead of
// redrawing in place, since carriage-return animation is meaningless noise
// in a log file.
func isTerminalStderr() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// InlineSpinner renders a single animated status line on stderr, in place,
// for operations with no meaningful intermediate progress bar — the
// registry scan and the per-app size walk both use one to show liveness
// while they work.
type InlineSpinner struct {
	mu      sync.Mutex
	done    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewInlineSpinner returns a spinner ready to Start.
func NewInlineSpinner() *InlineSpinner {
	return &InlineSpinner{}
}

// Start begins rendering message with an animated prefix, updated every
// 100ms, until Stop or StopWithError is called.
func (s *InlineSpinner) Start(message string) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.done = make(chan struct{})
	s.mu.Unlock()

	if !isTerminalStderr() {
		fmt.Fprintf(os.Stderr, "  %s\n", message)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		frame := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				frame = (frame + 1) % len(SpinnerFrames)
				fmt.Fprintf(os.Stderr, "\r\033[K  %s %s", SpinnerFrames[frame], message)
			}
		}
	}()
}

// Stop halts the animation and prints a final success-styled line.
func (s *InlineSpinner) Stop(finalMessage string) {
	s.stopAnimation()
	fmt.Fprintf(os.Stderr, "\r\033[K  %s %s\n", SuccessStyle().Render(IconCheck), finalMessage)
}

// StopWithError halts the animation and prints a final error-styled line.
func (s *InlineSpinner) StopWithError(finalMessage string) {
	s.stopAnimation()
	fmt.Fprintf(os.Stderr, "\r\033[K  %s %s\n", ErrorStyle().Render(IconCross), finalMessage)
}

func (s *InlineSpinner) stopAnimation() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()
}
