package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a progress indicator on stderr while a slow operation
// (typically a Graphviz render) runs. It erases itself when the parent
// context is cancelled, so an interrupted command leaves a clean line.
type spinner struct {
	parent   context.Context
	cancel   context.CancelFunc
	finished chan struct{}
	stop     sync.Once

	mu      sync.Mutex
	message string
}

// startSpinner creates a spinner and begins animating immediately.
func startSpinner(ctx context.Context, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		parent:   ctx,
		cancel:   cancel,
		finished: make(chan struct{}),
		message:  message,
	}
	go s.run(sctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.finished)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			s.erase()
			return
		case <-ticker.C:
			s.mu.Lock()
			msg := s.message
			s.mu.Unlock()
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(msg))
		}
	}
}

// SetMessage swaps the text shown next to the animation.
func (s *spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop halts the animation and clears the line. Safe to call more than once.
func (s *spinner) Stop() {
	s.stop.Do(func() {
		s.cancel()
		<-s.finished
	})
}

func (s *spinner) erase() {
	s.mu.Lock()
	width := len(s.message) + 4
	s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", width))
}

// Cancelled reports whether the parent context ended before Stop was called.
func (s *spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
