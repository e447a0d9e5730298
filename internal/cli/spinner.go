package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/matzehuels/canvasballoon/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a status line on a terminal. On any other writer it only
// tracks its message, so piped and test output stay clean.
type spinner struct {
	w       io.Writer
	animate bool

	mu      sync.Mutex
	message string
	width   int
	started bool

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func newSpinner(w io.Writer, message string) *spinner {
	return &spinner{
		w:       w,
		animate: isTerminal(w),
		message: message,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start begins the animation, which runs until ctx is done or Stop is called.
func (s *spinner) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	if !s.animate {
		close(s.stopped)
		return
	}
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				s.mu.Lock()
				line := styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]) + " " + StyleDim.Render(s.message)
				s.width = max(s.width, len(s.message)+2)
				fmt.Fprintf(s.w, "\r%s", line)
				s.mu.Unlock()
			}
		}
	}()
}

// SetMessage replaces the status text shown next to the frame.
func (s *spinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

// Message returns the current status text.
func (s *spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Stop ends the animation and clears the line. It is safe to call twice,
// and before Start.
func (s *spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return
	}
	<-s.stopped

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.animate && s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width+2))
		s.width = 0
	}
}

// spinnerHooks narrates a pipeline run on a spinner, one format at a time.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	spin *spinner
}

func (h spinnerHooks) OnRenderStart(_ context.Context, _ string, formats []string) {
	h.spin.SetMessage(fmt.Sprintf("Drawing %s...", strings.Join(formats, ", ")))
}

func (h spinnerHooks) OnFormatStart(_ context.Context, format string) {
	h.spin.SetMessage(fmt.Sprintf("Drawing %s...", format))
}

func (h spinnerHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
	h.spin.Stop()
}
