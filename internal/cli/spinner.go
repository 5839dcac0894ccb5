package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matzehuels/pageorder/pkg/observability"
)

// Spinner is a stderr progress indicator. With a total it also shows how
// many units of work are done ("Resolving sequences 12/200").
type Spinner struct {
	message string
	total   int
	current atomic.Int64

	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	started atomic.Bool
	frames  []string

	mu    sync.Mutex
	width int // columns written by the last frame
}

// newSpinner creates a spinner without a work counter.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that stops when ctx is cancelled.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	return newCountingSpinner(ctx, message, 0)
}

// newCountingSpinner creates a spinner that counts up to total.
func newCountingSpinner(ctx context.Context, message string, total int) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		total:   total,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Advance records one finished unit of work. Safe for concurrent use.
func (s *Spinner) Advance() { s.current.Add(1) }

// Text returns the line the spinner shows next to its frame.
func (s *Spinner) Text() string {
	if s.total <= 0 {
		return s.message
	}
	n := min(int(s.current.Load()), s.total)
	return fmt.Sprintf("%s %d/%d", s.message, n, s.total)
}

// Start begins the animation. Calling Start twice has no effect.
func (s *Spinner) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				text := s.Text()
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(text))
				s.width = max(s.width, len(text)+2)
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop stops the spinner and clears the line. Stop is idempotent and may
// be called on a spinner that was never started.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	if s.started.Load() {
		<-s.stopped
	}
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", s.width+2))
	s.width = 0
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled returns true if the spinner's context was cancelled from
// outside rather than by Stop.
func (s *Spinner) Cancelled() bool {
	select {
	case <-s.done:
		return false
	default:
		return s.ctx.Err() != nil
	}
}

// sequenceProgress advances a spinner for every resolved sequence and
// forwards all events to the hooks it replaced.
type sequenceProgress struct {
	observability.PipelineHooks
	spin *Spinner
}

func (p sequenceProgress) OnSequence(ctx context.Context, index int, status string, d time.Duration, err error) {
	p.spin.Advance()
	p.PipelineHooks.OnSequence(ctx, index, status, d, err)
}

// trackSequences installs pipeline hooks that drive spin and returns a
// function restoring the previous hooks.
func trackSequences(spin *Spinner) (restore func()) {
	prev := observability.Pipeline()
	observability.SetPipelineHooks(sequenceProgress{PipelineHooks: prev, spin: spin})
	return func() { observability.SetPipelineHooks(prev) }
}
