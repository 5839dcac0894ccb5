package cli

import (
	"context"
	"sync"
	"testing"
	"time"

	pkgio "github.com/matzehuels/pageorder/pkg/io"
	"github.com/matzehuels/pageorder/pkg/observability"
	"github.com/matzehuels/pageorder/pkg/pipeline"
)

func TestSpinner_Text(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		advance int
		want    string
	}{
		{"no counter", 0, 3, "Resolving sequences"},
		{"start", 200, 0, "Resolving sequences 0/200"},
		{"partway", 200, 12, "Resolving sequences 12/200"},
		{"capped at total", 2, 5, "Resolving sequences 2/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newCountingSpinner(context.Background(), "Resolving sequences", tt.total)
			for range tt.advance {
				s.Advance()
			}
			if got := s.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpinner_AdvanceConcurrent(t *testing.T) {
	s := newCountingSpinner(context.Background(), "Resolving sequences", 100)
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Advance()
		}()
	}
	wg.Wait()
	if got, want := s.Text(), "Resolving sequences 100/100"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestSpinner_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newCountingSpinner(ctx, "Resolving sequences", 4)
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancellation, want true")
	}
	s.Stop()
}

func TestSpinner_StopIsNotCancellation(t *testing.T) {
	s := newSpinner("Rendering SVG...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("Cancelled() = true after Stop, want false")
	}
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	s := newSpinner("Rendering SVG...")
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()

	// A spinner that never started must not block in Stop.
	newSpinner("idle").Stop()
}

func TestTrackSequences(t *testing.T) {
	defer observability.Reset()
	prev := observability.Pipeline()

	in, err := pkgio.Load(exampleInput)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	s := newCountingSpinner(context.Background(), "Resolving sequences", len(in.Sequences))
	restore := trackSequences(s)
	_, err = pipeline.NewRunner(nil, nil, nil).Run(context.Background(), in, pipeline.Options{Workers: 4})
	restore()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if got, want := s.Text(), "Resolving sequences 6/6"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if _, ok := observability.Pipeline().(sequenceProgress); ok {
		t.Error("restore() left the progress hooks installed")
	}
	if observability.Pipeline() != prev {
		t.Error("restore() did not reinstate the previous hooks")
	}
}
