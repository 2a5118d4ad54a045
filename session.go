package img2ascii

import (
	"context"
	"image"
	"io"
	"sync"
)

// Result is the outcome of one conversion request.
type Result struct {
	Art string
	Err error
}

/*
Session serializes conversion requests from an event-driven caller, such
as a UI that re-converts on every slider tick. Every Submit supersedes the
previous request: the prior conversion's context is cancelled and its
result, should it still complete, is discarded. Only the latest
generation's result is ever delivered on Results, and a stale result never
overwrites a newer one.
*/
type Session struct {
	opts    []Option
	results chan Result

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewSession creates a session whose conversions use opts as defaults.
func NewSession(opts ...Option) *Session {
	return &Session{
		opts:    opts,
		results: make(chan Result, 1),
	}
}

// Results delivers the latest completed conversion. An unconsumed result
// is replaced, never queued behind, when a newer one completes.
func (s *Session) Results() <-chan Result {
	return s.results
}

// Submit decodes an image from r and converts it. It returns immediately;
// the outcome arrives on Results unless a newer Submit supersedes it.
// Per-request opts are applied on top of the session defaults.
func (s *Session) Submit(ctx context.Context, r io.Reader, opts ...Option) {
	gen, ctx := s.supersede(ctx)
	go func() {
		img, err := decode(r)
		if err != nil {
			s.deliver(gen, Result{Err: err})
			return
		}
		s.convert(ctx, gen, img, opts)
	}()
}

// SubmitImage converts an already-decoded raster.
func (s *Session) SubmitImage(ctx context.Context, img image.Image, opts ...Option) {
	gen, ctx := s.supersede(ctx)
	go s.convert(ctx, gen, img, opts)
}

// Close cancels any in-flight conversion.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) supersede(ctx context.Context) (uint64, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	return s.gen, ctx
}

func (s *Session) convert(ctx context.Context, gen uint64, img image.Image, opts []Option) {
	if ctx.Err() != nil {
		return
	}
	merged := make([]Option, 0, len(s.opts)+len(opts))
	merged = append(merged, s.opts...)
	merged = append(merged, opts...)
	art, err := New(merged...).Convert(img)
	if ctx.Err() != nil {
		return
	}
	s.deliver(gen, Result{Art: art, Err: err})
}

// deliver publishes a result only if gen is still the latest generation,
// replacing any unconsumed older result.
func (s *Session) deliver(gen uint64, res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	select {
	case <-s.results:
	default:
	}
	s.results <- res
}
