package synopsis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wonny/newsquant/pkg/logger"
)

// ErrUnavailable marks a summarizer that cannot be used for the process lifetime
var ErrUnavailable = errors.New("summarization capability unavailable")

// Summarizer is an abstractive summarization capability
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Provider builds a Summarizer. It is invoked at most once per Generator.
type Provider func() (Summarizer, error)

// Options for a Generator
type Options struct {
	Disabled bool
	MaxChars int
	Timeout  time.Duration
}

// Generator produces synopses, preferring the abstractive capability and
// falling back to truncation. Summarize never fails.
// ⭐ SSOT: 요약 fallback 체인은 여기서만
type Generator struct {
	provider Provider
	opts     Options
	logger   *logger.Logger

	once       sync.Once
	summarizer Summarizer // nil after init = permanently unavailable
	initCalls  atomic.Int32
}

// NewGenerator creates a generator; provider may be nil
func NewGenerator(provider Provider, opts Options, log *logger.Logger) *Generator {
	if opts.MaxChars <= 0 {
		opts.MaxChars = 200
	}
	return &Generator{
		provider: provider,
		opts:     opts,
		logger:   log,
	}
}

// Summarize returns a short synopsis of the article
func (g *Generator) Summarize(ctx context.Context, title, content string) string {
	cleanContent := Clean(content)

	if text, ok := g.abstractive(ctx, Clean(title), cleanContent); ok {
		return text
	}

	return Truncate(cleanContent, g.opts.MaxChars)
}

// Available reports whether the abstractive tier is usable, initializing it if needed
func (g *Generator) Available() bool {
	return g.capability() != nil
}

// abstractive runs tier 1 and reports whether it produced text
func (g *Generator) abstractive(ctx context.Context, title, content string) (string, bool) {
	if content == "" && title == "" {
		return "", false
	}

	s := g.capability()
	if s == nil {
		return "", false
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	out, err := g.invoke(ctx, s, title+". "+content)
	if err != nil {
		g.logger.WithError(err).Debug("Abstractive summary failed, using truncation")
		return "", false
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", false
	}
	return out, true
}

// invoke converts a panicking summarizer into an error
func (g *Generator) invoke(ctx context.Context, s Summarizer, text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("summarizer panicked")
		}
	}()
	return s.Summarize(ctx, text)
}

// capability resolves the summarizer once; failure is cached as nil
func (g *Generator) capability() Summarizer {
	if g.opts.Disabled || g.provider == nil {
		return nil
	}

	g.once.Do(func() {
		g.initCalls.Add(1)

		s, err := g.safeProvide()
		if err != nil || s == nil {
			if err == nil {
				err = ErrUnavailable
			}
			g.logger.WithError(err).Warn("Summarization capability unavailable, falling back to truncation")
			return
		}

		g.summarizer = s
		g.logger.Info("Summarization capability initialized")
	})

	return g.summarizer
}

func (g *Generator) safeProvide() (s Summarizer, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, ErrUnavailable
		}
	}()
	return g.provider()
}
