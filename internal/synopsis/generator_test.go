package synopsis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/newsquant/pkg/config"
	"github.com/wonny/newsquant/pkg/logger"
)

type stubSummarizer struct {
	mu    sync.Mutex
	out   string
	err   error
	panic bool
	got   []string
}

func (s *stubSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	s.got = append(s.got, text)
	s.mu.Unlock()
	if s.panic {
		panic("boom")
	}
	return s.out, s.err
}

func providerOf(s Summarizer, err error) (Provider, *int) {
	calls := 0
	return func() (Summarizer, error) {
		calls++
		return s, err
	}, &calls
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"See https://example.com/a?b=c for more", "See for more"},
		{"Visit www.example.com today", "Visit today"},
		{"  lots \n\t of   space  ", "lots of space"},
		{`<a href="https://news.google.com/x">Starbucks</a>&nbsp;<font>Reuters</font>`, "Starbucks Reuters"},
		{"<p>Burgers &amp; fries</p>&nbsp;&quot;new&quot;", `Burgers & fries "new"`},
		{"Tom&#39;s Caf&eacute;", "Tom's Café"},
		// 태그 제거 후 디코딩: 이스케이프된 마크업은 텍스트로 남음
		{"&lt;b&gt;bold&lt;/b&gt;", "<b>bold</b>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in), "Clean(%q)", tt.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 200))
	assert.Equal(t, strings.Repeat("a", 200), Truncate(strings.Repeat("a", 200), 200))
	assert.Equal(t, strings.Repeat("a", 200)+TruncationMarker, Truncate(strings.Repeat("a", 201), 200))

	// rune-safe
	assert.Equal(t, "가나"+TruncationMarker, Truncate("가나다라", 2))
}

func TestGenerator_Disabled(t *testing.T) {
	stub := &stubSummarizer{out: "should not be used"}
	provider, calls := providerOf(stub, nil)

	g := NewGenerator(provider, Options{Disabled: true, MaxChars: 200}, logger.Nop())

	long := "<p>" + strings.Repeat("word ", 100) + "</p> https://example.com"
	got := g.Summarize(context.Background(), "Title", long)

	cleaned := Clean(long)
	assert.True(t, strings.HasPrefix(cleaned, strings.TrimSuffix(got, TruncationMarker)))
	assert.LessOrEqual(t, len([]rune(got)), 200+len([]rune(TruncationMarker)))
	assert.Equal(t, 0, *calls, "provider must not be called when disabled")
	assert.False(t, g.Available())
}

func TestGenerator_NilProvider(t *testing.T) {
	g := NewGenerator(nil, Options{}, logger.Nop())

	assert.Equal(t, "Body text", g.Summarize(context.Background(), "T", "  Body   text "))
}

func TestGenerator_Abstractive(t *testing.T) {
	stub := &stubSummarizer{out: "  Chain rolls out robots to speed service.  "}
	provider, calls := providerOf(stub, nil)

	g := NewGenerator(provider, Options{MaxChars: 200}, logger.Nop())

	got := g.Summarize(context.Background(), "<b>Robots</b>", "Chain <i>adds</i> robots https://x.io/y")
	assert.Equal(t, "Chain rolls out robots to speed service.", got)
	require.Len(t, stub.got, 1)
	assert.Equal(t, "Robots. Chain adds robots", stub.got[0])
	assert.Equal(t, 1, *calls)
}

func TestGenerator_FallbackOnInvokeError(t *testing.T) {
	stub := &stubSummarizer{err: errors.New("rate limited")}
	provider, _ := providerOf(stub, nil)

	g := NewGenerator(provider, Options{MaxChars: 10}, logger.Nop())

	assert.Equal(t, "0123456789"+TruncationMarker, g.Summarize(context.Background(), "t", "0123456789abc"))
	assert.True(t, g.Available(), "a call-time failure does not disable the capability")
}

func TestGenerator_FallbackOnEmptyResult(t *testing.T) {
	stub := &stubSummarizer{out: "   "}
	provider, _ := providerOf(stub, nil)

	g := NewGenerator(provider, Options{}, logger.Nop())

	assert.Equal(t, "content", g.Summarize(context.Background(), "t", "content"))
}

func TestGenerator_FallbackOnPanic(t *testing.T) {
	stub := &stubSummarizer{panic: true}
	provider, _ := providerOf(stub, nil)

	g := NewGenerator(provider, Options{}, logger.Nop())

	assert.Equal(t, "content", g.Summarize(context.Background(), "t", "content"))
}

func TestGenerator_InitFailureIsCached(t *testing.T) {
	provider, calls := providerOf(nil, errors.New("no api key"))

	g := NewGenerator(provider, Options{}, logger.Nop())

	for i := 0; i < 3; i++ {
		assert.Equal(t, "body", g.Summarize(context.Background(), "t", "body"))
	}
	assert.Equal(t, 1, *calls)
	assert.False(t, g.Available())
}

func TestGenerator_NilSummarizerIsUnavailable(t *testing.T) {
	provider, calls := providerOf(nil, nil)

	g := NewGenerator(provider, Options{}, logger.Nop())

	assert.Equal(t, "body", g.Summarize(context.Background(), "t", "body"))
	assert.False(t, g.Available())
	assert.Equal(t, 1, *calls)
}

func TestGenerator_PanickingProvider(t *testing.T) {
	g := NewGenerator(func() (Summarizer, error) { panic("init crash") }, Options{}, logger.Nop())

	assert.Equal(t, "body", g.Summarize(context.Background(), "t", "body"))
	assert.False(t, g.Available())
}

func TestGenerator_ConcurrentInitOnce(t *testing.T) {
	stub := &stubSummarizer{out: "ok"}
	var mu sync.Mutex
	calls := 0
	provider := func() (Summarizer, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return stub, nil
	}

	g := NewGenerator(provider, Options{}, logger.Nop())

	var wg sync.WaitGroup
	results := make([]string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.Summarize(context.Background(), "t", "content")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	assert.Equal(t, int32(1), g.initCalls.Load())
	for _, r := range results {
		assert.Equal(t, "ok", r)
	}
}

func TestGenerator_EmptyInput(t *testing.T) {
	stub := &stubSummarizer{out: "never"}
	provider, calls := providerOf(stub, nil)

	g := NewGenerator(provider, Options{}, logger.Nop())

	assert.Equal(t, "", g.Summarize(context.Background(), "", "<br/>"))
	assert.Equal(t, 0, *calls)
}

func TestNewProvider_MissingKeys(t *testing.T) {
	tests := []config.SummaryConfig{
		{Provider: config.ProviderAnthropic},
		{Provider: config.ProviderCohere},
		{Provider: "openai"},
	}

	for _, cfg := range tests {
		t.Run(cfg.Provider, func(t *testing.T) {
			s, err := NewProvider(cfg)()
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestNewProvider_WithKeys(t *testing.T) {
	s, err := NewProvider(config.SummaryConfig{Provider: config.ProviderAnthropic, AnthropicAPIKey: "test"})()
	require.NoError(t, err)
	assert.IsType(t, &AnthropicSummarizer{}, s)

	s, err = NewProvider(config.SummaryConfig{Provider: config.ProviderCohere, CohereAPIKey: "test", Model: "command-r-plus"})()
	require.NoError(t, err)
	require.IsType(t, &CohereSummarizer{}, s)
	assert.Equal(t, "command-r-plus", s.(*CohereSummarizer).model)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Summary.Disabled = true
	cfg.Signal.SynopsisChars = 5

	g := FromConfig(cfg, logger.Nop())

	assert.Equal(t, "abcde"+TruncationMarker, g.Summarize(context.Background(), "t", "abcdefgh"))
}
