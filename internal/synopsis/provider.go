package synopsis

import (
	"fmt"

	"github.com/wonny/newsquant/pkg/config"
	"github.com/wonny/newsquant/pkg/logger"
)

// NewProvider returns a Provider for the configured backend.
// Client construction is deferred until the Generator first needs it.
func NewProvider(cfg config.SummaryConfig) Provider {
	return func() (Summarizer, error) {
		switch cfg.Provider {
		case config.ProviderAnthropic:
			s, err := NewAnthropicSummarizer(cfg.AnthropicAPIKey, cfg.Model)
			if err != nil {
				return nil, err
			}
			return s, nil
		case config.ProviderCohere:
			s, err := NewCohereSummarizer(cfg.CohereAPIKey, cfg.Model, nil)
			if err != nil {
				return nil, err
			}
			return s, nil
		default:
			return nil, fmt.Errorf("unknown summary provider %q", cfg.Provider)
		}
	}
}

// FromConfig builds a Generator from application config
func FromConfig(cfg *config.Config, log *logger.Logger) *Generator {
	return NewGenerator(NewProvider(cfg.Summary), Options{
		Disabled: cfg.Summary.Disabled,
		MaxChars: cfg.Signal.SynopsisChars,
		Timeout:  cfg.Summary.Timeout,
	}, log)
}
