package utils

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
)

// GenerationRequest is a single prompt/response exchange with a text model.
type GenerationRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
	Temperature       float32
}

// TextGenerator is a provider-specific text generation endpoint.
// Implementations must report provider overload by wrapping ErrModelOverloaded
// and every other transport problem by wrapping ErrUpstreamTransport.
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}

type ModelTier int32

const (
	PrimaryTier ModelTier = iota
	FallbackTier
)

func (t ModelTier) String() string {
	if t == FallbackTier {
		return "fallback"
	}
	return "primary"
}

type InvokerConfig struct {
	PrimaryModel  string
	FallbackModel string
	Temperature   float32
	MaxRetries    int
	BaseDelay     time.Duration
	// Timeout bounds each individual model call. Zero means only the caller's context applies.
	Timeout time.Duration
}

func DefaultInvokerConfig() InvokerConfig {
	return InvokerConfig{
		PrimaryModel:  "gemini-2.5-flash",
		FallbackModel: "gemini-2.5-pro",
		Temperature:   0.7,
		MaxRetries:    3,
		BaseDelay:     600 * time.Millisecond,
	}
}

type ModelInvokerInterface interface {
	GenerateStructured(ctx context.Context, prompt, systemInstruction string) (json.RawMessage, error)
	Tier() ModelTier
}

// ModelInvoker wraps a TextGenerator with retry, model-tier fallback and JSON
// extraction. One instance is shared by the whole process, so its tier is
// process-wide: once the fallback model is engaged it stays engaged.
type ModelInvoker struct {
	generator TextGenerator
	cfg       InvokerConfig
	tier      atomic.Int32
}

func NewModelInvoker(generator TextGenerator, cfg InvokerConfig) *ModelInvoker {
	defaults := DefaultInvokerConfig()
	if cfg.PrimaryModel == "" {
		cfg.PrimaryModel = defaults.PrimaryModel
	}
	if cfg.FallbackModel == "" {
		cfg.FallbackModel = defaults.FallbackModel
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &ModelInvoker{generator: generator, cfg: cfg}
}

func (m *ModelInvoker) Tier() ModelTier {
	return ModelTier(m.tier.Load())
}

func (m *ModelInvoker) modelFor(tier ModelTier) string {
	if tier == FallbackTier {
		return m.cfg.FallbackModel
	}
	return m.cfg.PrimaryModel
}

// GenerateStructured sends prompt (preceded by systemInstruction when set) and
// returns the JSON payload found in the reply. Parse failures are never retried.
func (m *ModelInvoker) GenerateStructured(ctx context.Context, prompt, systemInstruction string) (json.RawMessage, error) {
	req := GenerationRequest{
		SystemInstruction: systemInstruction,
		Prompt:            prompt,
		Temperature:       m.cfg.Temperature,
	}

	text, err := m.generateWithFallback(ctx, req)
	if err != nil {
		return nil, err
	}
	return ExtractJSON(text)
}

func (m *ModelInvoker) generateWithFallback(ctx context.Context, req GenerationRequest) (string, error) {
	tier := m.Tier()
	text, err := m.generateWithRetry(ctx, tier, req)
	if err == nil {
		return text, nil
	}

	if errors.Is(err, ErrModelOverloaded) && tier == PrimaryTier {
		if m.tier.CompareAndSwap(int32(PrimaryTier), int32(FallbackTier)) {
			log.Warn().
				Str("from", m.cfg.PrimaryModel).
				Str("to", m.cfg.FallbackModel).
				Msg("primary model overloaded, switching to fallback model")
		}
		text, err = m.generateWithRetry(ctx, FallbackTier, req)
		if err == nil {
			return text, nil
		}
	}

	return "", Classify(ErrUpstreamTransport, err)
}

func (m *ModelInvoker) generateWithRetry(ctx context.Context, tier ModelTier, req GenerationRequest) (string, error) {
	req.Model = m.modelFor(tier)

	policy := &backoff.ExponentialBackOff{
		InitialInterval:     m.cfg.BaseDelay,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         m.cfg.BaseDelay << m.cfg.MaxRetries,
	}

	attempt := 0
	operation := func() (string, error) {
		attempt++
		callCtx := ctx
		if m.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
			defer cancel()
		}

		log.Debug().Str("model", req.Model).Int("attempt", attempt).Msg("calling model")
		text, err := m.generator.GenerateText(callCtx, req)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrModelOverloaded) {
			return "", err
		}
		return "", backoff.Permanent(Classify(ErrUpstreamTransport, err))
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(m.cfg.MaxRetries+1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).
				Str("model", req.Model).
				Int("attempts_left", m.cfg.MaxRetries+1-attempt).
				Dur("retry_in", next).
				Msg("model call retrying")
		}),
	)
}
