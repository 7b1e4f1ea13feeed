package llm_fx

import (
	"context"
	"io"

	"go.uber.org/fx"

	"tripmate/internal/config"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideTextGenerator, provideModelInvoker)

func provideTextGenerator(lc fx.Lifecycle, cfg *config.Config) (utils.TextGenerator, error) {
	generator, err := utils.NewTextGenerator(context.Background(), cfg.LLM.Provider, cfg.LLM.APIKey())
	if err != nil {
		return nil, err
	}
	if closer, ok := generator.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return generator, nil
}

func provideModelInvoker(generator utils.TextGenerator, cfg *config.Config) utils.ModelInvokerInterface {
	return utils.NewModelInvoker(generator, utils.InvokerConfig{
		PrimaryModel:  cfg.LLM.PrimaryModel,
		FallbackModel: cfg.LLM.FallbackModel,
		Temperature:   cfg.LLM.Temperature,
		MaxRetries:    cfg.LLM.MaxRetries,
		BaseDelay:     cfg.LLM.BaseDelay,
		Timeout:       cfg.LLM.Timeout,
	})
}
