package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.PrimaryModel)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.FallbackModel)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 600*time.Millisecond, cfg.LLM.BaseDelay)
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "Mumbai", cfg.Defaults.Origin)
	assert.Equal(t, "INR", cfg.Defaults.Currency)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("LLM_BASE_DELAY", "5ms")
	t.Setenv("AMADEUS_BASE_URL", "http://localhost:9999/")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	cfg := fromViper(v)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey())
	assert.Equal(t, 5*time.Millisecond, cfg.LLM.BaseDelay)
	assert.Equal(t, "http://localhost:9999", cfg.Amadeus.BaseURL)
}
