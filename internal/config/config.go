package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	PostgresURL string

	LLM      LLMConfig
	Amadeus  AmadeusConfig
	Weather  WeatherConfig
	Search   SearchConfig
	HTTP     HTTPConfig
	Defaults DefaultsConfig
}

type LLMConfig struct {
	Provider      string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	PrimaryModel  string
	FallbackModel string
	Temperature   float32
	MaxRetries    int
	BaseDelay     time.Duration
	Timeout       time.Duration
}

// APIKey returns the key matching the selected provider.
func (c LLMConfig) APIKey() string {
	if strings.EqualFold(c.Provider, "openai") {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

type WeatherConfig struct {
	GeocodeURL  string
	ForecastURL string
}

type SearchConfig struct {
	SerpAPIKey string
	SerpAPIURL string
}

type HTTPConfig struct {
	Timeout time.Duration
}

type DefaultsConfig struct {
	Origin   string
	Currency string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("LLM_PRIMARY_MODEL", "gemini-2.5-flash")
	v.SetDefault("LLM_FALLBACK_MODEL", "gemini-2.5-pro")
	v.SetDefault("LLM_TEMPERATURE", 0.7)
	v.SetDefault("LLM_MAX_RETRIES", 3)
	v.SetDefault("LLM_BASE_DELAY", "600ms")
	v.SetDefault("LLM_TIMEOUT", "60s")

	v.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	v.SetDefault("OPEN_METEO_GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("OPEN_METEO_FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("SERPAPI_URL", "https://serpapi.com/search")
	v.SetDefault("HTTP_TIMEOUT", "20s")

	v.SetDefault("DEFAULT_ORIGIN", "Mumbai")
	v.SetDefault("CURRENCY", "INR")
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		PostgresURL: v.GetString("POSTGRES_URL"),
		LLM: LLMConfig{
			Provider:      v.GetString("LLM_PROVIDER"),
			GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
			OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
			PrimaryModel:  v.GetString("LLM_PRIMARY_MODEL"),
			FallbackModel: v.GetString("LLM_FALLBACK_MODEL"),
			Temperature:   float32(v.GetFloat64("LLM_TEMPERATURE")),
			MaxRetries:    v.GetInt("LLM_MAX_RETRIES"),
			BaseDelay:     v.GetDuration("LLM_BASE_DELAY"),
			Timeout:       v.GetDuration("LLM_TIMEOUT"),
		},
		Amadeus: AmadeusConfig{
			ClientID:     v.GetString("AMADEUS_CLIENT_ID"),
			ClientSecret: v.GetString("AMADEUS_CLIENT_SECRET"),
			BaseURL:      strings.TrimRight(v.GetString("AMADEUS_BASE_URL"), "/"),
		},
		Weather: WeatherConfig{
			GeocodeURL:  v.GetString("OPEN_METEO_GEOCODE_URL"),
			ForecastURL: v.GetString("OPEN_METEO_FORECAST_URL"),
		},
		Search: SearchConfig{
			SerpAPIKey: v.GetString("SERPAPI_KEY"),
			SerpAPIURL: v.GetString("SERPAPI_URL"),
		},
		HTTP: HTTPConfig{
			Timeout: v.GetDuration("HTTP_TIMEOUT"),
		},
		Defaults: DefaultsConfig{
			Origin:   v.GetString("DEFAULT_ORIGIN"),
			Currency: v.GetString("CURRENCY"),
		},
	}
}
