package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"google.golang.org/genai"

	"blogger/internal/research"
	"blogger/pkg/errors"
	"blogger/pkg/logger"
)

type Config struct {
	App      AppConfig
	Google   GoogleConfig
	Research ResearchConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"blogger"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// GoogleConfig carries GenAI credentials. With USE_VERTEXAI=false the API key
// authenticates against AI Studio; otherwise project and location select the
// Vertex backend and ADC supplies credentials.
type GoogleConfig struct {
	UseVertexAI bool   `envconfig:"GOOGLE_GENAI_USE_VERTEXAI" default:"false"`
	APIKey      string `envconfig:"GOOGLE_API_KEY"`
	Project     string `envconfig:"GOOGLE_CLOUD_PROJECT"`
	Location    string `envconfig:"GOOGLE_CLOUD_LOCATION" default:"us-central1"`
}

// ClientConfig builds the genai client configuration for the selected
// backend. It only assembles the struct; the caller decides when to dial.
func (c GoogleConfig) ClientConfig() *genai.ClientConfig {
	if c.UseVertexAI {
		return &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  c.Project,
			Location: c.Location,
		}
	}

	return &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  c.APIKey,
	}
}

// ResearchConfig exposes env overrides for the research settings. Defaults
// mirror the constants in internal/research so an empty environment yields
// the documented configuration.
type ResearchConfig struct {
	CriticModel         string `envconfig:"CRITIC_MODEL" default:"gemini-2.5-pro"`
	WorkerModel         string `envconfig:"WORKER_MODEL" default:"gemini-2.5-flash"`
	MaxSearchIterations int    `envconfig:"MAX_SEARCH_ITERATIONS" default:"5"`
}

// Configuration builds the research settings holder from resolved values.
func (c ResearchConfig) Configuration() research.Configuration {
	return research.New(
		research.WithCriticModel(c.CriticModel),
		research.WithWorkerModel(c.WorkerModel),
		research.WithMaxSearchIterations(c.MaxSearchIterations),
	)
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}

// Bootstrap loads configuration and initializes the global logger from it.
// Intended for process start; consumers get the config back for wiring.
func Bootstrap() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}

	logger.Infof(
		"research configuration: critic=%s worker=%s max_search_iterations=%d",
		cfg.Research.CriticModel, cfg.Research.WorkerModel, cfg.Research.MaxSearchIterations,
	)

	return cfg, nil
}
