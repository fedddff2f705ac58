package research

import (
	"blogger/pkg/errors"
)

// Defaults for research model selection and search bounds.
const (
	// DefaultCriticModel is the model used for evaluation tasks.
	DefaultCriticModel = "gemini-2.5-pro"

	// DefaultWorkerModel is the model used for working/generation tasks.
	DefaultWorkerModel = "gemini-2.5-flash"

	// DefaultMaxSearchIterations bounds the search loop of the consuming agent.
	DefaultMaxSearchIterations = 5
)

// Configuration holds research-related models and parameters.
// It is a plain value: construct it once, pass it by value, read fields
// directly. Nothing here touches the environment or the network.
type Configuration struct {
	CriticModel         string
	WorkerModel         string
	MaxSearchIterations int
}

// Option overrides a single field during construction.
type Option func(*Configuration)

// WithCriticModel overrides the evaluation model.
func WithCriticModel(model string) Option {
	return func(c *Configuration) {
		c.CriticModel = model
	}
}

// WithWorkerModel overrides the generation model.
func WithWorkerModel(model string) Option {
	return func(c *Configuration) {
		c.WorkerModel = model
	}
}

// WithMaxSearchIterations overrides the search iteration bound.
func WithMaxSearchIterations(n int) Option {
	return func(c *Configuration) {
		c.MaxSearchIterations = n
	}
}

// New builds a Configuration from the defaults plus any overrides.
// It never fails; call Validate separately if range checks are wanted.
func New(opts ...Option) Configuration {
	cfg := Configuration{
		CriticModel:         DefaultCriticModel,
		WorkerModel:         DefaultWorkerModel,
		MaxSearchIterations: DefaultMaxSearchIterations,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Validate reports the first invalid field, if any. New accepts whatever it
// is given; callers that want range checks opt in here.
func (c Configuration) Validate() error {
	if c.CriticModel == "" {
		return errors.NewValidationError("critic_model", "must not be empty", c.CriticModel)
	}

	if c.WorkerModel == "" {
		return errors.NewValidationError("worker_model", "must not be empty", c.WorkerModel)
	}

	if c.MaxSearchIterations <= 0 {
		return errors.NewValidationError("max_search_iterations", "must be positive", c.MaxSearchIterations)
	}

	return nil
}
