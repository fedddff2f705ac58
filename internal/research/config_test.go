package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogger/pkg/errors"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "gemini-2.5-pro", cfg.CriticModel)
	assert.Equal(t, "gemini-2.5-flash", cfg.WorkerModel)
	assert.Equal(t, 5, cfg.MaxSearchIterations)
}

func TestNew_SingleOverrideKeepsOtherDefaults(t *testing.T) {
	cfg := New(WithMaxSearchIterations(10))

	assert.Equal(t, DefaultCriticModel, cfg.CriticModel)
	assert.Equal(t, DefaultWorkerModel, cfg.WorkerModel)
	assert.Equal(t, 10, cfg.MaxSearchIterations)
}

func TestNew_AllOverrides(t *testing.T) {
	cfg := New(
		WithCriticModel("gemini-2.0-pro"),
		WithWorkerModel("gemini-2.0-flash"),
		WithMaxSearchIterations(12),
	)

	assert.Equal(t, "gemini-2.0-pro", cfg.CriticModel)
	assert.Equal(t, "gemini-2.0-flash", cfg.WorkerModel)
	assert.Equal(t, 12, cfg.MaxSearchIterations)
}

func TestNew_RepeatedReadsAreStable(t *testing.T) {
	cfg := New(WithWorkerModel("gemini-2.5-flash-lite"))

	first := cfg.WorkerModel
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, cfg.WorkerModel)
		assert.Equal(t, DefaultCriticModel, cfg.CriticModel)
	}
}

func TestNew_NeverFails(t *testing.T) {
	// Construction is total: even values Validate would reject are accepted.
	cfg := New(
		WithCriticModel(""),
		WithMaxSearchIterations(-1),
	)

	assert.Equal(t, "", cfg.CriticModel)
	assert.Equal(t, -1, cfg.MaxSearchIterations)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr string
	}{
		{name: "defaults pass", cfg: New()},
		{name: "override passes", cfg: New(WithMaxSearchIterations(10))},
		{name: "empty critic model", cfg: New(WithCriticModel("")), wantErr: "critic_model"},
		{name: "empty worker model", cfg: New(WithWorkerModel("")), wantErr: "worker_model"},
		{name: "zero iterations", cfg: New(WithMaxSearchIterations(0)), wantErr: "max_search_iterations"},
		{name: "negative iterations", cfg: New(WithMaxSearchIterations(-3)), wantErr: "max_search_iterations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig))

			var verr *errors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantErr, verr.Field)
		})
	}
}
