package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "./data/speech.db", cfg.Database.Path)
	assert.Equal(t, "UTC", cfg.Reports.Timezone)
	assert.Equal(t, 10, cfg.Reports.MaxCriticalMoments)
	assert.Equal(t, 3, cfg.Reports.MaxSuggestions)
	assert.Equal(t, 140.0, cfg.Analysis.IdealWPMMin)
	assert.Equal(t, 160.0, cfg.Analysis.IdealWPMMax)

	sum := cfg.Analysis.Weights.PowerDynamics +
		cfg.Analysis.Weights.LinguisticAuthority +
		cfg.Analysis.Weights.VocalCommand +
		cfg.Analysis.Weights.PersuasionInfluence
	assert.InDelta(t, 1.0, sum, 0.001, "score weights must sum to 1.0")
}

func TestGetters(t *testing.T) {
	require.NoError(t, Init())

	assert.Equal(t, "development", GetString("environment"))
	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, 0.30, GetFloat64("analysis.weights.power_dynamics"))
	assert.True(t, GetBool("rate_limiting.enabled"))
	assert.Positive(t, GetDuration("processing.poll_interval"))
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Analysis: AnalysisConfig{
				Weights: ScoreWeights{
					PowerDynamics:       0.30,
					LinguisticAuthority: 0.25,
					VocalCommand:        0.20,
					PersuasionInfluence: 0.25,
				},
			},
			Processing: ProcessingConfig{Workers: 2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "weights do not sum to one",
			mutate:  func(c *Config) { c.Analysis.Weights.PowerDynamics = 0.50 },
			wantErr: "must sum to 1.0",
		},
		{
			name:   "non-positive workers auto-corrected",
			mutate: func(c *Config) { c.Processing.Workers = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Positive(t, cfg.Processing.Workers)
		})
	}
}
