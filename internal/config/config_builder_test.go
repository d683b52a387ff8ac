package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrom runs the merge/validate pipeline over the given configs in
// priority order, bypassing flag parsing so tests do not touch the global
// flag set.
func buildFrom(configs ...*StructuredConfig) (*StructuredConfig, error) {
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)
	return b.withDefaults().build()
}

func TestBuild_DefaultsFillUnsetFields(t *testing.T) {
	cfg, err := buildFrom(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/storynest"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	envCfg := &StructuredConfig{
		App:     App{Environment: "production"},
		Storage: Storage{DB: DB{DSN: "postgres://env-host/storynest"}},
	}
	jsonCfg := &StructuredConfig{
		App:     App{Environment: "staging", SessionTTL: time.Hour},
		Storage: Storage{DB: DB{DSN: "postgres://json-host/storynest"}},
	}

	cfg, err := buildFrom(envCfg, jsonCfg)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "postgres://env-host/storynest", cfg.Storage.DB.DSN)
	// json still contributes the field env left unset
	assert.Equal(t, time.Hour, cfg.App.SessionTTL)
}

func TestBuild_MissingDSNFailsValidation(t *testing.T) {
	_, err := buildFrom(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_OutOfRangeBcryptCost(t *testing.T) {
	_, err := buildFrom(&StructuredConfig{
		App:     App{BcryptCost: 99},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/storynest"}},
	})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_AccumulatedErrorShortCircuits(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
