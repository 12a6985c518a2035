package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/phenolab/hposim/internal/adapters/config"
	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hposim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Iterations)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, domain.PolicyMaxIC, cfg.Policy)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, 2, cfg.MinGroupSize)
}

func TestLoader_Load_FullFile(t *testing.T) {
	path := writeConfig(t, `
iterations: 5000
seed: 1234
policy: geometric_mean
workers: 4
min_group_size: 3
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Iterations)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, domain.PolicyGeometricMean, cfg.Policy)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 3, cfg.MinGroupSize)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
iterations: 200
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Iterations)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, domain.PolicyMaxIC, cfg.Policy)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, 2, cfg.MinGroupSize)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "iterations: [not a number")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
}

func TestLoader_Load_UnknownPolicy(t *testing.T) {
	path := writeConfig(t, "policy: resnik\n")

	_, err := newLoader(t).Load(path)
	require.ErrorIs(t, err, domain.ErrUnknownPolicy)
}

func TestLoader_Load_RejectsInvalidValues(t *testing.T) {
	for name, content := range map[string]string{
		"zero iterations":      "iterations: 0\n",
		"negative workers":     "workers: -1\n",
		"group size below two": "min_group_size: 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeConfig(t, content))
			require.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}
