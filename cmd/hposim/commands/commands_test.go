package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/phenolab/hposim/cmd/hposim/commands"
	"github.com/phenolab/hposim/internal/app"
	"github.com/phenolab/hposim/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func requiredArgs() []string {
	return []string{
		"run",
		"--ontology", "hp.json",
		"--phenotypes", "cohort.json",
		"--variants", "variants.tsv",
		"--output", "report.tsv",
	}
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		args := append(requiredArgs(),
			"--config", "analysis.yaml",
			"--iterations", "250",
			"--policy", "geometric_mean",
		)
		cli.SetArgs(args)

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "hp.json", capturedOpts.OntologyPath)
		assert.Equal(t, "cohort.json", capturedOpts.PhenotypesPath)
		assert.Equal(t, "variants.tsv", capturedOpts.VariantsPath)
		assert.Equal(t, "report.tsv", capturedOpts.OutputPath)
		assert.Equal(t, "analysis.yaml", capturedOpts.ConfigPath)

		require.NotNil(t, capturedOpts.Iterations)
		assert.Equal(t, 250, *capturedOpts.Iterations)
		require.NotNil(t, capturedOpts.Policy)
		assert.Equal(t, "geometric_mean", *capturedOpts.Policy)
	})

	t.Run("leaves overrides unset without flags", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(requiredArgs())

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedOpts.ConfigPath)
		assert.Nil(t, capturedOpts.Iterations)
		assert.Nil(t, capturedOpts.Seed)
		assert.Nil(t, capturedOpts.Policy)
		assert.Nil(t, capturedOpts.Workers)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(requiredArgs())
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects missing required flags", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required flag")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
