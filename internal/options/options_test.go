package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Value int
	Name  string
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.Value = 42 }),
		NoError(func(c *testConfig) { c.Name = "gantry" }),
	)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.Value)
	require.Equal(t, "gantry", cfg.Name)
}

func TestApplyError(t *testing.T) {
	boom := errors.New("boom")
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.Value = 1 }),
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.Value = 2 }),
	)
	require.ErrorIs(t, err, boom)
	// Options after the failing one must not run.
	require.Equal(t, 1, cfg.Value)
}

func TestApplyEmpty(t *testing.T) {
	cfg := &testConfig{Value: 7}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.Value)
}
