package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logident/logident/internal/config"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("file_path", "", "")
	flags.Int64("limit", 0, "")
	flags.Int64("sample", 1, "")
	flags.String("exclude", "", "")
	flags.String("categories", "", "")
	flags.String("merge_types", "", "")
	flags.Float64("max_frequency", 10, "")
	flags.Bool("fast", false, "")
	flags.Int("threads", 0, "")
	flags.String("output", "", "")
	flags.String("config", "", "")

	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(newFlags())
	require.NoError(t, err)

	assert.Equal(t, int64(1), cfg.Sample)
	assert.InDelta(t, 10.0, cfg.MaxFrequency, 0.0001)
	assert.False(t, cfg.Fast)
}

func TestLoadRejectsMaxFrequencyOutOfRange(t *testing.T) {
	t.Parallel()

	flags := newFlags()
	require.NoError(t, flags.Set("max_frequency", "150"))

	_, err := config.Load(flags)
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveSample(t *testing.T) {
	t.Parallel()

	flags := newFlags()
	require.NoError(t, flags.Set("sample", "0"))

	_, err := config.Load(flags)
	require.Error(t, err)
}

func TestLoadSplitsCommaSeparatedTags(t *testing.T) {
	t.Parallel()

	flags := newFlags()
	require.NoError(t, flags.Set("exclude", "ip, username ,mac"))

	cfg, err := config.Load(flags)
	require.NoError(t, err)

	assert.Equal(t, []string{"ip", "username", "mac"}, cfg.Exclude)
	assert.True(t, cfg.ExcludeSet()["ip"])
	assert.True(t, cfg.ExcludeSet()["username"])
}

func TestLoadEmptyTagsYieldNilSet(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(newFlags())
	require.NoError(t, err)

	assert.Nil(t, cfg.MergeTypesSet())
}
