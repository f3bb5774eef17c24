package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairrand/catalog"
	"github.com/katalvlaran/fairrand/config"
	"github.com/katalvlaran/fairrand/generator"
	"github.com/katalvlaran/fairrand/matcher"
	"github.com/katalvlaran/fairrand/source"
)

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load("testdata/streams.yaml")
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 80, cfg.RetryBudget)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
	require.Len(t, cfg.Streams, 5)
	assert.Equal(t, "d20", cfg.Streams[1].Name)
	require.NotNil(t, cfg.Streams[2].Seed)
	assert.Equal(t, uint64(7), *cfg.Streams[2].Seed)
}

func TestRead_DefaultsAndEnv(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, source.DefaultSeed, cfg.Seed)
	assert.Equal(t, generator.DefaultRetryBudget, cfg.RetryBudget)

	t.Setenv("FAIRRAND_SEED", "99")
	t.Setenv("FAIRRAND_RETRY_BUDGET", "12")
	t.Setenv("FAIRRAND_LOG_LEVEL", "warn")
	t.Setenv("FAIRRAND_LOG_FORMAT", "json")
	t.Setenv("FAIRRAND_METRICS_FILE", "/tmp/fairrand.prom")

	cfg, err = config.Read(strings.NewReader("seed: 5\nretry_budget: 70\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed, "environment wins over the file")
	assert.Equal(t, 12, cfg.RetryBudget)
	assert.Equal(t, config.Log{Level: "warn", Format: "json"}, cfg.Log)
	assert.Equal(t, "/tmp/fairrand.prom", cfg.MetricsFile)
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "sede: 1\n"},
		{"bad yaml", "streams: [\n"},
		{"zero budget", "retry_budget: 0\n"},
		{"log level", "log: {level: loud, format: text}\n"},
		{"stream kind", "streams: [{name: a, kind: dice}]\n"},
		{"stream name", "streams: [{kind: int, min: 0, max: 5}]\n"},
		{"duplicate names", "streams: [{name: a, kind: bool}, {name: a, kind: bool}]\n"},
		{"inverted band", "streams: [{name: a, kind: float, max: 1, patterns: [{name: p, kind: occurrence, low: 0.8, high: 0.2}]}]\n"},
		{"pattern kind", "streams: [{name: a, kind: int, max: 9, patterns: [{name: p, kind: tree}]}]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	t.Run("env type", func(t *testing.T) {
		t.Setenv("FAIRRAND_SEED", "minus one")
		_, err := config.Read(strings.NewReader(""))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	_, err := config.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg, err := config.Load("testdata/streams.yaml")
	require.NoError(t, err)

	streams, err := config.Build(cfg, nil, nil)
	require.NoError(t, err)
	require.Len(t, streams, 5)

	coin, d20, loot, height, raw := streams[0], streams[1], streams[2], streams[3], streams[4]

	require.NotNil(t, coin.Bool)
	assert.Equal(t, catalog.Names(catalog.Bool()), coin.Patterns())
	assert.Equal(t, 80, coin.Bool.RetryBudget())

	require.NotNil(t, d20.Int)
	assert.Equal(t, []string{"Repeating Number", "Alternated Number", "low streak"}, d20.Patterns())
	lo, hi, ok := d20.Int.Range()
	require.True(t, ok)
	assert.Equal(t, []int{1, 21}, []int{lo, hi})

	require.NotNil(t, loot.Float)
	assert.Equal(t, uint64(7), loot.Seed)
	assert.Equal(t, []string{"Too small difference from last", "climbing"}, loot.Patterns())

	require.NotNil(t, height.Float)
	assert.Equal(t, "gaussian", height.Kind)
	assert.Equal(t, 120, height.Float.RetryBudget())
	assert.Len(t, height.Patterns(), len(catalog.Gaussian()))

	assert.Empty(t, raw.Patterns())

	for _, s := range []*config.Built{coin, d20, loot, height, raw} {
		vs, err := s.Sample(20)
		if s == coin && err != nil {
			// The bool catalog can corner a fair coin.
			require.ErrorIs(t, err, generator.ErrRetryBudgetExceeded)
			continue
		}
		require.NoError(t, err, s.Name)
		assert.Len(t, vs, 20)
	}
}

func TestBuild_IsReproducible(t *testing.T) {
	cfg, err := config.Load("testdata/streams.yaml")
	require.NoError(t, err)

	a, err := config.Build(cfg, nil, nil)
	require.NoError(t, err)
	b, err := config.Build(cfg, nil, nil)
	require.NoError(t, err)

	va, err := a[1].Sample(30)
	require.NoError(t, err)
	vb, err := b[1].Sample(30)
	require.NoError(t, err)
	assert.Equal(t, va, vb)
	assert.Equal(t, a[1].Seed, b[1].Seed)
	assert.NotEqual(t, a[0].Seed, a[1].Seed, "streams get distinct derived seeds")
}

func TestBuild_PatternErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown catalog name", "streams: [{name: a, kind: int, max: 9, patterns: [{name: nope}]}]", catalog.ErrUnknownPattern},
		{"bool occurrence", "streams: [{name: a, kind: bool, patterns: [{name: p, kind: occurrence, count: 1, min_look_back: 1, max_look_back: 1}]}]", config.ErrUnsupportedPattern},
		{"bool greater", "streams: [{name: a, kind: bool, patterns: [{name: p, kind: neighbour, check: 1, match: 1, offset: 1, compare: greater}]}]", config.ErrUnsupportedPattern},
		{"match above check", "streams: [{name: a, kind: int, max: 9, patterns: [{name: p, kind: neighbour, check: 1, match: 2, offset: 1}]}]", matcher.ErrInvalidParameter},
		{"zero tolerance", "streams: [{name: a, kind: float, max: 1, patterns: [{name: p, kind: neighbour, check: 1, match: 1, offset: 1, compare: within}]}]", matcher.ErrInvalidParameter},
		{"list rule", "streams: [{name: a, kind: int, max: 9, patterns: [{name: p, kind: list, min_look_back: 2, max_look_back: 4}]}]", matcher.ErrInvalidParameter},
		{"empty domain", "streams: [{name: a, kind: int, min: 3, max: 3}]", source.ErrBadParameter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Read(strings.NewReader(tc.doc))
			require.NoError(t, err)
			_, err = config.Build(cfg, nil, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuilt_Audit(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(`
streams:
  - name: dice
    kind: int
    min: 1
    max: 7
    patterns:
      - name: repeating number
  - name: coin
    kind: bool
`))
	require.NoError(t, err)
	streams, err := config.Build(cfg, nil, nil)
	require.NoError(t, err)

	names, err := streams[0].Audit([]string{"1", "2", "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Repeating Number"}, names)

	names, err = streams[1].Audit([]string{"true", "true", "true", "true"})
	require.NoError(t, err)
	assert.Equal(t, []string{"4 in a row"}, names)

	_, err = streams[0].Audit([]string{"1", "x"})
	assert.Error(t, err)
}

func TestLog_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := config.Log{Level: "warn", Format: "json"}.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	config.Log{Level: "debug", Format: "text"}.NewLogger(&buf).Debug("x")
	assert.Contains(t, buf.String(), "msg=x")

	// A buffer is not a terminal.
	buf.Reset()
	config.Log{Level: "info", Format: "auto"}.NewLogger(&buf).Info("y")
	assert.Contains(t, buf.String(), `"msg":"y"`)
}
