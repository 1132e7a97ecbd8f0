package gridtable_test

import (
	"strings"
	"testing"

	"github.com/bjaus/gridtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  gridtable.Config
	}{
		"empty": {
			input: "",
			want:  gridtable.DefaultConfig(),
		},
		"full": {
			input: "columns: 40\nwrap: none\n",
			want:  gridtable.Config{Columns: 40, Wrap: gridtable.WrapNone},
		},
		"prefixed wrap": {
			input: "wrap: wrap-preserve\n",
			want:  gridtable.Config{Columns: gridtable.DefaultPageWidth, Wrap: gridtable.WrapPreserve},
		},
		"zero columns": {
			input: "columns: 0\n",
			want:  gridtable.Config{Columns: 0, Wrap: gridtable.WrapAuto},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg, err := gridtable.LoadConfig(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown key":      "colour: red\n",
		"unknown wrap":     "wrap: sideways\n",
		"negative columns": "columns: -4\n",
		"bad columns":      "columns: wide\n",
		"malformed":        "columns: [\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := gridtable.LoadConfig(strings.NewReader(input))
			require.ErrorIs(t, err, gridtable.ErrInvalidConfig)
		})
	}
}

func TestConfigWithEnv(t *testing.T) {
	t.Parallel()
	env := func(vars map[string]string) func(string) string {
		return func(key string) string { return vars[key] }
	}
	tests := map[string]struct {
		vars map[string]string
		want gridtable.Config
	}{
		"unset": {
			want: gridtable.DefaultConfig(),
		},
		"overrides": {
			vars: map[string]string{gridtable.EnvColumns: "100", gridtable.EnvWrap: "wrap-none"},
			want: gridtable.Config{Columns: 100, Wrap: gridtable.WrapNone},
		},
		"invalid values are ignored": {
			vars: map[string]string{gridtable.EnvColumns: "-3", gridtable.EnvWrap: "sideways"},
			want: gridtable.DefaultConfig(),
		},
		"not a number": {
			vars: map[string]string{gridtable.EnvColumns: "wide"},
			want: gridtable.DefaultConfig(),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gridtable.DefaultConfig().WithEnv(env(tt.vars)))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, gridtable.DefaultConfig().Validate())
	require.ErrorIs(t, gridtable.Config{Columns: -1, Wrap: gridtable.WrapAuto}.Validate(), gridtable.ErrInvalidConfig)
	require.ErrorIs(t, gridtable.Config{Columns: 10}.Validate(), gridtable.ErrInvalidConfig)
}

func TestWithConfig(t *testing.T) {
	t.Parallel()
	e := gridtable.NewEngine(gridtable.WithConfig(gridtable.Config{Columns: 30, Wrap: gridtable.WrapNone}))
	assert.Equal(t, 30, e.PageWidth)
	assert.Equal(t, gridtable.WrapNone, e.Wrap)

	d := gridtable.NewEngine()
	assert.Equal(t, gridtable.DefaultPageWidth, d.PageWidth)
	assert.Equal(t, gridtable.WrapAuto, d.Wrap)
	assert.Nil(t, d.RenderCell)
	assert.Nil(t, d.Logger)
}
