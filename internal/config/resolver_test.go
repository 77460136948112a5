package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	t.Setenv("MODGEN_TEST_VALUE", "from-env")

	tests := []struct {
		name       string
		opts       ResolveOptions
		wantValue  string
		wantSource ConfigSource
		shadowed   int
	}{
		{
			name:       "flag wins",
			opts:       ResolveOptions{FlagValue: "f", EnvVar: "MODGEN_TEST_VALUE", ConfigValue: "c", DefaultValue: "d"},
			wantValue:  "f",
			wantSource: SourceFlag,
			shadowed:   3,
		},
		{
			name:       "env over config",
			opts:       ResolveOptions{EnvVar: "MODGEN_TEST_VALUE", ConfigValue: "c"},
			wantValue:  "from-env",
			wantSource: SourceEnv,
			shadowed:   1,
		},
		{
			name:       "config over default",
			opts:       ResolveOptions{ConfigValue: "c", DefaultValue: "d"},
			wantValue:  "c",
			wantSource: SourceConfig,
			shadowed:   1,
		},
		{
			name:       "default",
			opts:       ResolveOptions{DefaultValue: "d"},
			wantValue:  "d",
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.opts)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Len(t, got.Shadowed, tt.shadowed)
		})
	}
}

func TestResolve_Empty(t *testing.T) {
	got := Resolve(ResolveOptions{Key: "x"})
	assert.Empty(t, got.Value)
	assert.Empty(t, got.Source)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("MODGEN_CONFIG", "/env/config.yaml")

	got, err := ResolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config.yaml", got.Value)
	assert.Equal(t, SourceEnv, got.Source)

	got, err = ResolveConfigPath("/flag/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config.yaml", got.Value)
	assert.Equal(t, SourceFlag, got.Source)
	assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
}
