package options

import (
	"testing"

	"github.com/napalu/goopt/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceConfigParse(t *testing.T) {
	cfg := &SourceConfig{}
	parser, err := goopt.NewParserFromStruct(cfg, goopt.WithFlagNameConverter(goopt.ToKebabCase))
	require.NoError(t, err)

	assert.True(t, parser.ParseString("-n --func i18n.t --ext .vue --backup-dir bak -m map.json src"), parser.GetErrors())
	assert.Equal(t, Common{
		Directory: "src",
		DryRun:    true,
		Mapping:   "map.json",
		BackupDir: "bak",
	}, cfg.Common())
	assert.Equal(t, []string{"i18n.t"}, cfg.Functions)
	assert.Equal(t, []string{".vue"}, cfg.Extensions)
}

func TestSourceConfigDefaults(t *testing.T) {
	cfg := &SourceConfig{}
	parser, err := goopt.NewParserFromStruct(cfg, goopt.WithFlagNameConverter(goopt.ToKebabCase))
	require.NoError(t, err)

	assert.True(t, parser.ParseString(""), parser.GetErrors())
	assert.Equal(t, ".", cfg.Directory)
	assert.False(t, cfg.DryRun)
	assert.Empty(t, cfg.Functions)
}

func TestResourceConfigParse(t *testing.T) {
	tests := []struct {
		name   string
		args   string
		verify func(t *testing.T, cfg *ResourceConfig)
	}{
		{
			name: "defaults",
			args: "",
			verify: func(t *testing.T, cfg *ResourceConfig) {
				assert.Equal(t, ".", cfg.Directory)
				assert.Equal(t, "translation.json", cfg.Pattern)
				assert.Equal(t, "error", cfg.Collision)
				assert.False(t, cfg.PatternOnly)
			},
		},
		{
			name: "resource flags",
			args: "--pattern *.locale.json --pattern-only --show-unmapped --suggest --collision skip locales",
			verify: func(t *testing.T, cfg *ResourceConfig) {
				assert.Equal(t, "locales", cfg.Directory)
				assert.Equal(t, "*.locale.json", cfg.Pattern)
				assert.True(t, cfg.PatternOnly)
				assert.True(t, cfg.ShowUnmapped)
				assert.True(t, cfg.Suggest)
				assert.Equal(t, "skip", cfg.Collision)
			},
		},
		{
			name: "single file",
			args: "-f locales/en/translation.json -n -v -l fr",
			verify: func(t *testing.T, cfg *ResourceConfig) {
				assert.Equal(t, Common{
					Directory: ".",
					DryRun:    true,
					File:      "locales/en/translation.json",
					Verbose:   true,
					Language:  "fr",
				}, cfg.Common())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ResourceConfig{}
			parser, err := goopt.NewParserFromStruct(cfg, goopt.WithFlagNameConverter(goopt.ToKebabCase))
			require.NoError(t, err)

			assert.True(t, parser.ParseString(tt.args), parser.GetErrors())
			tt.verify(t, cfg)
		})
	}
}
