package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markdoc/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.False(t, cfg.Minify)
	assert.Equal(t, config.HeadingStyleAuto, cfg.HeadingStyle)
	assert.True(t, cfg.HeadingStyle.IsValid())
}

func TestHeadingStyleIsValid(t *testing.T) {
	assert.True(t, config.HeadingStyleAuto.IsValid())
	assert.True(t, config.HeadingStyleATX.IsValid())
	assert.False(t, config.HeadingStyle("bogus").IsValid())
}

func TestFormatCfgToYAML(t *testing.T) {
	t.Run("basic config serializes", func(t *testing.T) {
		cfg := config.FormatCfg{Minify: true, HeadingStyle: config.HeadingStyleATX}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "minify: true")
		assert.Contains(t, string(data), "heading_style: atx")
	})

	t.Run("with header prepends comment block", func(t *testing.T) {
		cfg := config.Default()
		data, err := cfg.ToYAMLWithHeader("# markdoc format configuration")
		require.NoError(t, err)
		assert.Contains(t, string(data), "# markdoc format configuration")
		assert.Contains(t, string(data), "heading_style: auto")
	})

	t.Run("empty header is a no-op", func(t *testing.T) {
		cfg := config.Default()
		withHeader, err := cfg.ToYAMLWithHeader("")
		require.NoError(t, err)
		plain, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Equal(t, plain, withHeader)
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		data := []byte(`
minify: true
heading_style: atx
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.True(t, cfg.Minify)
		assert.Equal(t, config.HeadingStyleATX, cfg.HeadingStyle)
	})

	t.Run("round trips through Default", func(t *testing.T) {
		original := config.Default()
		data, err := original.ToYAML()
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original, cfg)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("minify: [this is not a bool"))
		assert.Error(t, err)
	})
}
