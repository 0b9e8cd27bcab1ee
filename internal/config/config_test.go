package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Vocabulary.Path)
	assert.Equal(t, "\t", cfg.Vocabulary.Separator)
	assert.Equal(t, 10, cfg.Suggest.Limit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `vocabulary:
  path: /srv/words.txt
  separator: ","
suggest:
  limit: 3
log:
  level: debug
  pretty: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/words.txt", cfg.Vocabulary.Path)
	assert.Equal(t, ",", cfg.Vocabulary.Separator)
	assert.Equal(t, 3, cfg.Suggest.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TST_VOCABULARY_PATH", "/tmp/vocab.txt")
	t.Setenv("TST_SUGGEST_LIMIT", "25")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/vocab.txt", cfg.Vocabulary.Path)
	assert.Equal(t, 25, cfg.Suggest.Limit)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Vocabulary: VocabularyConfig{Path: "words.txt", Separator: "\t"},
			Suggest:    SuggestConfig{Limit: 10},
			Log:        LogConfig{Level: "info"},
		}
	}

	var testData = []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unlimited", func(c *Config) { c.Suggest.Limit = 0 }, false},
		{"missing path", func(c *Config) { c.Vocabulary.Path = "" }, true},
		{"empty separator", func(c *Config) { c.Vocabulary.Separator = "" }, true},
		{"negative limit", func(c *Config) { c.Suggest.Limit = -1 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, data := range testData {
		t.Run(data.name, func(t *testing.T) {
			cfg := valid()
			data.mutate(cfg)
			if data.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := (&LogConfig{Level: "warn"}).ParseLevel()

	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)
}
