package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 2, cfg.MinOccur())

	cfg.Train.Bigrams = true
	assert.Equal(t, 3, cfg.MinOccur())

	delay, err := cfg.RetryDelay()
	require.NoError(t, err)
	assert.Equal(t, time.Second, delay)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosentiment.toml")
	data := `
[Train]
MinOccur = 4
Bigrams = true

[Evaluate]
Folds = 5
Seed = 99

[Paths]
Stopwords = "stopwords.txt"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Train.MinOccur)
	assert.True(t, cfg.Train.Bigrams)
	assert.Equal(t, 3, cfg.Train.BigramMinOccur)
	assert.Equal(t, 5, cfg.Evaluate.Folds)
	assert.Equal(t, int64(99), cfg.Evaluate.Seed)
	assert.Equal(t, "stopwords.txt", cfg.Paths.Stopwords)
	assert.Equal(t, "models", cfg.Paths.ModelDir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestDecodeRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"one fold", "[Evaluate]\nFolds = 1\n"},
		{"zero min occur", "[Train]\nMinOccur = 0\n"},
		{"bad retry delay", "[Scrape]\nRetryDelay = \"soon\"\n"},
		{"not toml", "[Train\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, Decode(strings.NewReader(tc.data), Default()))
		})
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scrape.TLD = "co.uk"

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg))

	loaded := Default()
	require.NoError(t, Decode(&buf, loaded))
	assert.Equal(t, cfg, loaded)
}
