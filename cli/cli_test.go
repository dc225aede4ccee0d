package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/lexer"
	"github.com/deanrtaylor1/gosentiment/logger"
)

func init() {
	logger.SetOutput(io.Discard)
}

func TestFormatCliResponse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"option", optionSelectModel, "Select Model"},
		{"model name", "○ reviews", "reviews"},
		{"plain", "reviews", "reviews"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatCliResponse(tc.input); got != tc.expected {
				t.Errorf("formatCliResponse(%q) == %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSessionClassify(t *testing.T) {
	docs := bayes.Documents{
		bayes.Positive: {"great movie", "good fun"},
		bayes.Negative: {"bad movie", "terrible plot"},
	}
	model, err := bayes.Train(docs, nil, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	s := NewSession(t.TempDir(), nil)
	s.Out = &out
	s.model = model
	s.normalizer = lexer.NewNormalizer(nil)

	require.NoError(t, s.classify("What a terrible, bad plot"))
	assert.Contains(t, out.String(), "Negative *")
}
