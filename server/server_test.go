package server

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
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

func testServer(t *testing.T) *Server {
	docs := bayes.Documents{
		bayes.Positive: {"great movie good acting", "great fun", "good story"},
		bayes.Negative: {"bad movie terrible acting", "terrible plot"},
	}
	stopwords := lexer.NewStopwords("the", "a")
	model, err := bayes.Train(docs, stopwords, 1)
	require.NoError(t, err)
	return New("movies", model, lexer.NewNormalizer(stopwords))
}

func TestHandleRequests(t *testing.T) {
	s := testServer(t)

	testCases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantLabel  string
	}{
		{
			name:       "positive review",
			method:     http.MethodPost,
			path:       "/api/classify",
			body:       "A great film, good fun!",
			wantStatus: http.StatusOK,
			wantLabel:  bayes.Positive,
		},
		{
			name:       "negative review",
			method:     http.MethodPost,
			path:       "/api/classify",
			body:       "The plot was terrible and bad",
			wantStatus: http.StatusOK,
			wantLabel:  bayes.Negative,
		},
		{
			name:       "classify needs POST",
			method:     http.MethodGet,
			path:       "/api/classify",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/search",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp ClassifyResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantLabel, resp.Label)
			assert.Len(t, resp.Scores, 2)
			assert.InDelta(t, 1.0, resp.Probabilities[bayes.Positive]+resp.Probabilities[bayes.Negative], 1e-9)
		})
	}
}

func TestHandleApiModel(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/model", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ModelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "movies", resp.Name)
	assert.Equal(t, "unigrams", resp.Features)
	assert.Equal(t, s.Model.VocabularySize(), resp.VocabularySize)
	assert.InDelta(t, math.Log(3.0/5.0), resp.Priors[bayes.Positive], 1e-12)
	require.NotEmpty(t, resp.TopTokens)
	assert.Equal(t, 2, resp.TopTokens[0].Freq)
}
