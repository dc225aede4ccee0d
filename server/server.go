// Package server exposes a trained model over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/lexer"
	"github.com/deanrtaylor1/gosentiment/logger"
	"github.com/deanrtaylor1/gosentiment/util"
	"github.com/deanrtaylor1/gosentiment/vocabulary"
)

// TopTokenCount is how many tokens the model route lists
const TopTokenCount = 20

type ClassifyResponse struct {
	Label         string             `json:"label"`
	Scores        map[string]float64 `json:"scores"`
	Probabilities map[string]float64 `json:"probabilities"`
	Message       string             `json:"message"`
}

type ModelResponse struct {
	Name           string             `json:"name"`
	Features       string             `json:"features"`
	Priors         map[string]float64 `json:"priors"`
	VocabularySize int                `json:"vocabulary_size"`
	TopTokens      []vocabulary.Stat  `json:"top_tokens"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Server holds the model and normaliser shared by every request. Both are read only.
type Server struct {
	Name       string
	Model      *bayes.Model
	Normalizer *lexer.Normalizer
}

func New(name string, model *bayes.Model, n *lexer.Normalizer) *Server {
	if n == nil {
		n = lexer.NewNormalizer(nil)
	}
	return &Server{Name: name, Model: model, Normalizer: n}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		logger.HandleError(fmt.Errorf("unable to marshal json: %w", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(jsonBytes); err != nil {
		logger.HandleError(err)
	}
}

// Server route to classify the raw request body
func (s *Server) handleApiClassify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requestBodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		logger.HandleError(err)
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Unable to read request body"})
		return
	}

	scores, err := bayes.Scores(s.Normalizer.Normalize(string(requestBodyBytes)), s.Model)
	if err != nil {
		logger.HandleError(err)
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: err.Error()})
		return
	}

	elapsed := time.Since(start)
	response := ClassifyResponse{
		Label:         bayes.Decide(scores),
		Scores:        scores,
		Probabilities: bayes.Posterior(scores),
		Message:       fmt.Sprintf("Classified %d bytes in %d µs", len(requestBodyBytes), elapsed.Microseconds()),
	}
	writeJSON(w, http.StatusOK, response)

	logger.Logf(logger.Colorize(util.TerminalCyan, "%s => %s"), response.Message, response.Label)
}

// Server route to describe the loaded model
func (s *Server) handleApiModel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ModelResponse{
		Name:           s.Name,
		Features:       s.Model.Features.String(),
		Priors:         s.Model.Priors,
		VocabularySize: s.Model.VocabularySize(),
		TopTokens:      s.Model.TopTokens(TopTokenCount),
	})
}

// Route handler
func (s *Server) handleRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.HandleLog(r.Method + " " + r.URL.Path)
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/classify":
			s.handleApiClassify(w, r)
		case r.Method == http.MethodGet && r.URL.Path == "/api/model":
			s.handleApiModel(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "404 Not Found")
		}
	}
}

// Handler returns the routes of s
func (s *Server) Handler() http.Handler {
	return s.handleRequests()
}

// Serve listens on addr until the listener fails
func (s *Server) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", s.Handler())
	logger.Logf("Listening on %s...", addr)
	return http.ListenAndServe(addr, mux)
}
