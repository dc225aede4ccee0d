package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/lexer"
	"github.com/deanrtaylor1/gosentiment/logger"
	"github.com/deanrtaylor1/gosentiment/report"
	"github.com/deanrtaylor1/gosentiment/util"
)

//CLI Interface of gosentiment

const (
	optionNewReview   = "○ New Review"
	optionSelectModel = "○ Select Model"
	optionExit        = "○ Exit"
)

// Session is an interactive run over the models stored in ModelDir
type Session struct {
	ModelDir  string
	Stopwords lexer.Stopwords
	Out       io.Writer

	name       string
	model      *bayes.Model
	normalizer *lexer.Normalizer
}

func NewSession(modelDir string, stopwords lexer.Stopwords) *Session {
	return &Session{ModelDir: modelDir, Stopwords: stopwords, Out: os.Stdout}
}

// Clean up the CLI response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, "○ ", "", -1)
}

// Utility function to get a single input from the user
func getSingleInputPrompt(message string) (string, error) {
	prompt := &survey.Input{
		Message: message,
	}

	var input string
	err := survey.AskOne(prompt, &input)
	return input, err
}

// InitialPrompt asks for a model and starts the review loop. Ctrl+C ends the session cleanly.
func (s *Session) InitialPrompt() error {
	err := s.selectModel()
	if s.normalizer != nil {
		s.normalizer.Close()
	}
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}

func (s *Session) selectModel() error {
	if isValid, err := util.CheckDirIsValid(s.ModelDir); !isValid {
		if err != nil {
			return err
		}
		logger.HandleLog(logger.Colorize(util.TerminalYellow, "Model directory "+s.ModelDir+" does not exist yet, train a model first"))
	}

	modelPath := util.SelectModel(s.ModelDir, bayes.ModelFileExt)
	if modelPath == "" {
		return nil
	}

	model, err := bayes.ReadModelFile(modelPath)
	if err != nil {
		return fmt.Errorf("error loading model %s: %w", modelPath, err)
	}
	n := lexer.NewNormalizer(s.Stopwords)
	if model.StemLanguage != "" {
		if err := n.EnableStemming(model.StemLanguage); err != nil {
			return err
		}
	}
	if s.normalizer != nil {
		s.normalizer.Close()
	}
	s.name = strings.TrimSuffix(filepath.Base(modelPath), bayes.ModelFileExt)
	s.model = model
	s.normalizer = n

	logger.Banner(util.TerminalGreen, fmt.Sprintf("Loaded %s: %s, %d vocabulary tokens", s.name, model.Features, model.VocabularySize()))
	return s.startReviewPrompt()
}

// Get a review from the user, classify it and offer the next step
func (s *Session) startReviewPrompt() error {
	for {
		review, err := getSingleInputPrompt("Enter a review:")
		if err != nil {
			return err
		}

		if err := s.classify(review); err != nil {
			return err
		}

		prompt := &survey.Select{
			Message: "Next:",
			Options: []string{optionNewReview, optionSelectModel, optionExit},
		}

		var selected string
		fmt.Fprintln(s.Out, "------------------------------------------------")
		if err := survey.AskOne(prompt, &selected); err != nil {
			return err
		}

		switch formatCliResponse(selected) {
		case formatCliResponse(optionNewReview):
			continue
		case formatCliResponse(optionSelectModel):
			return s.selectModel()
		default:
			return nil
		}
	}
}

// classify prints the label and posterior of review under the loaded model
func (s *Session) classify(review string) error {
	start := time.Now()

	scores, err := bayes.Scores(s.normalizer.Normalize(review), s.model)
	if err != nil {
		return err
	}
	label := bayes.Decide(scores)
	elapsed := time.Since(start)

	report.Classification(s.Out, label, scores)
	logger.Banner(util.TerminalCyan, fmt.Sprintf("%s review, classified in %d µs", report.ClassName(label), elapsed.Microseconds()))
	return nil
}
