// gosentiment trains and applies naive Bayes sentiment models for product reviews.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/config"
	"github.com/deanrtaylor1/gosentiment/lexer"
	"github.com/deanrtaylor1/gosentiment/reviews"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	ReviewsFlag = &cli.StringFlag{
		Name:     "reviews",
		Usage:    "review file, one CLASS<TAB>TEXT per line",
		Required: true,
	}
	StopwordsFlag = &cli.StringFlag{
		Name:  "stopwords",
		Usage: "stopword file, one word per line",
	}
	BigramsFlag = &cli.BoolFlag{
		Name:  "bigrams",
		Usage: "use bigram features alongside the words they do not absorb",
	}
	MinOccurFlag = &cli.IntFlag{
		Name:  "min-occur",
		Usage: "occurrences a token needs to enter the vocabulary",
	}
	StemFlag = &cli.BoolFlag{
		Name:  "stem",
		Usage: "stem words with the snowball stemmer",
	}
	ModelFlag = &cli.StringFlag{
		Name:     "model",
		Usage:    "trained model file",
		Required: true,
	}
)

var app = &cli.App{
	Name:  "gosentiment",
	Usage: "naive Bayes sentiment classification for product reviews",
	Flags: []cli.Flag{ConfigFlag},
	Commands: []*cli.Command{
		trainCommand,
		classifyCommand,
		evaluateCommand,
		scrapeCommand,
		serveCommand,
		cliCommand,
		dumpConfigCommand,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config and applies the flags shared by the commands
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String(ConfigFlag.Name))
	if err != nil {
		return nil, err
	}

	if ctx.IsSet(StopwordsFlag.Name) {
		cfg.Paths.Stopwords = ctx.String(StopwordsFlag.Name)
	}
	if ctx.IsSet(BigramsFlag.Name) {
		cfg.Train.Bigrams = ctx.Bool(BigramsFlag.Name)
	}
	if ctx.IsSet(StemFlag.Name) {
		cfg.Train.Stem = ctx.Bool(StemFlag.Name)
	}
	if ctx.IsSet(MinOccurFlag.Name) {
		if cfg.Train.Bigrams {
			cfg.Train.BigramMinOccur = ctx.Int(MinOccurFlag.Name)
		} else {
			cfg.Train.MinOccur = ctx.Int(MinOccurFlag.Name)
		}
	}
	return cfg, cfg.Validate()
}

// newNormalizer builds the normaliser for training from the configured stopwords and stemming
func newNormalizer(cfg *config.Config) (*lexer.Normalizer, error) {
	stopwords, err := reviews.ReadWordListFile(cfg.Paths.Stopwords)
	if err != nil {
		return nil, err
	}

	n := lexer.NewNormalizer(stopwords)
	if cfg.Train.Stem {
		if err := n.EnableStemming(cfg.Train.StemLanguage); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// modelNormalizer builds the normaliser matching how model was trained
func modelNormalizer(cfg *config.Config, model *bayes.Model) (*lexer.Normalizer, error) {
	stopwords, err := reviews.ReadWordListFile(cfg.Paths.Stopwords)
	if err != nil {
		return nil, err
	}

	n := lexer.NewNormalizer(stopwords)
	if model.StemLanguage != "" {
		if err := n.EnableStemming(model.StemLanguage); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func trainerFor(cfg *config.Config, n *lexer.Normalizer) *bayes.Trainer {
	features := bayes.Unigrams
	if cfg.Train.Bigrams {
		features = bayes.UnigramsAndBigrams
	}
	trainer := bayes.NewTrainer(n, features)
	trainer.MinOccur = cfg.MinOccur()
	trainer.BigramThreshold = cfg.Train.BigramThreshold
	return trainer
}
