package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/deanrtaylor1/gosentiment/bayes"
	interactive "github.com/deanrtaylor1/gosentiment/cli"
	"github.com/deanrtaylor1/gosentiment/config"
	"github.com/deanrtaylor1/gosentiment/crossval"
	"github.com/deanrtaylor1/gosentiment/logger"
	"github.com/deanrtaylor1/gosentiment/report"
	"github.com/deanrtaylor1/gosentiment/reviews"
	"github.com/deanrtaylor1/gosentiment/scraper"
	"github.com/deanrtaylor1/gosentiment/server"
	"github.com/deanrtaylor1/gosentiment/util"
)

var (
	OutFlag = &cli.StringFlag{
		Name:     "out",
		Usage:    "output name",
		Required: true,
	}
	FoldsFlag = &cli.IntFlag{
		Name:  "folds",
		Usage: "number of cross validation folds",
	}
	SeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "shuffle seed, 0 seeds from the clock",
	}
	ParallelFlag = &cli.BoolFlag{
		Name:  "parallel",
		Usage: "train and score folds concurrently",
	}
	AsinFlag = &cli.StringFlag{
		Name:     "asin",
		Usage:    "product identifier",
		Required: true,
	}
	ClassFlag = &cli.StringFlag{
		Name:  "class",
		Usage: "review class to fetch, + or -",
		Value: bayes.Positive,
	}
	LimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "maximum number of reviews to fetch",
	}
	TLDFlag = &cli.StringFlag{
		Name:  "tld",
		Usage: "store top level domain",
	}
	AddrFlag = &cli.StringFlag{
		Name:  "addr",
		Usage: "listen address",
	}
)

const topTokenCount = 10

var trainCommand = &cli.Command{
	Name:   "train",
	Usage:  "train a model from a review file",
	Action: train,
	Flags:  []cli.Flag{ReviewsFlag, StopwordsFlag, BigramsFlag, MinOccurFlag, StemFlag, OutFlag},
}

var classifyCommand = &cli.Command{
	Name:      "classify",
	Usage:     "classify review text with a trained model",
	ArgsUsage: "TEXT...",
	Action:    classify,
	Flags:     []cli.Flag{ModelFlag, StopwordsFlag},
}

var evaluateCommand = &cli.Command{
	Name:   "evaluate",
	Usage:  "cross validate the classifier on a review file",
	Action: evaluate,
	Flags:  []cli.Flag{ReviewsFlag, StopwordsFlag, BigramsFlag, MinOccurFlag, StemFlag, FoldsFlag, SeedFlag, ParallelFlag},
}

var scrapeCommand = &cli.Command{
	Name:   "scrape",
	Usage:  "fetch product reviews of one class into a review file",
	Action: scrape,
	Flags:  []cli.Flag{AsinFlag, ClassFlag, LimitFlag, TLDFlag, OutFlag},
}

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "serve a trained model over HTTP",
	Action: serve,
	Flags:  []cli.Flag{ModelFlag, StopwordsFlag, AddrFlag},
}

var cliCommand = &cli.Command{
	Name:   "cli",
	Usage:  "pick a stored model and classify reviews interactively",
	Action: runInteractive,
	Flags:  []cli.Flag{StopwordsFlag},
}

var dumpConfigCommand = &cli.Command{
	Name:   "dumpconfig",
	Usage:  "print the effective configuration as TOML",
	Action: dumpConfig,
}

func train(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	docs, err := reviews.ReadReviewsFile(ctx.String(ReviewsFlag.Name))
	if err != nil {
		return err
	}

	n, err := newNormalizer(cfg)
	if err != nil {
		return err
	}
	defer n.Close()

	model, err := trainerFor(cfg, n).Train(docs)
	if err != nil {
		return err
	}

	fileOps := bayes.FileOpsImpl{}
	if err := fileOps.MkdirAll(cfg.Paths.ModelDir, 0755); err != nil {
		return err
	}
	fileName := ctx.String(OutFlag.Name) + bayes.ModelFileExt
	if err := fileOps.WriteModelFile(fileName, model, cfg.Paths.ModelDir); err != nil {
		return err
	}

	logger.Banner(util.TerminalGreen, fmt.Sprintf("Trained %s model on %d reviews, %d vocabulary tokens, saved to %s",
		model.Features, docs.Len(), model.VocabularySize(), filepath.Join(cfg.Paths.ModelDir, fileName)))
	for i, stat := range model.TopTokens(topTokenCount) {
		logger.Logf("%2d. %s (%d)", i+1, stat.Token, stat.Freq)
	}
	return nil
}

func classify(ctx *cli.Context) error {
	text := strings.Join(ctx.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to classify")
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	model, err := bayes.ReadModelFile(ctx.String(ModelFlag.Name))
	if err != nil {
		return err
	}

	n, err := modelNormalizer(cfg, model)
	if err != nil {
		return err
	}
	defer n.Close()

	scores, err := bayes.Scores(n.Normalize(text), model)
	if err != nil {
		return err
	}
	report.Classification(os.Stdout, bayes.Decide(scores), scores)
	return nil
}

func evaluate(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet(FoldsFlag.Name) {
		cfg.Evaluate.Folds = ctx.Int(FoldsFlag.Name)
	}
	if ctx.IsSet(SeedFlag.Name) {
		cfg.Evaluate.Seed = ctx.Int64(SeedFlag.Name)
	}
	if ctx.IsSet(ParallelFlag.Name) {
		cfg.Evaluate.Parallel = ctx.Bool(ParallelFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	docs, err := reviews.ReadReviewsFile(ctx.String(ReviewsFlag.Name))
	if err != nil {
		return err
	}

	n, err := newNormalizer(cfg)
	if err != nil {
		return err
	}
	defer n.Close()

	evaluator := crossval.NewEvaluator(trainerFor(cfg, n), cfg.Evaluate.Folds)
	evaluator.Parallel = cfg.Evaluate.Parallel
	if cfg.Evaluate.Seed != 0 {
		evaluator.Rand = rand.New(rand.NewSource(cfg.Evaluate.Seed))
	}

	folds, err := evaluator.Run(docs)
	if err != nil {
		return err
	}

	report.Folds(os.Stdout, folds)
	return nil
}

func scrape(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet(LimitFlag.Name) {
		cfg.Scrape.Limit = ctx.Int(LimitFlag.Name)
	}
	if ctx.IsSet(TLDFlag.Name) {
		cfg.Scrape.TLD = ctx.String(TLDFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	class := ctx.String(ClassFlag.Name)
	if class != bayes.Positive && class != bayes.Negative {
		return fmt.Errorf("%w: %q", bayes.ErrUnknownClass, class)
	}

	s, err := scraper.New(cfg.Scrape.TLD)
	if err != nil {
		return err
	}
	s.MaxRetries = cfg.Scrape.MaxRetries
	if s.RetryDelay, err = cfg.RetryDelay(); err != nil {
		return err
	}

	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetched, err := s.Fetch(c, ctx.String(AsinFlag.Name), class, cfg.Scrape.Limit)
	if err != nil {
		return err
	}

	out := ctx.String(OutFlag.Name)
	if err := reviews.WriteReviewsFile(out, bayes.Documents{class: fetched}, nil); err != nil {
		return err
	}
	logger.Banner(util.TerminalGreen, fmt.Sprintf("Wrote %d %s reviews to %s", len(fetched), report.ClassName(class), out))
	return nil
}

func serve(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet(AddrFlag.Name) {
		cfg.Server.Addr = ctx.String(AddrFlag.Name)
	}

	modelPath := ctx.String(ModelFlag.Name)
	model, err := bayes.ReadModelFile(modelPath)
	if err != nil {
		return err
	}

	n, err := modelNormalizer(cfg, model)
	if err != nil {
		return err
	}
	defer n.Close()

	name := strings.TrimSuffix(filepath.Base(modelPath), bayes.ModelFileExt)
	return server.New(name, model, n).Serve(cfg.Server.Addr)
}

func runInteractive(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	stopwords, err := reviews.ReadWordListFile(cfg.Paths.Stopwords)
	if err != nil {
		return err
	}

	return interactive.NewSession(cfg.Paths.ModelDir, stopwords).InitialPrompt()
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return config.Dump(os.Stdout, cfg)
}
