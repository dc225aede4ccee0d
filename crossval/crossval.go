// Package crossval measures classifier accuracy with stratified k-fold cross validation.
package crossval

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/lexer"
	"github.com/deanrtaylor1/gosentiment/vocabulary"
)

// DefaultFolds is the fold count used when none is configured
const DefaultFolds = 10

// Partition is an ordered list of disjoint folds
type Partition []bayes.Documents

// Split shuffles each class independently and cuts it into k contiguous slices.
// Slice i of a class of size n spans [i*n/k, (i+1)*n/k), so every document lands in
// exactly one fold and fold sizes differ by at most one. docs is not modified.
func Split(docs bayes.Documents, k int, rng *rand.Rand) (Partition, error) {
	if err := docs.Validate(); err != nil {
		return nil, err
	}
	if k < 2 {
		return nil, fmt.Errorf("%w: need at least 2 folds, got %d", bayes.ErrInsufficientData, k)
	}
	for _, class := range bayes.Classes {
		if len(docs[class]) < k {
			return nil, fmt.Errorf("%w: class %q has %d documents for %d folds", bayes.ErrInsufficientData, class, len(docs[class]), k)
		}
	}
	if rng == nil {
		rng = newRand()
	}

	shuffled := docs.Copy()
	for _, class := range bayes.Classes {
		list := shuffled[class]
		rng.Shuffle(len(list), func(i, j int) {
			list[i], list[j] = list[j], list[i]
		})
	}

	parts := make(Partition, k)
	for i := range parts {
		part := make(bayes.Documents, len(shuffled))
		for _, class := range bayes.Classes {
			list := shuffled[class]
			n := len(list)
			part[class] = list[i*n/k : (i+1)*n/k : (i+1)*n/k]
		}
		parts[i] = part
	}
	return parts, nil
}

// Join concatenates folds class by class into a new collection
func Join(parts ...bayes.Documents) bayes.Documents {
	joined := make(bayes.Documents)
	for _, part := range parts {
		for class, list := range part {
			joined[class] = append(joined[class], list...)
		}
	}
	return joined
}

// Without joins every fold except the one at index
func (p Partition) Without(index int) bayes.Documents {
	rest := make([]bayes.Documents, 0, len(p)-1)
	for j, part := range p {
		if j != index {
			rest = append(rest, part)
		}
	}
	return Join(rest...)
}

// Evaluator retrains a model per fold and scores the held out documents
type Evaluator struct {
	Trainer *bayes.Trainer
	Folds   int
	// Rand drives the shuffle. A nil Rand is seeded from the clock.
	Rand *rand.Rand
	// Parallel trains and scores folds concurrently; results keep fold order
	Parallel bool
}

func NewEvaluator(trainer *bayes.Trainer, folds int) *Evaluator {
	return &Evaluator{
		Trainer: trainer,
		Folds:   folds,
	}
}

// Run splits docs and returns one result per fold, in fold order
func (e *Evaluator) Run(docs bayes.Documents) ([]Fold, error) {
	parts, err := Split(docs, e.Folds, e.Rand)
	if err != nil {
		return nil, err
	}

	folds := make([]Fold, len(parts))
	if !e.Parallel {
		for i := range parts {
			if folds[i], err = e.runFold(parts, i); err != nil {
				return nil, err
			}
		}
		return folds, nil
	}

	var group errgroup.Group
	for i := range parts {
		i := i
		group.Go(func() error {
			fold, err := e.runFold(parts, i)
			folds[i] = fold
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return folds, nil
}

func (e *Evaluator) runFold(parts Partition, i int) (Fold, error) {
	model, err := e.Trainer.Train(parts.Without(i))
	if err != nil {
		return Fold{}, fmt.Errorf("error training fold %d: %w", i, err)
	}

	n := e.Trainer.Normalizer
	if n == nil {
		n = lexer.NewNormalizer(nil)
	}
	fold, err := Score(parts[i], n, model)
	if err != nil {
		return Fold{}, fmt.Errorf("error scoring fold %d: %w", i, err)
	}
	fold.Index = i
	return fold, nil
}

// Evaluate runs k-fold cross validation of the unigram classifier and returns the fold accuracies
func Evaluate(docs bayes.Documents, stopwords lexer.Stopwords, minOccur, k int) ([]float64, error) {
	return evaluate(docs, stopwords, bayes.Unigrams, minOccur, k)
}

// EvaluateWithBigramFeatures is Evaluate for the combined unigram and bigram classifier
func EvaluateWithBigramFeatures(docs bayes.Documents, stopwords lexer.Stopwords, minOccur, k int) ([]float64, error) {
	return evaluate(docs, stopwords, bayes.UnigramsAndBigrams, minOccur, k)
}

func evaluate(docs bayes.Documents, stopwords lexer.Stopwords, features bayes.FeatureSet, minOccur, k int) ([]float64, error) {
	trainer := bayes.NewTrainer(lexer.NewNormalizer(stopwords), features)
	trainer.MinOccur = minOccur
	trainer.BigramThreshold = vocabulary.DefaultBigramThreshold

	folds, err := NewEvaluator(trainer, k).Run(docs)
	if err != nil {
		return nil, err
	}
	return Accuracies(folds), nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
