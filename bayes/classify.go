package bayes

import (
	"fmt"
	"math"
	"strings"

	"github.com/deanrtaylor1/gosentiment/lexer"
	"github.com/deanrtaylor1/gosentiment/vocabulary"
)

// CondProbability returns ln P(class) + sum of ln P(token | class) over the tokens of doc.
// doc must already be normalised. Tokens are read left to right: a bigram with an entry for
// class consumes both words, otherwise the single word (or Unknown) is used.
func CondProbability(doc, class string, m *Model) (float64, error) {
	prior, ok := m.Priors[class]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingClass, class)
	}
	unknown, ok := m.Likelihood(Unknown, class)
	if !ok {
		return 0, fmt.Errorf("%w: no %s entry for %q", ErrMissingClass, Unknown, class)
	}

	words := strings.Fields(doc)
	score := prior

	for i := 0; i < len(words); {
		if m.Features == UnigramsAndBigrams && i < len(words)-1 {
			if l, ok := m.Likelihood(vocabulary.Bigram(words[i], words[i+1]), class); ok {
				score += l
				i += 2
				continue
			}
		}
		if l, ok := m.Likelihood(words[i], class); ok {
			score += l
		} else {
			score += unknown
		}
		i += 1
	}
	return score, nil
}

// Scores returns the conditional log probability of an already normalised doc for every class
func Scores(doc string, m *Model) (map[string]float64, error) {
	scores := make(map[string]float64, len(Classes))
	for _, class := range Classes {
		score, err := CondProbability(doc, class, m)
		if err != nil {
			return nil, err
		}
		scores[class] = score
	}
	return scores, nil
}

// Classify normalises doc against stopwords and returns the more probable class
func Classify(doc string, stopwords lexer.Stopwords, m *Model) (string, error) {
	return ClassifyWith(lexer.NewNormalizer(stopwords), doc, m)
}

// ClassifyWith normalises doc with n and returns the more probable class.
// Negative wins only with a strictly greater score.
func ClassifyWith(n *lexer.Normalizer, doc string, m *Model) (string, error) {
	scores, err := Scores(n.Normalize(doc), m)
	if err != nil {
		return "", err
	}
	return Decide(scores), nil
}

// Decide picks the class with the strictly greatest score, falling back to the first class
func Decide(scores map[string]float64) string {
	best := Classes[0]
	for _, class := range Classes[1:] {
		if scores[class] > scores[best] {
			best = class
		}
	}
	return best
}

// Posterior converts log scores into probabilities that sum to one
func Posterior(scores map[string]float64) map[string]float64 {
	if len(scores) == 0 {
		return map[string]float64{}
	}

	top := math.Inf(-1)
	for _, s := range scores {
		top = math.Max(top, s)
	}

	var sum float64
	probs := make(map[string]float64, len(scores))
	for class, s := range scores {
		probs[class] = math.Exp(s - top)
		sum += probs[class]
	}
	for class := range probs {
		probs[class] /= sum
	}
	return probs
}
