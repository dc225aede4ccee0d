package bayes

import (
	"fmt"
	"math"

	"github.com/deanrtaylor1/gosentiment/lexer"
	"github.com/deanrtaylor1/gosentiment/vocabulary"
)

// Trainer builds a Model from labelled documents
type Trainer struct {
	Normalizer *lexer.Normalizer
	Features   FeatureSet
	// MinOccur is the summed count a token needs across both classes to enter the vocabulary
	MinOccur int
	// BigramThreshold is the bigram count that suppresses standalone words in the combined feature set
	BigramThreshold int
}

// NewTrainer returns a Trainer with the default thresholds for the feature set
func NewTrainer(n *lexer.Normalizer, features FeatureSet) *Trainer {
	t := &Trainer{
		Normalizer:      n,
		Features:        features,
		MinOccur:        vocabulary.DefaultMinOccur,
		BigramThreshold: vocabulary.DefaultBigramThreshold,
	}
	if features == UnigramsAndBigrams {
		t.MinOccur = vocabulary.DefaultBigramMinOccur
	}
	return t
}

// Train trains a unigram model
func Train(docs Documents, stopwords lexer.Stopwords, minOccur int) (*Model, error) {
	t := NewTrainer(lexer.NewNormalizer(stopwords), Unigrams)
	t.MinOccur = minOccur
	return t.Train(docs)
}

// TrainWithBigramFeatures trains a model over bigrams and the words they do not absorb
func TrainWithBigramFeatures(docs Documents, stopwords lexer.Stopwords, minOccur int) (*Model, error) {
	t := NewTrainer(lexer.NewNormalizer(stopwords), UnigramsAndBigrams)
	t.MinOccur = minOccur
	return t.Train(docs)
}

// Train normalises docs and estimates priors and smoothed likelihoods
func (t *Trainer) Train(docs Documents) (*Model, error) {
	if err := docs.Validate(); err != nil {
		return nil, err
	}

	n := t.Normalizer
	if n == nil {
		n = lexer.NewNormalizer(nil)
	}
	cleaned := make(Documents, len(docs))
	for class, list := range docs {
		cleaned[class] = n.NormalizeAll(list)
	}

	priors, err := ClassPriors(cleaned)
	if err != nil {
		return nil, err
	}

	freqs := make(map[string]vocabulary.TermFreq, len(cleaned))
	for class, list := range cleaned {
		freqs[class] = t.frequencies(list)
	}

	m := &Model{
		Features:     t.Features,
		Priors:       priors,
		Likelihoods:  Likelihoods(freqs, t.MinOccur),
		Counts:       make(vocabulary.TermFreq),
		StemLanguage: n.StemLanguage(),
	}
	for _, token := range m.Tokens() {
		for _, tf := range freqs {
			m.Counts[token] += tf[token]
		}
	}
	return m, nil
}

func (t *Trainer) frequencies(docs []string) vocabulary.TermFreq {
	if t.Features == UnigramsAndBigrams {
		return vocabulary.CombinedFrequencies(docs, t.BigramThreshold)
	}
	return vocabulary.WordFrequencies(docs)
}

// ClassPriors computes ln(|docs in class|) - ln(|all docs|) for every class
func ClassPriors(docs Documents) (map[string]float64, error) {
	total := docs.Len()
	if total == 0 {
		return nil, fmt.Errorf("%w: no documents", ErrInsufficientData)
	}

	priors := make(map[string]float64, len(docs))
	for class, list := range docs {
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: class %q has no usable documents", ErrInsufficientData, class)
		}
		priors[class] = math.Log(float64(len(list))) - math.Log(float64(total))
	}
	return priors, nil
}

// Likelihoods computes add-one smoothed ln P(token | class) for every vocabulary token and
// class, plus the Unknown entry. The denominator counts every token seen in the class,
// not only vocabulary tokens, and reserves one slot for Unknown.
func Likelihoods(freqs map[string]vocabulary.TermFreq, minOccur int) map[Feature]float64 {
	tables := make([]vocabulary.TermFreq, 0, len(freqs))
	for _, tf := range freqs {
		tables = append(tables, tf)
	}
	vocab := vocabulary.FromFrequencies(tables, minOccur)

	likelihoods := make(map[Feature]float64, (vocab.Len()+1)*len(freqs))
	for class, tf := range freqs {
		den := math.Log(float64(tf.Total() + vocab.Len() + 1))

		likelihoods[Feature{Unknown, class}] = math.Log(1) - den
		for token := range vocab {
			likelihoods[Feature{token, class}] = math.Log(float64(tf[token]+1)) - den
		}
	}
	return likelihoods
}
