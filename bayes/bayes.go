// Package bayes trains and applies a two-class multinomial naive Bayes sentiment model.
// All probabilities are kept as natural logarithms.
package bayes

import (
	"errors"
	"fmt"

	"github.com/deanrtaylor1/gosentiment/vocabulary"
)

const (
	Positive = "+"
	Negative = "-"

	// Unknown is the reserved token that stands in for anything outside the vocabulary
	Unknown = "<UNKNOWN>"
)

// Classes lists the labels in tie-break order: a tie resolves to the first entry
var Classes = []string{Positive, Negative}

var (
	// ErrInsufficientData is returned when a class (or the whole collection) has no usable documents
	ErrInsufficientData = errors.New("insufficient data")
	// ErrUnknownClass is returned when training data carries a label other than Positive or Negative
	ErrUnknownClass = errors.New("unknown class label")
	// ErrMissingClass is returned when a class is looked up that the model was not trained on
	ErrMissingClass = errors.New("class missing from model")
)

// Documents maps a class label to its ordered review texts
type Documents map[string][]string

// Len is the number of documents across every class
func (d Documents) Len() int {
	var n int
	for _, docs := range d {
		n += len(docs)
	}
	return n
}

// Copy returns a Documents whose slices can be reordered without touching d
func (d Documents) Copy() Documents {
	c := make(Documents, len(d))
	for class, docs := range d {
		c[class] = append([]string(nil), docs...)
	}
	return c
}

// Validate checks that every label is known and that both classes have documents
func (d Documents) Validate() error {
	for class := range d {
		if class != Positive && class != Negative {
			return fmt.Errorf("%w: %q", ErrUnknownClass, class)
		}
	}
	for _, class := range Classes {
		if len(d[class]) == 0 {
			return fmt.Errorf("%w: class %q has no documents", ErrInsufficientData, class)
		}
	}
	return nil
}

// FeatureSet selects how documents are turned into tokens
type FeatureSet uint8

const (
	// Unigrams counts single words only
	Unigrams FeatureSet = iota
	// UnigramsAndBigrams counts bigrams, plus words not absorbed by a frequent bigram
	UnigramsAndBigrams
)

func (f FeatureSet) String() string {
	switch f {
	case Unigrams:
		return "unigrams"
	case UnigramsAndBigrams:
		return "unigrams+bigrams"
	default:
		return fmt.Sprintf("FeatureSet(%d)", uint8(f))
	}
}

// Feature keys a likelihood by token and class
type Feature struct {
	Token string
	Class string
}

// Model is a trained classifier. It is not modified after training.
type Model struct {
	Features FeatureSet
	// Priors holds ln P(class)
	Priors map[string]float64
	// Likelihoods holds ln P(token | class) for every vocabulary token and every class,
	// plus an Unknown entry per class
	Likelihoods map[Feature]float64
	// StemLanguage is the snowball stemmer the training text went through, "" for none
	StemLanguage string
	// Counts holds the training count of every vocabulary token, summed over classes
	Counts vocabulary.TermFreq
}

// Likelihood returns ln P(token | class) and whether the token has an entry
func (m *Model) Likelihood(token, class string) (float64, bool) {
	v, ok := m.Likelihoods[Feature{token, class}]
	return v, ok
}

// Tokens returns the vocabulary the model was trained with
func (m *Model) Tokens() []string {
	var tokens []string
	for f := range m.Likelihoods {
		if f.Class == Positive && f.Token != Unknown {
			tokens = append(tokens, f.Token)
		}
	}
	return tokens
}

// TopTokens returns the n most frequent vocabulary tokens. n <= 0 returns all of them.
func (m *Model) TopTokens(n int) []vocabulary.Stat {
	stats := vocabulary.SortedByFrequency(m.Counts)
	if n > 0 && n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// VocabularySize is the number of tokens with their own likelihood, excluding Unknown
func (m *Model) VocabularySize() int {
	return len(m.Tokens())
}
