package lexer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tebeka/snowball"
)

// Normalizer turns raw review text into the cleaned form the classifier counts:
// ASCII letters only, lowercased, stopwords dropped, words joined by single spaces.
type Normalizer struct {
	stopwords Stopwords

	// snowball stemmers wrap C state and must not be shared between goroutines
	stemLock     *sync.Mutex
	stemmer      *snowball.Stemmer
	stemLanguage string
}

// NewNormalizer returns a Normalizer that removes the given stopwords. A nil set removes nothing.
func NewNormalizer(stopwords Stopwords) *Normalizer {
	if stopwords == nil {
		stopwords = Stopwords{}
	}
	return &Normalizer{
		stopwords: stopwords,
		stemLock:  &sync.Mutex{},
	}
}

// EnableStemming stems every surviving word with the snowball stemmer for language.
// Stopwords are matched before stemming.
func (n *Normalizer) EnableStemming(language string) error {
	stemmer, err := snowball.New(language)
	if err != nil {
		return fmt.Errorf("error creating %s stemmer: %w", language, err)
	}
	n.stemLock.Lock()
	if n.stemmer != nil {
		n.stemmer.Close()
	}
	n.stemmer = stemmer
	n.stemLanguage = language
	n.stemLock.Unlock()
	return nil
}

// Close releases the stemmer, if any
func (n *Normalizer) Close() {
	n.stemLock.Lock()
	defer n.stemLock.Unlock()
	if n.stemmer != nil {
		n.stemmer.Close()
		n.stemmer = nil
		n.stemLanguage = ""
	}
}

// StemLanguage names the stemmer in use, "" when words are not stemmed
func (n *Normalizer) StemLanguage() string {
	n.stemLock.Lock()
	defer n.stemLock.Unlock()
	return n.stemLanguage
}

func (n *Normalizer) Stopwords() Stopwords {
	return n.stopwords
}

// Normalize cleans a single document. The result is empty when nothing survives.
func (n *Normalizer) Normalize(doc string) string {
	words := NewLexer(doc).Words()
	kept := words[:0]
	for _, word := range words {
		if n.stopwords.Contains(word) {
			continue
		}
		kept = append(kept, word)
	}

	n.stemLock.Lock()
	if n.stemmer != nil {
		for i, word := range kept {
			kept[i] = n.stemmer.Stem(word)
		}
	}
	n.stemLock.Unlock()

	return strings.Join(kept, " ")
}

// NormalizeAll cleans every document and drops the ones that end up empty,
// so the result may be shorter than docs.
func (n *Normalizer) NormalizeAll(docs []string) []string {
	cleaned := make([]string, 0, len(docs))
	for _, doc := range docs {
		if c := n.Normalize(doc); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}

// Normalize cleans doc against stopwords without stemming
func Normalize(doc string, stopwords Stopwords) string {
	return NewNormalizer(stopwords).Normalize(doc)
}

// NormalizeAll cleans docs against stopwords without stemming
func NormalizeAll(docs []string, stopwords Stopwords) []string {
	return NewNormalizer(stopwords).NormalizeAll(docs)
}
