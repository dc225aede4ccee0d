package lexer

import "sort"

// Stopwords is a set of lowercase words removed from every document before counting.
type Stopwords map[string]struct{}

func NewStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Stopwords) Add(word string) {
	s[word] = struct{}{}
}

// Sorted returns the stopwords in lexical order
func (s Stopwords) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
