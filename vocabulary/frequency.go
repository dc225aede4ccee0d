package vocabulary

import "strings"

// DefaultBigramThreshold is the corpus bigram count at which a bigram's words stop
// being counted on their own in the combined table.
const DefaultBigramThreshold = 3

// TermFreq maps a token (a word or a "word word" bigram) to its occurrence count
type TermFreq map[string]int

// Bigram joins two adjacent words into a single token. Normalised words never
// contain a space, so bigram and word tokens cannot collide.
func Bigram(first, second string) string {
	return first + " " + second
}

// IsBigram reports whether token was built by Bigram
func IsBigram(token string) bool {
	return strings.IndexByte(token, ' ') >= 0
}

// WordFrequencies counts every whitespace separated word across docs
func WordFrequencies(docs []string) TermFreq {
	tf := make(TermFreq)
	for _, doc := range docs {
		for _, word := range strings.Fields(doc) {
			tf[word] += 1
		}
	}
	return tf
}

// BigramFrequencies counts adjacent word pairs inside each document; pairs never span documents
func BigramFrequencies(docs []string) TermFreq {
	tf := make(TermFreq)
	for _, doc := range docs {
		words := strings.Fields(doc)
		for i := 1; i < len(words); i++ {
			tf[Bigram(words[i-1], words[i])] += 1
		}
	}
	return tf
}

// CombinedFrequencies returns every bigram count plus the standalone count of each word
// occurrence whose neighbouring bigrams all occur fewer than threshold times in docs.
// A word that mostly appears inside a strong collocation is left to the bigram.
func CombinedFrequencies(docs []string, threshold int) TermFreq {
	bigrams := BigramFrequencies(docs)

	tf := make(TermFreq, len(bigrams))
	for token, count := range bigrams {
		tf[token] = count
	}

	for _, doc := range docs {
		words := strings.Fields(doc)
		for i, word := range words {
			if i > 0 && bigrams[Bigram(words[i-1], word)] >= threshold {
				continue
			}
			if i < len(words)-1 && bigrams[Bigram(word, words[i+1])] >= threshold {
				continue
			}
			tf[word] += 1
		}
	}
	return tf
}

// Total is the sum of every count in the table
func (tf TermFreq) Total() int {
	var total int
	for _, freq := range tf {
		total += freq
	}
	return total
}

// Merge sums the given tables into a new one
func Merge(tables ...TermFreq) TermFreq {
	merged := make(TermFreq)
	for _, table := range tables {
		for token, count := range table {
			merged[token] += count
		}
	}
	return merged
}
