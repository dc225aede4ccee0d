package vocabulary

import "sort"

const (
	// DefaultMinOccur is the vocabulary threshold for unigram training
	DefaultMinOccur = 2
	// DefaultBigramMinOccur is the vocabulary threshold for the combined feature set
	DefaultBigramMinOccur = 3
)

// Vocabulary is the set of tokens kept as features; everything else is unknown
type Vocabulary map[string]struct{}

// FromFrequencies keeps the tokens whose summed count across all tables is at least minOccur
func FromFrequencies(tables []TermFreq, minOccur int) Vocabulary {
	vocab := make(Vocabulary)
	for token, count := range Merge(tables...) {
		if count >= minOccur {
			vocab[token] = struct{}{}
		}
	}
	return vocab
}

func (v Vocabulary) Contains(token string) bool {
	_, ok := v[token]
	return ok
}

func (v Vocabulary) Len() int {
	return len(v)
}

// Sorted returns the tokens in lexical order
func (v Vocabulary) Sorted() []string {
	tokens := make([]string, 0, len(v))
	for token := range v {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

type Stat struct {
	Token string `json:"token"`
	Freq  int    `json:"freq"`
}

// SortedByFrequency ranks the table by descending count, ties broken lexically
func SortedByFrequency(tf TermFreq) (stats []Stat) {
	stats = make([]Stat, 0, len(tf))
	for k, v := range tf {
		stats = append(stats, Stat{k, v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Freq != stats[j].Freq {
			return stats[i].Freq > stats[j].Freq
		}
		return stats[i].Token < stats[j].Token
	})

	return stats
}
