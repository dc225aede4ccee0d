package vocabulary

import (
	"reflect"
	"testing"
)

func TestWordFrequencies(t *testing.T) {
	docs := []string{"good movie good", "bad movie"}
	expected := TermFreq{"good": 2, "movie": 2, "bad": 1}

	if got := WordFrequencies(docs); !reflect.DeepEqual(got, expected) {
		t.Errorf("WordFrequencies() == %v, want %v", got, expected)
	}
}

func TestBigramFrequencies(t *testing.T) {
	testCases := []struct {
		name     string
		docs     []string
		expected TermFreq
	}{
		{
			name:     "pairs within a document",
			docs:     []string{"a b c", "a b"},
			expected: TermFreq{"a b": 2, "b c": 1},
		},
		{
			name:     "no pairs across document boundaries",
			docs:     []string{"end", "start"},
			expected: TermFreq{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BigramFrequencies(tc.docs)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("BigramFrequencies() == %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestCombinedFrequencies(t *testing.T) {
	testCases := []struct {
		name      string
		docs      []string
		threshold int
		expected  TermFreq
	}{
		{
			name:      "words inside a strong bigram are suppressed",
			docs:      []string{"a b c", "a b", "a b"},
			threshold: 3,
			expected:  TermFreq{"a b": 3, "b c": 1, "c": 1},
		},
		{
			name:      "weak bigrams keep their words",
			docs:      []string{"a b", "a b"},
			threshold: 3,
			expected:  TermFreq{"a b": 2, "a": 2, "b": 2},
		},
		{
			name:      "single word documents always count the word",
			docs:      []string{"solo", "solo"},
			threshold: 1,
			expected:  TermFreq{"solo": 2},
		},
		{
			name:      "edge words only check their one neighbour",
			docs:      []string{"x y z", "x y"},
			threshold: 2,
			expected:  TermFreq{"x y": 2, "y z": 1, "z": 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CombinedFrequencies(tc.docs, tc.threshold)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("CombinedFrequencies() == %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestCombinedVocabularyDropsCollocatedWord(t *testing.T) {
	positive := []string{"new york", "love new york", "new york rocks"}
	negative := []string{"hate rain", "rain"}

	tables := []TermFreq{
		CombinedFrequencies(positive, DefaultBigramThreshold),
		CombinedFrequencies(negative, DefaultBigramThreshold),
	}
	vocab := FromFrequencies(tables, 1)

	if WordFrequencies(append(positive, negative...))["new"] < DefaultBigramMinOccur {
		t.Fatal("test corpus must use \"new\" more often than the threshold")
	}
	if !vocab.Contains("new york") {
		t.Error("vocabulary should contain \"new york\"")
	}
	if vocab.Contains("new") {
		t.Error("vocabulary should not contain \"new\" when it only occurs inside \"new york\"")
	}
	if !vocab.Contains("love") {
		t.Error("vocabulary should contain \"love\"")
	}
}

func TestFromFrequencies(t *testing.T) {
	tables := []TermFreq{
		{"good": 1, "great": 2, "film": 1},
		{"bad": 2, "film": 1},
	}

	vocab := FromFrequencies(tables, 2)
	expected := []string{"bad", "film", "great"}

	if got := vocab.Sorted(); !reflect.DeepEqual(got, expected) {
		t.Errorf("FromFrequencies().Sorted() == %v, want %v", got, expected)
	}

	if FromFrequencies(tables, 10).Len() != 0 {
		t.Error("FromFrequencies() with a high threshold should be empty")
	}
}

func TestTotalAndMerge(t *testing.T) {
	a := TermFreq{"x": 2, "y": 1}
	b := TermFreq{"y": 3}

	merged := Merge(a, b)
	if merged["y"] != 4 || merged["x"] != 2 {
		t.Errorf("Merge() == %v, want x:2 y:4", merged)
	}
	if a["y"] != 1 {
		t.Error("Merge() must not mutate its inputs")
	}
	if merged.Total() != 6 {
		t.Errorf("Total() == %d, want 6", merged.Total())
	}
}

func TestIsBigram(t *testing.T) {
	if !IsBigram(Bigram("new", "york")) {
		t.Error("IsBigram(Bigram()) should be true")
	}
	if IsBigram("york") {
		t.Error("IsBigram(word) should be false")
	}
}

func TestSortedByFrequency(t *testing.T) {

	testCases := []struct {
		name     string
		input    TermFreq
		expected []Stat
	}{
		{
			name: "Basic test",
			input: TermFreq{
				"one":   1,
				"two":   2,
				"three": 3,
				"deux":  2,
			},
			expected: []Stat{
				{Token: "three", Freq: 3},
				{Token: "deux", Freq: 2},
				{Token: "two", Freq: 2},
				{Token: "one", Freq: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sortedSlice := SortedByFrequency(tc.input)
			if !reflect.DeepEqual(sortedSlice, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, sortedSlice)
			}
		})
	}

}
