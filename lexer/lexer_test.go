package lexer

import (
	"reflect"
	"testing"
	"unicode"
)

func TestNewLexer(t *testing.T) {
	l := NewLexer("Hello World!")
	if l == nil {
		t.Error("NewLexer() returned nil")
	} else {

		if len(l.content) != 12 {
			t.Error("NewLexer() returned wrong length")
		}

		if string(l.content) != "Hello World!" {
			t.Error("NewLexer() returned wrong content")
		}
	}

}

func TestTrimLeft(t *testing.T) {
	l := NewLexer(" \t\nHello World!")
	l.TrimLeft()
	if string(l.content) != "Hello World!" {
		t.Error("TrimLeft() failed")
	}

}

func TestChop(t *testing.T) {
	l := NewLexer("Hello World!")
	l.Chop(5)
	if string(l.content) != " World!" {
		t.Error("Chop() failed")
	}
}

func TestChopWhile(t *testing.T) {
	l := NewLexer("Hello World!")

	f := func(x rune) bool {
		return unicode.IsLetter(x)
	}

	l.ChopWhile(f)
	expected := " World!"
	if string(l.content) != expected {
		t.Errorf("ChopWhile() Failed, expected %v, got %v", expected, l.content)
	}
}

func TestNextToken(t *testing.T) {

	l := NewLexer("Hello World!")

	expected := "hello"
	nextToken := l.NextToken()

	if string(nextToken) != expected {
		t.Errorf("NextToken() Failed, expected %v, got %v", expected, string(nextToken))
	}

}

func TestNext(t *testing.T) {
	l := NewLexer("Hello World! 42 don't")

	for _, expected := range []string{"hello", "world", "dont"} {
		nextToken, err := l.Next()
		if err != nil {
			t.Errorf("Next() Failed, expected %v, got %v", nil, err)
		}
		if nextToken != expected {
			t.Errorf("Next() Failed, expected %v, got %v", expected, nextToken)
		}
	}

	EOF, err := l.Next()

	if err != ErrNoMoreTokens {
		t.Errorf("Next() Failed, expected %v, got %v", ErrNoMoreTokens, err)
	}

	if EOF != "EOF" {
		t.Errorf("Next() Failed, expected %v, got %v", "EOF", EOF)
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		stopwords Stopwords
		expected  string
	}{
		{
			name:     "strips punctuation and digits",
			input:    "Great movie!!! 10/10, would watch again.",
			expected: "great movie would watch again",
		},
		{
			name:     "deletes inside words rather than splitting",
			input:    "It's a must-see",
			expected: "its a mustsee",
		},
		{
			name:     "collapses whitespace",
			input:    "  too \t many\n\nspaces  ",
			expected: "too many spaces",
		},
		{
			name:      "removes stopwords after lowercasing",
			input:     "The Movie was THE best",
			stopwords: NewStopwords("the", "was"),
			expected:  "movie best",
		},
		{
			name:     "drops non ascii letters",
			input:    "café naïve",
			expected: "caf nave",
		},
		{
			name:      "empty when nothing survives",
			input:     "the 123 !!!",
			stopwords: NewStopwords("the"),
			expected:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input, tc.stopwords)
			if got != tc.expected {
				t.Errorf("Normalize(%q) == %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeAllDropsEmptyDocuments(t *testing.T) {
	docs := []string{"Good film", "the", "!!!", "Bad plot"}
	got := NormalizeAll(docs, NewStopwords("the"))
	expected := []string{"good film", "bad plot"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("NormalizeAll() == %v, want %v", got, expected)
	}
}

func TestNormalizerStemming(t *testing.T) {
	n := NewNormalizer(NewStopwords("the"))
	defer n.Close()

	if err := n.EnableStemming("english"); err != nil {
		t.Fatalf("EnableStemming() failed: %v", err)
	}

	got := n.Normalize("The actors were running")
	expected := "actor were run"
	if got != expected {
		t.Errorf("Normalize() == %q, want %q", got, expected)
	}

	if got := n.StemLanguage(); got != "english" {
		t.Errorf("StemLanguage() == %q, want english", got)
	}

	if err := n.EnableStemming("klingon"); err == nil {
		t.Error("EnableStemming(klingon) should fail")
	}

	n.Close()
	if got := n.StemLanguage(); got != "" {
		t.Errorf("StemLanguage() after Close() == %q, want empty", got)
	}
}

func TestStopwordsSorted(t *testing.T) {
	s := NewStopwords("the", "a", "of")
	s.Add("and")

	expected := []string{"a", "and", "of", "the"}
	if got := s.Sorted(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Sorted() == %v, want %v", got, expected)
	}
	if !s.Contains("of") || s.Contains("movie") {
		t.Error("Contains() returned the wrong membership")
	}
}
