// Package reviews reads and writes labelled review files and word lists.
//
// A review file holds one review per line as CLASS<TAB>TEXT. A word list holds one
// word per line and is used for stopwords.
package reviews

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/lexer"
)

// ReadReviews parses CLASS<TAB>TEXT lines. Only the first tab separates the fields.
func ReadReviews(r io.Reader) (bayes.Documents, error) {
	docs := make(bayes.Documents)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line += 1
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		class, review, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected CLASS<TAB>REVIEW", line)
		}
		docs[class] = append(docs[class], review)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading reviews: %w", err)
	}
	return docs, nil
}

// WriteReviews writes every non-empty review as CLASS<TAB>TEXT, positive class first.
// Each class is written in a random order drawn from rng; docs itself is left untouched.
func WriteReviews(w io.Writer, docs bayes.Documents, rng *rand.Rand) error {
	bw := bufio.NewWriter(w)
	for _, class := range orderedClasses(docs) {
		list := append([]string(nil), docs[class]...)
		if rng != nil {
			rng.Shuffle(len(list), func(i, j int) {
				list[i], list[j] = list[j], list[i]
			})
		}
		for _, review := range list {
			review = strings.Join(strings.Fields(review), " ")
			if review == "" {
				continue
			}
			if _, err := bw.WriteString(class + "\t" + review + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func ReadReviewsFile(fileName string) (bayes.Documents, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := ReadReviews(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return docs, nil
}

func WriteReviewsFile(fileName string, docs bayes.Documents, rng *rand.Rand) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := WriteReviews(f, docs, rng); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadWordList reads one word per line, ignoring surrounding whitespace and blank lines
func ReadWordList(r io.Reader) (lexer.Stopwords, error) {
	words := lexer.NewStopwords()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words.Add(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	return words, nil
}

// WriteWordList writes the words one per line in lexical order
func WriteWordList(w io.Writer, words lexer.Stopwords) error {
	bw := bufio.NewWriter(w)
	for _, word := range words.Sorted() {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadWordListFile reads a word list; an empty fileName yields an empty set
func ReadWordListFile(fileName string) (lexer.Stopwords, error) {
	if fileName == "" {
		return lexer.NewStopwords(), nil
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWordList(f)
}

func orderedClasses(docs bayes.Documents) []string {
	classes := append([]string(nil), bayes.Classes...)
	for class := range docs {
		if class != bayes.Positive && class != bayes.Negative {
			classes = append(classes, class)
		}
	}
	return classes
}
