package lexer

import (
	"errors"
	"unicode"
)

// ErrNoMoreTokens is returned by Next once the content is exhausted
var ErrNoMoreTokens = errors.New("no more tokens")

type Lexer struct {
	content []rune
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{[]rune(content)}
}

// TrimLeft trims empty spaces from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && unicode.IsSpace(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next whitespace delimited word, lowercased and with every
// character that is not an ASCII letter deleted. Words that end up empty are skipped.
func (l *Lexer) NextToken() []rune {
	for {
		l.TrimLeft()

		if len(l.content) == 0 {
			return nil
		}

		word := l.ChopWhile(func(r rune) bool {
			return !unicode.IsSpace(r)
		})

		token := make([]rune, 0, len(word))
		for _, r := range word {
			if isASCIILetter(r) {
				token = append(token, unicode.ToLower(r))
			}
		}
		if len(token) > 0 {
			return token
		}
	}
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "EOF", ErrNoMoreTokens
	}
	return string(token), nil
}

// Words drains the lexer and returns every remaining token
func (l *Lexer) Words() []string {
	var words []string
	for {
		token, err := l.Next()
		if err != nil {
			return words
		}
		words = append(words, token)
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
