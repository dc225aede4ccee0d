package scraper

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// ReviewClass is the class attribute value that marks a review body
const ReviewClass = "review-text"

// ExtractReviews returns the text of up to limit elements carrying ReviewClass, in document
// order. Each review is its trimmed text nodes joined by single spaces, NFKC normalised.
func ExtractReviews(htmlContent string, limit int) ([]string, error) {
	nodes, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	reviews := []string{}
	var f func(*html.Node)
	f = func(n *html.Node) {
		if len(reviews) >= limit {
			return
		}
		if n.Type == html.ElementNode && hasClass(n, ReviewClass) {
			if text := strings.Join(strippedStrings(n), " "); text != "" {
				reviews = append(reviews, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(nodes)
	return reviews, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// strippedStrings collects the non-empty trimmed text nodes below n
func strippedStrings(n *html.Node) []string {
	var strs []string
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(norm.NFKC.String(n.Data)); s != "" {
				strs = append(strs, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return strs
}
