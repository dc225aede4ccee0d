// Package scraper collects product reviews from an online store's paginated review pages.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/logger"
)

const reviewBaseURL = "http://www.amazon.%s/product-reviews/"

var ErrInvalidTLD = errors.New("invalid store TLD")

var validTLDs = map[string]bool{
	"com.au": true, "com.br": true, "ca": true, "cn": true, "fr": true, "de": true, "in": true,
	"it": true, "co.jp": true, "com.mx": true, "nl": true, "es": true, "co.uk": true, "com": true,
}

// StatusError reports a review page that answered with a non 2xx status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error fetching %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

type Scraper struct {
	Client *http.Client
	// BaseURL replaces the store's review URL; the ASIN is appended to it
	BaseURL string
	// MaxRetries bounds how often a 503 page is requested again
	MaxRetries int
	RetryDelay time.Duration
}

// New returns a Scraper for the store at the given top level domain
func New(tld string) (*Scraper, error) {
	if !validTLDs[tld] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTLD, tld)
	}
	return &Scraper{
		Client:     http.DefaultClient,
		BaseURL:    fmt.Sprintf(reviewBaseURL, tld),
		MaxRetries: 5,
		RetryDelay: time.Second,
	}, nil
}

// ReviewURL returns the given review page of asin, filtered by class when class is a known label
func (s *Scraper) ReviewURL(asin, class string, page int) (string, error) {
	base, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}
	ref, err := url.Parse(url.PathEscape(asin))
	if err != nil {
		return "", fmt.Errorf("error parsing ASIN: %w", err)
	}
	reviewURL := base.ResolveReference(ref)

	params := url.Values{}
	params.Set("pageNumber", strconv.Itoa(page))
	switch class {
	case bayes.Positive:
		params.Set("filterByStar", "positive")
	case bayes.Negative:
		params.Set("filterByStar", "critical")
	}
	reviewURL.RawQuery = params.Encode()

	return reviewURL.String(), nil
}

// Fetch collects up to limit reviews of asin, page by page, until a page has none.
// class selects positive or critical reviews; any other value fetches all of them.
// A failing page aborts the fetch only when nothing has been collected yet.
func (s *Scraper) Fetch(ctx context.Context, asin, class string, limit int) ([]string, error) {
	var reviews []string

	for page := 1; limit > 0; page++ {
		pageURL, err := s.ReviewURL(asin, class, page)
		if err != nil {
			return nil, err
		}

		body, err := s.get(ctx, pageURL)
		if err != nil {
			var statusErr *StatusError
			if len(reviews) > 0 && errors.As(err, &statusErr) {
				logger.HandleError(err)
				break
			}
			return reviews, err
		}

		pageReviews, err := ExtractReviews(body, limit)
		if err != nil {
			return reviews, err
		}
		if len(pageReviews) == 0 {
			break
		}

		reviews = append(reviews, pageReviews...)
		limit -= len(pageReviews)
	}

	return reviews, nil
}

// get returns the body of pageURL, asking again while the store answers 503
func (s *Scraper) get(ctx context.Context, pageURL string) (string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return "", err
		}

		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("error accessing review page: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("error reading html response body: %w", err)
		}

		if resp.StatusCode == http.StatusServiceUnavailable && attempt < s.MaxRetries {
			logger.Logf("%s answered 503, retrying (%d/%d)", pageURL, attempt+1, s.MaxRetries)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(s.RetryDelay):
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", &StatusError{URL: pageURL, StatusCode: resp.StatusCode}
		}
		return string(body), nil
	}
}
