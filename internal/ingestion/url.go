package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultFetchTimeout bounds a job-posting fetch.
	DefaultFetchTimeout = 30 * time.Second
	// DefaultUserAgent is sent with job-posting requests.
	DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"
	// MaxPageBytes caps how much of a response body is read.
	MaxPageBytes = 5 << 20
)

// JobPostingSelectors are tried in order to find the posting body on job boards.
var JobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// FetchError represents a failed job-posting fetch.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// FetchOptions configures FetchJobPosting.
type FetchOptions struct {
	Client    *http.Client
	Timeout   time.Duration
	UserAgent string
	Board     JobBoard // overrides the board detected from the URL host
}

// FetchJobPosting downloads a job posting and returns its cleaned text.
// HTML pages are narrowed with the selectors of the hosting job board and
// then JobPostingSelectors; other content types go through ExtractText.
func FetchJobPosting(ctx context.Context, rawURL string, opts *FetchOptions) (string, *Document, error) {
	if opts == nil {
		opts = &FetchOptions{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultFetchTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", nil, &FetchError{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", nil, &FetchError{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, &FetchError{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", nil, &FetchError{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageBytes))
	if err != nil {
		return "", nil, &FetchError{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	contentType := DetectType(resp.Header.Get("Content-Type"), parsed.Path)
	if contentType == "" {
		contentType = TypeHTML
	}

	var text string
	if contentType == TypeHTML {
		board := opts.Board
		if board == "" {
			board = DetectJobBoard(rawURL)
		}
		raw, err := htmlText(body, boardContentSelectors(board), boardNoiseSelectors(board))
		if err != nil {
			return "", nil, err
		}
		text = CleanText(raw)
		if text == "" {
			return "", nil, &ExtractionError{Message: "job posting contains no text"}
		}
	} else {
		text, err = ExtractText(contentType, parsed.Path, body)
		if err != nil {
			return "", nil, err
		}
	}

	doc := NewDocument("", contentType, text)
	doc.URL = rawURL
	return text, doc, nil
}
