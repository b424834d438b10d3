// Package github fetches raw file content from GitHub's web front end.
//
// Descriptor references in MODULE.bazel are human-facing "view file" URLs
// (https://github.com/owner/repo/blob/TAG@/path/to/pom.xml). The client
// rewrites them to raw.githubusercontent.com content URLs and performs a
// single GET per fetch. There is deliberately no retry and no caching: the
// notices document is regenerated from scratch on every run, and a resource
// that cannot be read makes the whole run fail anyway.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	viewPrefix = "https://github.com/"
	rawPrefix  = "https://raw.githubusercontent.com/"

	// VersionTagSeparator splits the repository-root-at-tag prefix of a
	// descriptor reference from the file path inside the repository.
	VersionTagSeparator = "@/"
)

// DefaultTimeout bounds a single raw-content request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when GitHub answers with any non-200 status.
	// Callers treat absence uniformly: a 404 and a 500 both mean the
	// resource cannot be used for this run.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures before any status code
	// is available.
	ErrNetwork = errors.New("network error")
)

// rawURLReplacer rewrites a view URL into its raw-content form: swap the
// web front-end host for the raw host, turn the version separator into a
// plain path separator, and resolve the blob marker into a tag ref.
var rawURLReplacer = strings.NewReplacer(
	viewPrefix, rawPrefix,
	VersionTagSeparator, "/",
	"/blob/", "/refs/tags/",
)

// RawURL converts a GitHub "view file" URL into its raw-content URL.
// URLs outside github.com pass through with only the separator and blob
// substitutions applied.
func RawURL(viewURL string) string {
	return rawURLReplacer.Replace(viewURL)
}

// Client fetches raw text content from GitHub.
type Client struct {
	http *http.Client
	logf func(format string, args ...any)
}

// NewClient creates a Client with the given request timeout. logf, if
// non-nil, receives one line per requested raw URL; it is an observability
// aid and never affects control flow.
func NewClient(timeout time.Duration, logf func(format string, args ...any)) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		logf: logf,
	}
}

// FetchRaw fetches the raw content behind a view URL. It returns
// ErrNotFound for any non-200 response and ErrNetwork for transport
// failures.
func (c *Client) FetchRaw(ctx context.Context, viewURL string) (string, error) {
	rawURL := RawURL(viewURL)
	c.logf("Requesting %s", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logf("GitHub returned status %d for %s", resp.StatusCode, rawURL)
		return "", fmt.Errorf("%w: %s", ErrNotFound, rawURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return string(data), nil
}
