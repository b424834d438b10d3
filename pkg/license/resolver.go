// Package license resolves the license document text for a dependency,
// either by convention from the repository that hosts its build descriptor
// or from a pinned absolute URL.
package license

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"noticecheck/pkg/github"
)

// DefaultCandidates are the conventional filenames tried at the repository
// root, in order. The first one that resolves wins.
var DefaultCandidates = []string{"/LICENSE", "/COPYING"}

// Fetcher fetches raw text content for a view URL.
type Fetcher interface {
	FetchRaw(ctx context.Context, viewURL string) (string, error)
}

// Resolver locates license document texts.
type Resolver struct {
	Fetcher    Fetcher
	Candidates []string // overrides DefaultCandidates when non-empty
}

func (r *Resolver) candidates() []string {
	if len(r.Candidates) > 0 {
		return r.Candidates
	}
	return DefaultCandidates
}

// FromDescriptor locates the license for the repository hosting the given
// pom/gradle descriptor. The repository root at the pinned tag is
// everything before the version separator; candidate filenames are tried
// there in order.
func (r *Resolver) FromDescriptor(ctx context.Context, descriptorURL string) (string, error) {
	root, _, _ := strings.Cut(descriptorURL, github.VersionTagSeparator)
	for _, name := range r.candidates() {
		text, err := r.Fetcher.FetchRaw(ctx, root+name)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, github.ErrNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("cannot get license information for descriptor %s", descriptorURL)
}

// FromURL fetches a pinned license document directly.
func (r *Resolver) FromURL(ctx context.Context, url string) (string, error) {
	text, err := r.Fetcher.FetchRaw(ctx, url)
	if err != nil {
		return "", fmt.Errorf("cannot get license information for url %s: %w", url, err)
	}
	return text, nil
}
