// Package descriptor extracts canonical Maven coordinates from upstream
// build descriptors.
//
// A descriptor is the pom.xml or *.gradle file a dependency's own
// repository publishes for it. Each dialect has a Parser implementation;
// the right one is selected by file suffix. Anything that is neither a pom
// nor a gradle file is a configuration error, not a fallthrough.
package descriptor

import (
	"context"
	"errors"
	"fmt"
)

// Coordinate is the (group, artifact) identity pair of a dependency,
// independent of version.
type Coordinate struct {
	Group    string
	Artifact string
}

// String renders the canonical "group:artifact" form used for all
// reconciliation.
func (c Coordinate) String() string { return c.Group + ":" + c.Artifact }

// ErrUnsupported is returned for descriptor references whose suffix no
// parser recognizes.
var ErrUnsupported = errors.New("unsupported descriptor type")

// Fetcher fetches raw text content for a view URL.
type Fetcher interface {
	FetchRaw(ctx context.Context, viewURL string) (string, error)
}

// Parser extracts the declared coordinate from one descriptor dialect.
type Parser interface {
	Type() string
	Supports(name string) bool
	Parse(content string) (Coordinate, error)
}

var parsers = []Parser{
	&POMParser{},
	&GradleParser{},
}

// ForFile selects the parser responsible for the given descriptor
// location, by suffix.
func ForFile(name string) (Parser, error) {
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is neither a pom nor a gradle file", ErrUnsupported, name)
}

// Extractor fetches a descriptor and extracts the coordinate it declares.
type Extractor struct {
	Fetcher Fetcher
}

// Extract resolves the descriptor at viewURL to its canonical coordinate.
// An unreadable descriptor is an error for both dialects; there is no
// degraded mode.
func (e *Extractor) Extract(ctx context.Context, viewURL string) (Coordinate, error) {
	p, err := ForFile(viewURL)
	if err != nil {
		return Coordinate{}, err
	}
	content, err := e.Fetcher.FetchRaw(ctx, viewURL)
	if err != nil {
		return Coordinate{}, fmt.Errorf("read %s descriptor %s: %w", p.Type(), viewURL, err)
	}
	coord, err := p.Parse(content)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse %s descriptor %s: %w", p.Type(), viewURL, err)
	}
	return coord, nil
}
