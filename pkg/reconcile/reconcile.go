// Package reconcile validates that the dependency declarations in the
// manifest and the descriptor/pinned license references describe the same
// artifact set.
//
// The manifest carries two independently maintained views of the project's
// third-party surface: the coordinate list the build consumes, and the
// descriptor/pin list the license check consumes. Reconciliation keeps the
// two from drifting apart: every declared artifact must have a license
// source, and every license source must correspond to a declared artifact.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"noticecheck/pkg/bazel"
	"noticecheck/pkg/descriptor"
)

var (
	// ErrCardinality is returned when the declared artifact count does not
	// match the descriptor count plus the pinned count. Checked before any
	// network call.
	ErrCardinality = errors.New("artifact and descriptor counts differ")

	// ErrMismatch is returned when the declared and discovered coordinate
	// sets are not equal.
	ErrMismatch = errors.New("declared and discovered artifact sets differ")
)

// Extractor resolves a descriptor reference to its declared coordinate.
type Extractor interface {
	Extract(ctx context.Context, descriptorURL string) (descriptor.Coordinate, error)
}

// Entry associates an extracted coordinate with the descriptor it came
// from, in descriptor-list order. The aggregation phase consumes entries
// in this order to keep output deterministic.
type Entry struct {
	Coordinate string
	Descriptor string
}

// Result is the outcome of a successful reconciliation.
type Result struct {
	Entries []Entry
}

// Run reconciles the manifest. Descriptors are resolved strictly in list
// order, one at a time; the first failure aborts the run.
func Run(ctx context.Context, m *bazel.Manifest, ext Extractor) (*Result, error) {
	if len(m.Artifacts) != len(m.Descriptors)+len(m.Pins) {
		return nil, fmt.Errorf("%w: %d artifacts vs %d descriptors + %d pinned licenses, check %s",
			ErrCardinality, len(m.Artifacts), len(m.Descriptors), len(m.Pins), m.Path)
	}

	discovered := make(map[string]bool, len(m.Artifacts))
	entries := make([]Entry, 0, len(m.Descriptors))
	for _, url := range m.Descriptors {
		coord, err := ext.Extract(ctx, url)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Coordinate: coord.String(), Descriptor: url})
		discovered[coord.String()] = true
	}
	for _, pin := range m.Pins {
		discovered[pin.Coordinate] = true
	}

	declared := make(map[string]bool, len(m.Artifacts))
	for _, artifact := range m.Artifacts {
		coord, err := declaredCoordinate(artifact)
		if err != nil {
			return nil, err
		}
		declared[coord] = true
	}

	declaredOnly := diff(declared, discovered)
	discoveredOnly := diff(discovered, declared)
	if len(declaredOnly) > 0 || len(discoveredOnly) > 0 {
		return nil, fmt.Errorf("%w\n  declared only: %s\n  discovered only: %s",
			ErrMismatch, formatSide(declaredOnly), formatSide(discoveredOnly))
	}

	return &Result{Entries: entries}, nil
}

// declaredCoordinate keeps the group and artifact segments of a full
// declaration, dropping any version/classifier suffix.
func declaredCoordinate(artifact string) (string, error) {
	parts := strings.SplitN(artifact, ":", 3)
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid artifact declaration %q: want group:artifact[:version]", artifact)
	}
	return parts[0] + ":" + parts[1], nil
}

// diff returns the keys of a not present in b, sorted for deterministic
// diagnostics.
func diff(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func formatSide(coords []string) string {
	if len(coords) == 0 {
		return "(none)"
	}
	return strings.Join(coords, ", ")
}
