// Package bazel loads the dependency declarations the license check runs
// against from MODULE.bazel.
//
// The declarations live in a region bounded by the sentinel markers
// START_MAVEN_ARTIFACTS_LIST and END_MAVEN_ARTIFACTS_LIST. The region is
// Starlark, but only literal assignments are allowed there: it is read by
// a restricted parser (see parser.go) and never evaluated as code.
package bazel

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	startMarker = "START_MAVEN_ARTIFACTS_LIST"
	endMarker   = "END_MAVEN_ARTIFACTS_LIST"
)

// Binding names required inside the sentinel region.
const (
	bindArtifacts   = "MAVEN_ARTIFACTS"
	bindDescriptors = "ORDERED_POM_OR_GRADLE_FILE_LIST_FOR_LICENSE_CHECK"
	bindPinned      = "ADDITIONAL_LICENSES"
)

var (
	// ErrNoRegion is returned when the sentinel-delimited region is absent.
	ErrNoRegion = errors.New("maven artifacts region not found")

	// ErrMissingBinding is returned when a required binding is not defined
	// inside the region.
	ErrMissingBinding = errors.New("missing binding")
)

// Pin maps a package coordinate to the absolute URL of its license
// document, bypassing descriptor-based discovery. Used for dependencies
// whose license is not discoverable at the repository root.
type Pin struct {
	Coordinate string
	URL        string
}

// Manifest holds the three declaration collections recovered from the
// sentinel region.
type Manifest struct {
	Path        string   // manifest file the declarations came from
	Artifacts   []string // declared coordinates, with version suffix
	Descriptors []string // ordered pom/gradle view URLs for license lookup
	Pins        []Pin    // pinned license references, in declaration order
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse extracts the declaration collections from the full manifest text.
func Parse(content string) (*Manifest, error) {
	src, err := region(content)
	if err != nil {
		return nil, err
	}
	bindings, err := parseBindings(src)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if m.Artifacts, err = stringList(bindings, bindArtifacts); err != nil {
		return nil, err
	}
	if m.Descriptors, err = stringList(bindings, bindDescriptors); err != nil {
		return nil, err
	}
	if m.Pins, err = pinList(bindings, bindPinned); err != nil {
		return nil, err
	}
	return m, nil
}

// region returns the text between the first start marker and the next end
// marker after it.
func region(content string) (string, error) {
	start := strings.Index(content, startMarker)
	if start < 0 {
		return "", ErrNoRegion
	}
	rest := content[start+len(startMarker):]
	end := strings.Index(rest, endMarker)
	if end < 0 {
		return "", ErrNoRegion
	}
	return rest[:end], nil
}

func stringList(bindings map[string]value, name string) ([]string, error) {
	v, ok := bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBinding, name)
	}
	l, ok := v.(list)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list of strings", name)
	}
	out := make([]string, 0, len(l))
	for _, e := range l {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected a list of strings", name)
		}
		out = append(out, s)
	}
	return out, nil
}

func pinList(bindings map[string]value, name string) ([]Pin, error) {
	v, ok := bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBinding, name)
	}
	d, ok := v.(dict)
	if !ok {
		return nil, fmt.Errorf("%s: expected a string-to-string mapping", name)
	}
	out := make([]Pin, 0, len(d))
	for _, e := range d {
		coord, kok := e.key.(string)
		url, vok := e.val.(string)
		if !kok || !vok {
			return nil, fmt.Errorf("%s: expected a string-to-string mapping", name)
		}
		out = append(out, Pin{Coordinate: coord, URL: url})
	}
	return out, nil
}
