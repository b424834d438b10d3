package bazel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `module(name = "myproject", version = "1.0")

bazel_dep(name = "rules_jvm_external", version = "6.0")

# START_MAVEN_ARTIFACTS_LIST
MAVEN_ARTIFACTS = [
    "org.a:lib:1.0",
    "org.b:lib:2.0",  # pinned below
]

ORDERED_POM_OR_GRADLE_FILE_LIST_FOR_LICENSE_CHECK = [
    "https://github.com/org-a/lib/blob/v1.0@/pom.xml",
]

ADDITIONAL_LICENSES = {
    "org.b:lib": "https://github.com/org-b/lib/blob/v2.0/LICENSE",
}
# END_MAVEN_ARTIFACTS_LIST

maven.install(artifacts = MAVEN_ARTIFACTS)
`

func TestParse(t *testing.T) {
	m, err := Parse(sampleManifest)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantArtifacts := []string{"org.a:lib:1.0", "org.b:lib:2.0"}
	if len(m.Artifacts) != len(wantArtifacts) {
		t.Fatalf("Artifacts = %v, want %v", m.Artifacts, wantArtifacts)
	}
	for i, want := range wantArtifacts {
		if m.Artifacts[i] != want {
			t.Errorf("Artifacts[%d] = %q, want %q", i, m.Artifacts[i], want)
		}
	}

	if len(m.Descriptors) != 1 || m.Descriptors[0] != "https://github.com/org-a/lib/blob/v1.0@/pom.xml" {
		t.Errorf("Descriptors = %v", m.Descriptors)
	}

	if len(m.Pins) != 1 {
		t.Fatalf("Pins = %v, want one entry", m.Pins)
	}
	if m.Pins[0].Coordinate != "org.b:lib" || m.Pins[0].URL != "https://github.com/org-b/lib/blob/v2.0/LICENSE" {
		t.Errorf("Pins[0] = %+v", m.Pins[0])
	}
}

func TestParsePinOrder(t *testing.T) {
	m, err := Parse(`START_MAVEN_ARTIFACTS_LIST
MAVEN_ARTIFACTS = []
ORDERED_POM_OR_GRADLE_FILE_LIST_FOR_LICENSE_CHECK = []
ADDITIONAL_LICENSES = {
    "z.z:last-alphabetically": "https://example.invalid/z",
    "a.a:first-alphabetically": "https://example.invalid/a",
}
END_MAVEN_ARTIFACTS_LIST`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Declaration order, not key order, drives license aggregation.
	if m.Pins[0].Coordinate != "z.z:last-alphabetically" || m.Pins[1].Coordinate != "a.a:first-alphabetically" {
		t.Errorf("Pins = %+v, want declaration order preserved", m.Pins)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"no region", `module(name = "x")`, ErrNoRegion},
		{"start without end", "START_MAVEN_ARTIFACTS_LIST\nMAVEN_ARTIFACTS = []", ErrNoRegion},
		{
			"missing artifacts binding",
			"START_MAVEN_ARTIFACTS_LIST\nORDERED_POM_OR_GRADLE_FILE_LIST_FOR_LICENSE_CHECK = []\nADDITIONAL_LICENSES = {}\nEND_MAVEN_ARTIFACTS_LIST",
			ErrMissingBinding,
		},
		{
			"missing pinned binding",
			"START_MAVEN_ARTIFACTS_LIST\nMAVEN_ARTIFACTS = []\nORDERED_POM_OR_GRADLE_FILE_LIST_FOR_LICENSE_CHECK = []\nEND_MAVEN_ARTIFACTS_LIST",
			ErrMissingBinding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.content); !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseWrongShape(t *testing.T) {
	// A list where a mapping is required is malformed, not coerced.
	_, err := Parse("START_MAVEN_ARTIFACTS_LIST\nMAVEN_ARTIFACTS = []\nORDERED_POM_OR_GRADLE_FILE_LIST_FOR_LICENSE_CHECK = []\nADDITIONAL_LICENSES = []\nEND_MAVEN_ARTIFACTS_LIST")
	if err == nil {
		t.Error("Parse() expected error for list-shaped ADDITIONAL_LICENSES")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MODULE.bazel")
	if err := os.WriteFile(path, []byte(sampleManifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Path != path {
		t.Errorf("Path = %q, want %q", m.Path, path)
	}

	if _, err := Load(filepath.Join(dir, "missing")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
