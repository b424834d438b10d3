package descriptor

import (
	"fmt"
	"strings"
)

// GradleParser reads build.gradle descriptors. Gradle is not parsed as a
// language: the scan looks for lines mentioning groupId or artifactId and
// takes the last whitespace-delimited token as the value. The last
// occurrence of each wins, so publishing blocks later in the script
// override defaults set at the top.
type GradleParser struct{}

func (g *GradleParser) Type() string              { return "gradle" }
func (g *GradleParser) Supports(name string) bool { return strings.HasSuffix(name, ".gradle") }

func (g *GradleParser) Parse(content string) (Coordinate, error) {
	var group, artifact string
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "groupId") {
			if v, ok := lastValue(line); ok {
				group = v
			}
		}
		if strings.Contains(line, "artifactId") {
			if v, ok := lastValue(line); ok {
				artifact = v
			}
		}
	}
	if group == "" || artifact == "" {
		return Coordinate{}, fmt.Errorf("gradle file declares no groupId/artifactId")
	}
	return Coordinate{Group: group, Artifact: artifact}, nil
}

// lastValue returns the last whitespace-delimited token of line with one
// surrounding layer of quotes removed.
func lastValue(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return unquote(fields[len(fields)-1]), true
}

// unquote strips a single matching pair of surrounding quotes, either
// style. Inner quotes are left alone.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
