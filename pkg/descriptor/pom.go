package descriptor

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// POMParser reads Maven pom.xml descriptors. The group comes from the
// parent block and the artifact from the project itself: the poms listed
// for license checking are module poms whose own groupId is inherited.
type POMParser struct{}

func (p *POMParser) Type() string              { return "pom" }
func (p *POMParser) Supports(name string) bool { return strings.HasSuffix(name, ".xml") }

func (p *POMParser) Parse(content string) (Coordinate, error) {
	var pom pomProject
	if err := xml.Unmarshal([]byte(content), &pom); err != nil {
		return Coordinate{}, err
	}
	if pom.Parent.GroupID == "" {
		return Coordinate{}, fmt.Errorf("pom declares no parent groupId")
	}
	if pom.ArtifactID == "" {
		return Coordinate{}, fmt.Errorf("pom declares no artifactId")
	}
	return Coordinate{Group: pom.Parent.GroupID, Artifact: pom.ArtifactID}, nil
}

type pomProject struct {
	ArtifactID string    `xml:"artifactId"`
	Parent     pomParent `xml:"parent"`
}

type pomParent struct {
	GroupID string `xml:"groupId"`
}
