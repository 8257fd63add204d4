package templates

import (
	"encoding/json"
	"regexp"
)

const (
	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "package.json"
	// PlaceholderName is the project name in templates manifests.
	PlaceholderName = "create-tpexpress"
)

var manifestNamePattern = regexp.MustCompile(`"name": "` + regexp.QuoteMeta(PlaceholderName) + `"`)

// Substitution replaces the first match of Pattern in files named FileName.
type Substitution struct {
	FileName    string
	Pattern     *regexp.Regexp
	Replacement string
}

// Matches returns true if the substitution applies to the file.
func (s Substitution) Matches(fileName string) bool {
	return fileName == s.FileName
}

// Apply replaces the first match of the pattern with the replacement text.
// The replacement is literal, "$" is not expanded.
func (s Substitution) Apply(content []byte) []byte {
	loc := s.Pattern.FindIndex(content)
	if loc == nil {
		return content
	}

	result := make([]byte, 0, len(content)-(loc[1]-loc[0])+len(s.Replacement))
	result = append(result, content[:loc[0]]...)
	result = append(result, s.Replacement...)
	return append(result, content[loc[1]:]...)
}

// ManifestSubstitution returns a substitution that sets projectName as the
// package name in the manifest.
func ManifestSubstitution(projectName string) Substitution {
	quoted, _ := json.Marshal(projectName)
	return Substitution{
		FileName:    ManifestFileName,
		Pattern:     manifestNamePattern,
		Replacement: `"name": ` + string(quoted),
	}
}
