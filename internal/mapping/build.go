package mapping

import "fmt"

// Build identifies a supported genome build and annotation release.
type Build string

const (
	// BuildHG38 is human GENCODE v43 annotations on GRCh38.
	BuildHG38 Build = "hg38_v43"
	// BuildMM10 is mouse GENCODE vM25 annotations on GRCm38.
	BuildMM10 Build = "mm10_v25"
)

// Builds returns the supported genome builds.
func Builds() []Build {
	return []Build{BuildHG38, BuildMM10}
}

// ParseBuild validates a genome build name.
func ParseBuild(s string) (Build, error) {
	switch Build(s) {
	case BuildHG38, BuildMM10:
		return Build(s), nil
	}
	return "", fmt.Errorf("unknown genome build %q (supported: %s, %s)", s, BuildHG38, BuildMM10)
}
