// Package generator derives design artifacts from an AnalysisResult. Every
// generator is a pure function: the same result always yields the same text.
package generator

import (
	"fmt"
	"strings"

	"prism/src/model"
)

// Fallbacks used when extraction found nothing to build from
const (
	FallbackActor  = "user"
	FallbackAction = "perform the primary operation"
)

// Generator dispatches artifact kinds to their generators
type Generator struct{}

// New creates a generator
func New() *Generator {
	return &Generator{}
}

// Generate renders one artifact
func (g *Generator) Generate(kind model.ArtifactKind, result *model.AnalysisResult, req model.GenerationRequest) (string, error) {
	switch kind {
	case model.ArtifactUML:
		return UML(result.Entities), nil
	case model.ArtifactPseudocode:
		return Pseudocode(result.Entities, req.Style())
	case model.ArtifactTests:
		return TestCases(result.Entities), nil
	case model.ArtifactImprove:
		return Improved(result), nil
	case model.ArtifactNFR:
		return NFRDocument(result.NfrSuggestions), nil
	default:
		return "", &model.ConfigurationError{
			Field:   "artifacts",
			Message: fmt.Sprintf("unknown artifact %q", kind),
		}
	}
}

// GenerateAll fills result.Artifacts with every requested kind
func (g *Generator) GenerateAll(result *model.AnalysisResult, req model.GenerationRequest) error {
	for _, kind := range req.Artifacts {
		body, err := g.Generate(kind, result, req)
		if err != nil {
			return fmt.Errorf("generating %s: %w", kind, err)
		}
		result.Artifacts.Set(kind, body)
	}
	return nil
}

// writer builds line-oriented artifacts
type writer struct {
	sb strings.Builder
}

func (w *writer) line(format string, args ...any) {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	w.sb.WriteString(format)
	w.sb.WriteByte('\n')
}

func (w *writer) blank() {
	w.sb.WriteByte('\n')
}

func (w *writer) String() string {
	return strings.TrimRight(w.sb.String(), "\n") + "\n"
}

func actorsOrFallback(e model.Entities) []string {
	if len(e.Actors) == 0 {
		return []string{FallbackActor}
	}
	return e.Actors
}

func actionsOrFallback(e model.Entities) []string {
	if len(e.Actions) == 0 {
		return []string{FallbackAction}
	}
	return e.Actions
}

func quote(s string) string {
	return strings.ReplaceAll(s, `"`, `'`)
}
