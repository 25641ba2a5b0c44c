package controller

import (
	"context"
	"time"

	"prism/src/config"
	"prism/src/model"
	"prism/src/service/augment"
	"prism/src/service/completeness"
	"prism/src/service/detector"
	"prism/src/service/extractor"
	"prism/src/service/generator"
	"prism/src/service/lexicon"
	"prism/src/service/nfr"
	"prism/src/service/normalizer"
	"prism/src/service/provider"
	"prism/src/service/story"
	"prism/src/util"
)

// Pipeline orchestrates requirement analysis and artifact generation.
// A Pipeline is safe for concurrent use; every stage is read-only after
// construction.
type Pipeline struct {
	extractor    *extractor.Extractor
	detectors    *detector.Runner
	completeness *completeness.Analyzer
	stories      *story.Validator
	nfrs         *nfr.Suggester
	adapter      *augment.Adapter
	generator    *generator.Generator
}

// NewPipeline builds every stage from configuration. capability may be nil,
// in which case augmentation requests come back degraded.
func NewPipeline(cfg *config.Config, capability augment.Capability) *Pipeline {
	lex := lexicon.New(cfg.Analysis.CustomVagueTerms)

	return &Pipeline{
		extractor:    extractor.New(lex),
		detectors:    detector.NewRunner(lex, cfg.Analysis.AmbiguityThreshold),
		completeness: completeness.New(lex),
		stories:      story.New(lex),
		nfrs:         nfr.New(),
		adapter:      augment.NewAdapter(capability, provider.CompletionConfig(cfg.LLM), cfg.LLM.Timeout),
		generator:    generator.New(),
	}
}

// Detectors returns the ambiguity pass runner
func (p *Pipeline) Detectors() *detector.Runner {
	return p.detectors
}

// Analyze runs every stage for one requirement. A ConfigurationError in req
// aborts before any work; empty text still yields a full result with a
// warning.
func (p *Pipeline) Analyze(ctx context.Context, text model.RequirementText, req model.GenerationRequest) (*model.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	util.Debug("Analyzing requirement from %s (%d bytes)", text.Source, len(text.Text))

	result := p.analyze(text)

	if req.Augment {
		result = p.adapter.Augment(ctx, result)
	}

	// a cancelled caller gets no result even if augmentation degraded cleanly
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.generator.GenerateAll(result, req); err != nil {
		return nil, err
	}

	util.Debug("Analysis of %s complete: %d ambiguities, completeness %.0f (took %v)",
		text.Source, len(result.Ambiguities), result.Completeness.Score, time.Since(startTime))
	return result, nil
}

// analyze runs the deterministic stages
func (p *Pipeline) analyze(text model.RequirementText) *model.AnalysisResult {
	doc := normalizer.Normalize(text.Text)

	result := &model.AnalysisResult{Requirement: text}
	if doc.IsEmpty() {
		inputErr := &model.InputError{Source: text.Source, Message: "requirement text is empty"}
		util.Warn("%v", inputErr)
		result.Warnings = append(result.Warnings, inputErr.Error())
	}

	result.Entities = p.extractor.Extract(doc)
	result.Ambiguities = p.detectors.RunAll(doc, result.Entities)
	result.Completeness = p.completeness.Analyze(doc, result.Entities)
	result.StoryValidation = p.stories.Validate(doc)
	result.NfrSuggestions = p.nfrs.Suggest(doc, result.Entities)
	return result
}

// ValidateStory runs only the user story validator
func (p *Pipeline) ValidateStory(text string) model.StoryValidation {
	return p.stories.Validate(normalizer.Normalize(text))
}
