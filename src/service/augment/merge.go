package augment

import (
	"strings"

	"prism/src/model"
	"prism/src/service/detector"
	"prism/src/service/nfr"
	"prism/src/service/story"
)

// Findings contributed by a provider carry this category and confidence
const (
	CategoryAI   = "ai"
	AIConfidence = 0.5
)

const maxScore = 100.0

// Merge folds provider suggestions into out. Lists only grow and scores only
// rise; nothing the rule engine found is removed.
func Merge(out *model.AnalysisResult, s *Suggestions) {
	mergeAmbiguities(out, s)
	mergeGaps(out, s)
	mergeNfrs(out, s)

	out.Entities.Actors = unionFold(out.Entities.Actors, s.Entities.Actors)
	out.Entities.Actions = unionFold(out.Entities.Actions, s.Entities.Actions)
	out.Entities.Objects = unionFold(out.Entities.Objects, s.Entities.Objects)

	out.Completeness.Score = raise(out.Completeness.Score, s.Scores.Completeness)

	sv := &out.StoryValidation
	if sv.IsValidFormat {
		raiseQuality(&sv.ActorQuality, s.Scores.Actor)
		raiseQuality(&sv.GoalQuality, s.Scores.Goal)
		raiseQuality(&sv.ReasonQuality, s.Scores.Reason)
		sv.BusinessValueScore = raise(sv.BusinessValueScore, s.Scores.BusinessValue)
	}

	if text := strings.TrimSpace(s.ImprovedText); text != "" {
		out.Augmentation.ImprovedText = text
	}
}

func mergeAmbiguities(out *model.AnalysisResult, s *Suggestions) {
	lower := strings.ToLower(out.Requirement.Text)
	for _, a := range s.Ambiguities {
		text := strings.TrimSpace(a.Text)
		if text == "" || strings.TrimSpace(a.Reason) == "" {
			continue
		}
		pos := strings.Index(lower, strings.ToLower(text))
		if pos < 0 {
			pos = len(out.Requirement.Text)
		}
		out.Ambiguities = append(out.Ambiguities, model.Ambiguity{
			MatchedText: text,
			Reason:      strings.TrimSpace(a.Reason),
			Suggestions: nonEmpty(a.Suggestions),
			Severity:    model.ParseSeverity(a.Severity),
			Category:    CategoryAI,
			Position:    pos,
			Confidence:  AIConfidence,
		})
	}
	// Order keeps the first of each (text, reason) pair, so rule findings win
	out.Ambiguities = detector.Order(out.Ambiguities)
}

func mergeGaps(out *model.AnalysisResult, s *Suggestions) {
	seen := make(map[string]bool, len(out.Completeness.Gaps))
	for _, g := range out.Completeness.Gaps {
		seen[gapKey(g.Category, g.Description)] = true
	}
	for _, g := range s.Gaps {
		desc := strings.TrimSpace(g.Description)
		if desc == "" {
			continue
		}
		key := gapKey(g.Category, desc)
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Completeness.Gaps = append(out.Completeness.Gaps, model.Gap{
			Category:    strings.TrimSpace(g.Category),
			Description: desc,
			Suggestions: nonEmpty(g.Suggestions),
			Priority:    model.ParsePriority(g.Priority),
		})
	}
	if out.Completeness.Gaps == nil {
		out.Completeness.Gaps = []model.Gap{}
	}
}

func gapKey(category, description string) string {
	return strings.ToLower(strings.TrimSpace(category)) + "\x00" + strings.ToLower(description)
}

func mergeNfrs(out *model.AnalysisResult, s *Suggestions) {
	seen := make(map[string]bool, len(out.NfrSuggestions))
	for _, n := range out.NfrSuggestions {
		seen[nfrKey(n.Category, n.Requirement)] = true
	}
	added := false
	for _, n := range s.Nfrs {
		category, ok := model.ParseNfrCategory(n.Category)
		req := strings.TrimSpace(n.Requirement)
		if !ok || req == "" {
			continue
		}
		key := nfrKey(category, req)
		if seen[key] {
			continue
		}
		seen[key] = true
		added = true
		out.NfrSuggestions = append(out.NfrSuggestions, model.NfrSuggestion{
			Category:           category,
			Requirement:        req,
			Rationale:          strings.TrimSpace(n.Rationale),
			AcceptanceCriteria: nonEmpty(n.AcceptanceCriteria),
			Priority:           model.ParseNfrPriority(n.Priority),
		})
	}
	if added {
		nfr.SortByCategory(out.NfrSuggestions)
	}
}

func nfrKey(category model.NfrCategory, requirement string) string {
	return string(category) + "\x00" + strings.ToLower(requirement)
}

// unionFold appends values not already present, compared case-insensitively
func unionFold(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[strings.ToLower(v)] = true
	}
	out := existing
	for _, v := range extra {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func raise(current, proposed float64) float64 {
	if proposed > current {
		current = proposed
	}
	if current > maxScore {
		current = maxScore
	}
	return current
}

func raiseQuality(q *model.QualityScore, proposed float64) {
	q.Score = raise(q.Score, proposed)
	q.IsValid = q.Score >= story.ValidThreshold
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
