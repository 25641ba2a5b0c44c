package model

// Severity represents the severity level of an ambiguity finding
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities so that Critical sorts first
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// ParseSeverity maps a loosely formatted severity name; unknown values become low
func ParseSeverity(s string) Severity {
	switch normalizeName(s) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Priority represents the priority of a completeness gap
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// ParsePriority maps a loosely formatted priority name; unknown values become low
func ParsePriority(s string) Priority {
	switch normalizeName(s) {
	case "critical":
		return PriorityCritical
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RequirementText is one piece of requirement text handed to the pipeline
type RequirementText struct {
	Text   string `json:"text"`
	Source string `json:"source"` // file path or "inline"
}

// SourceInline marks text passed directly rather than read from a file
const SourceInline = "inline"

// NewInlineRequirement wraps text given on the command line
func NewInlineRequirement(text string) RequirementText {
	return RequirementText{Text: text, Source: SourceInline}
}

// Entities holds the actors, actions and objects found in a requirement.
// Every list is in first-occurrence order with case-insensitive duplicates removed.
type Entities struct {
	Actors  []string `json:"actors"`
	Actions []string `json:"actions"`
	Objects []string `json:"objects"`
}

// IsEmpty reports whether nothing was extracted
func (e Entities) IsEmpty() bool {
	return len(e.Actors) == 0 && len(e.Actions) == 0 && len(e.Objects) == 0
}

// Ambiguity is a single unclear or unmeasurable phrase
type Ambiguity struct {
	MatchedText string   `json:"matched_text"`
	Reason      string   `json:"reason"`
	Suggestions []string `json:"suggestions"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Position    int      `json:"position"`
	Confidence  float64  `json:"confidence"`
}

// Gap is a missing requirement component
type Gap struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
	Priority    Priority `json:"priority"`
}

// ComponentCheck records whether one completeness component was found
type ComponentCheck struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Weight  int    `json:"weight"`
}

// CompletenessResult is the output of the completeness analyzer
type CompletenessResult struct {
	Score      float64          `json:"score"`
	Components []ComponentCheck `json:"components"`
	Gaps       []Gap            `json:"gaps"`
}

// QualityScore rates one user-story segment
type QualityScore struct {
	Score       float64  `json:"score"`
	IsValid     bool     `json:"is_valid"`
	Issues      []string `json:"issues,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// StoryValidation is the output of the user story validator
type StoryValidation struct {
	IsValidFormat      bool         `json:"is_valid_format"`
	Actor              string       `json:"actor,omitempty"`
	Goal               string       `json:"goal,omitempty"`
	Reason             string       `json:"reason,omitempty"`
	ActorQuality       QualityScore `json:"actor_quality"`
	GoalQuality        QualityScore `json:"goal_quality"`
	ReasonQuality      QualityScore `json:"reason_quality"`
	BusinessValueScore float64      `json:"business_value_score"`
	Recommendations    []string     `json:"recommendations,omitempty"`
}

// Augmentation describes what the optional AI stage did to a result
type Augmentation struct {
	Requested    bool   `json:"requested"`
	Provider     string `json:"provider,omitempty"`
	Degraded     bool   `json:"degraded"`
	Reason       string `json:"reason,omitempty"`
	ImprovedText string `json:"improved_text,omitempty"`
}

// Artifacts holds generated artifact bodies; only requested ones are set
type Artifacts struct {
	UML         string `json:"uml,omitempty"`
	Pseudocode  string `json:"pseudocode,omitempty"`
	Tests       string `json:"tests,omitempty"`
	Improved    string `json:"improved,omitempty"`
	NFRDocument string `json:"nfr_document,omitempty"`
}

// Set stores an artifact body under its kind
func (a *Artifacts) Set(kind ArtifactKind, body string) {
	switch kind {
	case ArtifactUML:
		a.UML = body
	case ArtifactPseudocode:
		a.Pseudocode = body
	case ArtifactTests:
		a.Tests = body
	case ArtifactImprove:
		a.Improved = body
	case ArtifactNFR:
		a.NFRDocument = body
	}
}

// Get returns the artifact body for a kind
func (a Artifacts) Get(kind ArtifactKind) string {
	switch kind {
	case ArtifactUML:
		return a.UML
	case ArtifactPseudocode:
		return a.Pseudocode
	case ArtifactTests:
		return a.Tests
	case ArtifactImprove:
		return a.Improved
	case ArtifactNFR:
		return a.NFRDocument
	}
	return ""
}

// AnalysisResult is the complete analysis of one RequirementText.
// It is the single object handed to generators and renderers.
type AnalysisResult struct {
	Requirement     RequirementText    `json:"requirement"`
	Entities        Entities           `json:"entities"`
	Ambiguities     []Ambiguity        `json:"ambiguities"`
	Completeness    CompletenessResult `json:"completeness"`
	StoryValidation StoryValidation    `json:"story_validation"`
	NfrSuggestions  []NfrSuggestion    `json:"nfr_suggestions"`
	Warnings        []string           `json:"warnings,omitempty"`
	Augmentation    Augmentation       `json:"augmentation"`
	Artifacts       Artifacts          `json:"artifacts"`
}

// Clone returns a deep copy so callers can derive a new result without
// touching the original
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Entities = Entities{
		Actors:  cloneStrings(r.Entities.Actors),
		Actions: cloneStrings(r.Entities.Actions),
		Objects: cloneStrings(r.Entities.Objects),
	}
	if r.Ambiguities != nil {
		out.Ambiguities = make([]Ambiguity, len(r.Ambiguities))
		for i, a := range r.Ambiguities {
			a.Suggestions = cloneStrings(a.Suggestions)
			out.Ambiguities[i] = a
		}
	}
	if r.Completeness.Components != nil {
		out.Completeness.Components = make([]ComponentCheck, len(r.Completeness.Components))
		copy(out.Completeness.Components, r.Completeness.Components)
	}
	if r.Completeness.Gaps != nil {
		out.Completeness.Gaps = make([]Gap, len(r.Completeness.Gaps))
		for i, g := range r.Completeness.Gaps {
			g.Suggestions = cloneStrings(g.Suggestions)
			out.Completeness.Gaps[i] = g
		}
	}
	out.StoryValidation.ActorQuality = cloneQuality(r.StoryValidation.ActorQuality)
	out.StoryValidation.GoalQuality = cloneQuality(r.StoryValidation.GoalQuality)
	out.StoryValidation.ReasonQuality = cloneQuality(r.StoryValidation.ReasonQuality)
	out.StoryValidation.Recommendations = cloneStrings(r.StoryValidation.Recommendations)
	if r.NfrSuggestions != nil {
		out.NfrSuggestions = make([]NfrSuggestion, len(r.NfrSuggestions))
		for i, n := range r.NfrSuggestions {
			n.AcceptanceCriteria = cloneStrings(n.AcceptanceCriteria)
			out.NfrSuggestions[i] = n
		}
	}
	out.Warnings = cloneStrings(r.Warnings)
	return &out
}

func cloneQuality(q QualityScore) QualityScore {
	q.Issues = cloneStrings(q.Issues)
	q.Suggestions = cloneStrings(q.Suggestions)
	return q
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// BatchItem is the outcome for one input of a batch run
type BatchItem struct {
	Source string          `json:"source"`
	Result *AnalysisResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Err    error           `json:"-"`
}

// BatchReport groups the results of a directory run
type BatchReport struct {
	RunID     string      `json:"run_id"`
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}
