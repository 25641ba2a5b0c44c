package model

// NfrCategory is one of the eight fixed quality-attribute categories
type NfrCategory string

const (
	NfrSecurity        NfrCategory = "Security"
	NfrPerformance     NfrCategory = "Performance"
	NfrUsability       NfrCategory = "Usability"
	NfrReliability     NfrCategory = "Reliability"
	NfrScalability     NfrCategory = "Scalability"
	NfrMaintainability NfrCategory = "Maintainability"
	NfrCompatibility   NfrCategory = "Compatibility"
	NfrAccessibility   NfrCategory = "Accessibility"
)

// NfrCategories lists every category in reporting order
var NfrCategories = []NfrCategory{
	NfrSecurity, NfrPerformance, NfrUsability, NfrReliability,
	NfrScalability, NfrMaintainability, NfrCompatibility, NfrAccessibility,
}

// ParseNfrCategory matches a category name case-insensitively
func ParseNfrCategory(s string) (NfrCategory, bool) {
	name := normalizeName(s)
	for _, c := range NfrCategories {
		if normalizeName(string(c)) == name {
			return c, true
		}
	}
	return "", false
}

// NfrPriority is a MoSCoW priority
type NfrPriority string

const (
	MustHave   NfrPriority = "MustHave"
	ShouldHave NfrPriority = "ShouldHave"
	CouldHave  NfrPriority = "CouldHave"
	WontHave   NfrPriority = "WontHave"
)

// ParseNfrPriority maps a MoSCoW name; unknown values become ShouldHave
func ParseNfrPriority(s string) NfrPriority {
	switch normalizeName(s) {
	case "musthave", "must":
		return MustHave
	case "couldhave", "could":
		return CouldHave
	case "wonthave", "wont":
		return WontHave
	default:
		return ShouldHave
	}
}

// NfrSuggestion is a candidate non-functional requirement
type NfrSuggestion struct {
	Category           NfrCategory `json:"category"`
	Requirement        string      `json:"requirement"`
	Rationale          string      `json:"rationale,omitempty"`
	AcceptanceCriteria []string    `json:"acceptance_criteria,omitempty"`
	Priority           NfrPriority `json:"priority"`
}
