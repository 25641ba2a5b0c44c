package augment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse reports a reply that holds no usable JSON object
var ErrMalformedResponse = errors.New("malformed response")

// Suggestions is the JSON object a provider replies with
type Suggestions struct {
	Ambiguities []struct {
		Text        string   `json:"text"`
		Reason      string   `json:"reason"`
		Severity    string   `json:"severity"`
		Suggestions []string `json:"suggestions"`
	} `json:"ambiguities"`
	Gaps []struct {
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Priority    string   `json:"priority"`
		Suggestions []string `json:"suggestions"`
	} `json:"gaps"`
	Nfrs []struct {
		Category           string   `json:"category"`
		Requirement        string   `json:"requirement"`
		Rationale          string   `json:"rationale"`
		AcceptanceCriteria []string `json:"acceptance_criteria"`
		Priority           string   `json:"priority"`
	} `json:"nfrs"`
	Entities struct {
		Actors  []string `json:"actors"`
		Actions []string `json:"actions"`
		Objects []string `json:"objects"`
	} `json:"entities"`
	Scores struct {
		Completeness  float64 `json:"completeness"`
		Actor         float64 `json:"actor"`
		Goal          float64 `json:"goal"`
		Reason        float64 `json:"reason"`
		BusinessValue float64 `json:"business_value"`
	} `json:"scores"`
	ImprovedText string `json:"improved_text"`
}

// ParseResponse extracts the JSON object from a reply, which may be wrapped
// in a markdown code fence or surrounded by prose
func ParseResponse(reply string) (*Suggestions, error) {
	body := extractJSON(reply)
	if body == "" {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	var s Suggestions
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &s, nil
}

func extractJSON(reply string) string {
	text := strings.TrimSpace(reply)

	if start := strings.Index(text, "```"); start >= 0 {
		rest := text[start+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			text = strings.TrimSpace(rest[:end])
		}
	}

	begin := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if begin < 0 || end <= begin {
		return ""
	}
	return text[begin : end+1]
}
