package model

import (
	"fmt"
	"strings"
)

// ArtifactKind identifies one derived artifact
type ArtifactKind string

const (
	ArtifactUML        ArtifactKind = "uml"
	ArtifactPseudocode ArtifactKind = "pseudo"
	ArtifactTests      ArtifactKind = "tests"
	ArtifactImprove    ArtifactKind = "improve"
	ArtifactNFR        ArtifactKind = "nfr"
)

// AllArtifacts lists every artifact kind in generation order
var AllArtifacts = []ArtifactKind{
	ArtifactUML, ArtifactPseudocode, ArtifactTests, ArtifactImprove, ArtifactNFR,
}

// PseudocodeStyle selects the pseudocode template
type PseudocodeStyle string

const (
	StyleGeneric    PseudocodeStyle = "generic"
	StyleClassBased PseudocodeStyle = "class"
)

// GenerationRequest selects which artifacts to produce and how
type GenerationRequest struct {
	Artifacts       []ArtifactKind  `json:"artifacts"`
	PseudocodeStyle PseudocodeStyle `json:"pseudocode_style,omitempty"`
	Augment         bool            `json:"augment"`
}

// Wants reports whether the request asks for an artifact kind
func (r GenerationRequest) Wants(kind ArtifactKind) bool {
	for _, k := range r.Artifacts {
		if k == kind {
			return true
		}
	}
	return false
}

// Style returns the requested pseudocode style, defaulting to generic
func (r GenerationRequest) Style() PseudocodeStyle {
	if r.PseudocodeStyle == "" {
		return StyleGeneric
	}
	return r.PseudocodeStyle
}

// Validate checks artifact kinds and pseudocode style
func (r GenerationRequest) Validate() error {
	for _, k := range r.Artifacts {
		if !isKnownArtifact(k) {
			return &ConfigurationError{Field: "artifacts", Message: fmt.Sprintf("unknown artifact %q", k)}
		}
	}
	switch r.Style() {
	case StyleGeneric, StyleClassBased:
	default:
		return &ConfigurationError{
			Field:   "pseudocode_style",
			Message: fmt.Sprintf("unsupported pseudocode style %q (supported: generic, class)", r.PseudocodeStyle),
		}
	}
	return nil
}

func isKnownArtifact(k ArtifactKind) bool {
	for _, known := range AllArtifacts {
		if k == known {
			return true
		}
	}
	return false
}

// ParseArtifacts converts names such as "uml" or "all" into kinds, keeping
// generation order and dropping repeats
func ParseArtifacts(names []string) ([]ArtifactKind, error) {
	seen := make(map[ArtifactKind]bool)
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if n == "all" {
			for _, k := range AllArtifacts {
				seen[k] = true
			}
			continue
		}
		if n == "pseudocode" {
			n = string(ArtifactPseudocode)
		}
		k := ArtifactKind(n)
		if !isKnownArtifact(k) {
			return nil, &ConfigurationError{Field: "artifacts", Message: fmt.Sprintf("unknown artifact %q", n)}
		}
		seen[k] = true
	}

	var kinds []ArtifactKind
	for _, k := range AllArtifacts {
		if seen[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// Preset names a fixed artifact selection
type Preset string

const (
	PresetBasic    Preset = "basic"
	PresetStandard Preset = "standard"
	PresetFull     Preset = "full"
	PresetReport   Preset = "report"
)

// PresetArtifacts returns the artifacts a preset generates
func PresetArtifacts(p Preset) ([]ArtifactKind, error) {
	switch p {
	case PresetBasic, "":
		return nil, nil
	case PresetStandard:
		return []ArtifactKind{ArtifactUML, ArtifactPseudocode, ArtifactTests}, nil
	case PresetFull:
		return append([]ArtifactKind(nil), AllArtifacts...), nil
	case PresetReport:
		return []ArtifactKind{ArtifactImprove, ArtifactNFR}, nil
	default:
		return nil, &ConfigurationError{Field: "preset", Message: fmt.Sprintf("unknown preset %q", p)}
	}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "", "-", "", " ", "", "'", "").Replace(s)
	return s
}
