// Package lexicon holds the pattern dictionaries that drive transcript
// analysis: filler words, hedging phrases, jargon terms, and persuasion
// keywords. Lexicons are versioned and loadable from YAML so dictionary
// updates do not require redeploying the scoring logic.
package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PersuasionKeywords groups the persuasion keyword categories
type PersuasionKeywords struct {
	CallToAction       []string `yaml:"call_to_action"`
	PowerWords         []string `yaml:"power_words"`
	EvidenceIndicators []string `yaml:"evidence_indicators"`
}

// Lexicon is one versioned set of pattern dictionaries.
// Weighted entries (filler words, hedging phrases) carry a severity weight
// used when ranking detected patterns; terms are stored lowercase.
type Lexicon struct {
	Version        string             `yaml:"version"`
	FillerWords    map[string]int     `yaml:"filler_words"`
	HedgingPhrases map[string]int     `yaml:"hedging_phrases"`
	JargonTerms    []string           `yaml:"jargon_terms"`
	Persuasion     PersuasionKeywords `yaml:"persuasion"`
}

// Default returns the built-in lexicon used when no file is configured
func Default() *Lexicon {
	return &Lexicon{
		Version: "builtin-1",
		FillerWords: map[string]int{
			"um":        1,
			"uh":        1,
			"like":      1,
			"you know":  2,
			"kind of":   1,
			"sort of":   1,
			"basically": 1,
			"literally": 1,
			"actually":  1,
			"really":    1,
		},
		HedgingPhrases: map[string]int{
			"i think":       2,
			"maybe":         1,
			"possibly":      1,
			"probably":      1,
			"i feel":        2,
			"in my opinion": 2,
			"it seems":      2,
			"kind of":       1,
			"sort of":       1,
			"i guess":       2,
		},
		JargonTerms: []string{
			"synergy", "leverage", "paradigm", "bandwidth", "deliverable",
			"ideate", "circle back", "move the needle", "low-hanging fruit",
			"touch base", "alignment", "stakeholder", "operationalize",
		},
		Persuasion: PersuasionKeywords{
			CallToAction: []string{
				"now", "today", "immediately", "act", "join",
				"discover", "learn", "start", "try", "buy",
			},
			PowerWords: []string{
				"proven", "exclusive", "essential", "breakthrough",
				"revolutionary", "powerful", "ultimate", "guarantee",
			},
			EvidenceIndicators: []string{
				"studies show", "research indicates", "data demonstrates",
				"statistics reveal", "experts agree", "evidence suggests",
			},
		},
	}
}

// LoadFile reads a lexicon from a YAML file
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}

	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}

	lex.normalize()
	return &lex, nil
}

// Validate checks the lexicon is usable
func (l *Lexicon) Validate() error {
	if l.Version == "" {
		return fmt.Errorf("lexicon version is required")
	}
	if len(l.FillerWords) == 0 {
		return fmt.Errorf("lexicon has no filler words")
	}
	if len(l.HedgingPhrases) == 0 {
		return fmt.Errorf("lexicon has no hedging phrases")
	}
	for term, weight := range l.FillerWords {
		if weight <= 0 {
			return fmt.Errorf("filler word %q has non-positive weight %d", term, weight)
		}
	}
	for phrase, weight := range l.HedgingPhrases {
		if weight <= 0 {
			return fmt.Errorf("hedging phrase %q has non-positive weight %d", phrase, weight)
		}
	}
	return nil
}

// normalize lowercases every term so matching can assume lowercase input
func (l *Lexicon) normalize() {
	l.FillerWords = lowerKeys(l.FillerWords)
	l.HedgingPhrases = lowerKeys(l.HedgingPhrases)
	l.JargonTerms = lowerAll(l.JargonTerms)
	l.Persuasion.CallToAction = lowerAll(l.Persuasion.CallToAction)
	l.Persuasion.PowerWords = lowerAll(l.Persuasion.PowerWords)
	l.Persuasion.EvidenceIndicators = lowerAll(l.Persuasion.EvidenceIndicators)
}

func lowerKeys(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
