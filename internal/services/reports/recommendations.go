package reports

import "github.com/speechmastery/coach-api/internal/services/analyzer"

// patternAdvice is the static pattern-to-advice table. Recommendations are
// looked up, never generated, so identical inputs always produce identical
// report text. UnitImpact is the signed estimated score contribution per
// occurrence; negative for weaknesses.
type patternAdvice struct {
	UnitImpact     float64
	MaxImpact      float64
	Recommendation string
}

var adviceTable = map[string]patternAdvice{
	analyzer.FamilyFillerWords: {
		UnitImpact:     -0.5,
		MaxImpact:      20,
		Recommendation: "Replace filler words with deliberate pauses; silence reads as confidence",
	},
	analyzer.FamilyHedging: {
		UnitImpact:     -1.0,
		MaxImpact:      25,
		Recommendation: "State positions directly instead of hedging; commit to your claims",
	},
	analyzer.FamilyUpspeak: {
		UnitImpact:     -1.5,
		MaxImpact:      15,
		Recommendation: "End statements with falling intonation so they land as statements",
	},
	analyzer.FamilyPassiveVoice: {
		UnitImpact:     -1.0,
		MaxImpact:      20,
		Recommendation: "Lead with the actor: active constructions read as ownership",
	},
	analyzer.FamilyJargon: {
		UnitImpact:     -0.8,
		MaxImpact:      15,
		Recommendation: "Swap buzzwords for concrete language your audience already uses",
	},
	analyzer.FamilyPacing: {
		UnitImpact:     -5.0,
		MaxImpact:      20,
		Recommendation: "Aim for a steady conversational pace of roughly 140-160 words per minute",
	},
	analyzer.FamilyPersuasion: {
		UnitImpact:     0.5,
		MaxImpact:      15,
		Recommendation: "Keep using evidence phrases and calls to action; they are working",
	},
}

// impactScore computes the bounded signed contribution for a pattern total
func impactScore(family string, occurrences int) float64 {
	advice, ok := adviceTable[family]
	if !ok {
		return 0
	}
	impact := advice.UnitImpact * float64(occurrences)
	if impact < -advice.MaxImpact {
		impact = -advice.MaxImpact
	}
	if impact > advice.MaxImpact {
		impact = advice.MaxImpact
	}
	return impact
}

// recommendationFor looks up the static advice for a pattern family
func recommendationFor(family string) string {
	return adviceTable[family].Recommendation
}
