package scoring

import (
	"fmt"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
)

// Issue labels and suggestion templates per pattern family. Suggestions are
// template rewrites, never freeform text.
var momentTemplates = map[string]struct {
	issue      string
	suggestion string
}{
	analyzer.FamilyHedging: {
		issue:      "Hedging language weakens the statement",
		suggestion: "Drop %q and state your position directly",
	},
	analyzer.FamilyFillerWords: {
		issue:      "Frequent filler word",
		suggestion: "Pause silently instead of saying %q",
	},
	analyzer.FamilyJargon: {
		issue:      "Jargon term obscures the point",
		suggestion: "Replace %q with plain language your audience uses",
	},
	analyzer.FamilyUpspeak: {
		issue:      "Rising intonation turns a statement into a question",
		suggestion: "End the sentence with a falling, declarative tone",
	},
	analyzer.FamilyPassiveVoice: {
		issue:      "Passive construction hides the actor",
		suggestion: "Rewrite with the actor first: say who did what",
	},
}

// Filler matches only become moments once the same term repeats enough to
// register as a habit rather than a slip.
const fillerMomentThreshold = 3

// extractMoments turns qualifying matches into critical moments. Matches
// arrive ordered by position, so the moment list is ordered by timestamp
// ascending with ties kept in match order.
func extractMoments(m *analyzer.Metrics) []models.CriticalMoment {
	var moments []models.CriticalMoment

	for _, match := range m.Matches {
		tmpl, ok := momentTemplates[match.Family]
		if !ok {
			continue
		}

		var severity string
		switch match.Family {
		case analyzer.FamilyHedging:
			severity = models.SeverityLow
			if match.Weight >= 2 {
				severity = models.SeverityMedium
			}
		case analyzer.FamilyFillerWords:
			if m.FillerWords[match.Term] < fillerMomentThreshold {
				continue
			}
			severity = models.SeverityLow
			if m.FillerWords[match.Term] >= 2*fillerMomentThreshold {
				severity = models.SeverityMedium
			}
		case analyzer.FamilyJargon:
			severity = models.SeverityLow
		case analyzer.FamilyUpspeak:
			severity = models.SeverityLow
			if m.UpspeakIndicators >= 3 {
				severity = models.SeverityMedium
			}
		case analyzer.FamilyPassiveVoice:
			severity = models.SeverityLow
			if m.PassiveVoiceRatio > 0.5 {
				severity = models.SeverityMedium
			}
		default:
			continue
		}

		suggestion := tmpl.suggestion
		switch match.Family {
		case analyzer.FamilyUpspeak, analyzer.FamilyPassiveVoice:
			// Sentence-level issues do not mention the matched term
		default:
			suggestion = fmt.Sprintf(tmpl.suggestion, match.Term)
		}

		moments = append(moments, models.CriticalMoment{
			Timestamp:  match.Timestamp,
			Quote:      match.Quote,
			Issue:      tmpl.issue,
			Category:   match.Category,
			Suggestion: suggestion,
			Severity:   severity,
		})
	}

	return moments
}
