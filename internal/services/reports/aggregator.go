package reports

import (
	"math"
	"sort"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
)

// Options bounds the report payload
type Options struct {
	MaxCriticalMoments int
	MaxSuggestions     int
}

// DefaultOptions returns the standard payload bounds
func DefaultOptions() Options {
	return Options{
		MaxCriticalMoments: 10,
		MaxSuggestions:     3,
	}
}

// Aggregator folds one day's analysis results into a report. Aggregation is
// a pure function: the same result set always yields the same report aside
// from GeneratedAt.
type Aggregator struct {
	opts Options
}

// NewAggregator creates an aggregator with the given payload bounds
func NewAggregator(opts Options) *Aggregator {
	if opts.MaxCriticalMoments <= 0 {
		opts.MaxCriticalMoments = DefaultOptions().MaxCriticalMoments
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultOptions().MaxSuggestions
	}
	return &Aggregator{opts: opts}
}

// Aggregate builds the report for one user-day from its analysis results.
// prevDay and prevWeek are the baseline reports for trend deltas; nil when
// no baseline exists. Fails with ErrNoData on an empty result set.
func (a *Aggregator) Aggregate(userID string, date time.Time, results []models.AnalysisResult, prevDay, prevWeek *models.Report) (*models.Report, error) {
	if len(results) == 0 {
		return nil, ErrNoData
	}

	report := &models.Report{
		UserID:             userID,
		ReportDate:         dateOnly(date),
		RecordingsAnalyzed: len(results),
		GeneratedAt:        time.Now().UTC(),
	}

	// Equal weight per recording regardless of duration
	var overall, power, linguistic, vocal, persuasion, duration float64
	for _, r := range results {
		overall += r.OverallScore
		power += r.PowerDynamicsScore
		linguistic += r.LinguisticAuthorityScore
		vocal += r.VocalCommandScore
		persuasion += r.PersuasionInfluenceScore
		duration += r.DurationSeconds
	}
	n := float64(len(results))
	report.OverallScore = round2(overall / n)
	report.PowerDynamicsScore = round2(power / n)
	report.LinguisticAuthorityScore = round2(linguistic / n)
	report.VocalCommandScore = round2(vocal / n)
	report.PersuasionInfluenceScore = round2(persuasion / n)
	report.TotalDuration = round2(duration)

	report.TopPatterns = a.mergePatterns(results)
	report.CriticalMoments = a.mergeMoments(results)
	report.ImprovementSuggestions = a.buildSuggestions(report.TopPatterns)

	if prevDay != nil {
		delta := round2(report.OverallScore - prevDay.OverallScore)
		report.ScoreChange24h = &delta
	}
	if prevWeek != nil {
		delta := round2(report.OverallScore - prevWeek.OverallScore)
		report.ScoreChange7d = &delta
	}

	return report, nil
}

// mergePatterns sums each pattern family's occurrences across the day and
// ranks descending by total, ties broken by category then pattern type so
// the order is deterministic.
func (a *Aggregator) mergePatterns(results []models.AnalysisResult) models.TopPatternList {
	type tally struct {
		category    string
		occurrences int
	}
	totals := make(map[string]*tally)

	for _, r := range results {
		for family, summary := range r.PatternsDetected {
			if summary.Count == 0 {
				continue
			}
			if existing, ok := totals[family]; ok {
				existing.occurrences += summary.Count
			} else {
				totals[family] = &tally{category: summary.Category, occurrences: summary.Count}
			}
		}
	}

	patterns := make(models.TopPatternList, 0, len(totals))
	for family, t := range totals {
		patterns = append(patterns, models.TopPattern{
			PatternType:    family,
			Category:       t.category,
			Occurrences:    t.occurrences,
			ImpactScore:    round2(impactScore(family, t.occurrences)),
			Recommendation: recommendationFor(family),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Occurrences != patterns[j].Occurrences {
			return patterns[i].Occurrences > patterns[j].Occurrences
		}
		if patterns[i].Category != patterns[j].Category {
			return patterns[i].Category < patterns[j].Category
		}
		return patterns[i].PatternType < patterns[j].PatternType
	})

	return patterns
}

// mergeMoments concatenates every recording's moments, sorts by severity
// high to low then timestamp, and truncates to the payload bound.
func (a *Aggregator) mergeMoments(results []models.AnalysisResult) models.CriticalMomentList {
	var moments models.CriticalMomentList
	for _, r := range results {
		moments = append(moments, r.CriticalMoments...)
	}

	sort.SliceStable(moments, func(i, j int) bool {
		ri, rj := models.SeverityRank(moments[i].Severity), models.SeverityRank(moments[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return moments[i].Timestamp < moments[j].Timestamp
	})

	if len(moments) > a.opts.MaxCriticalMoments {
		moments = moments[:a.opts.MaxCriticalMoments]
	}
	return moments
}

// buildSuggestions derives one suggestion per top pattern, most impactful
// first, bounded to the configured maximum.
func (a *Aggregator) buildSuggestions(patterns models.TopPatternList) models.StringList {
	var suggestions models.StringList
	for _, p := range patterns {
		if len(suggestions) >= a.opts.MaxSuggestions {
			break
		}
		if p.Recommendation == "" {
			continue
		}
		suggestions = append(suggestions, p.Recommendation)
	}
	return suggestions
}

// dateOnly truncates a timestamp to its calendar date in UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
