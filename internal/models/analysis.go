package models

import (
	"time"

	"gorm.io/gorm"
)

// Severity tiers for critical moments, ordered low < medium < high
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// SeverityRank returns the ordering rank of a severity tier.
// Unknown severities rank below "low".
func SeverityRank(severity string) int {
	switch severity {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Score category names used across analyses and reports
const (
	CategoryPowerDynamics       = "power_dynamics"
	CategoryLinguisticAuthority = "linguistic_authority"
	CategoryVocalCommand        = "vocal_command"
	CategoryPersuasionInfluence = "persuasion_influence"
)

// CriticalMoment is one flagged instance of a weak speech pattern.
// Moments are embedded in their owning AnalysisResult as JSON and are
// never shared between results.
type CriticalMoment struct {
	Timestamp  float64 `json:"timestamp"`
	Quote      string  `json:"quote"`
	Issue      string  `json:"issue"`
	Category   string  `json:"category"`
	Suggestion string  `json:"suggestion"`
	Severity   string  `json:"severity"`
}

// PatternSummary is the compact per-recording rollup of one pattern family.
// The report aggregator consumes these instead of re-deriving raw metrics.
type PatternSummary struct {
	Count      int     `json:"count"`
	Rate       float64 `json:"rate"`
	ImpactTier string  `json:"impact_tier"`
	Category   string  `json:"category"`
}

// AnalysisResult is the persisted outcome of analyzing one recording.
// Exactly one result exists per recording; results are immutable once
// written.
type AnalysisResult struct {
	gorm.Model
	RecordingID string    `gorm:"uniqueIndex;not null" json:"recording_id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	RecordedAt  time.Time `gorm:"index;not null" json:"recorded_at"`

	// Scores, all in [0,100] with 2 fractional digits
	OverallScore             float64 `gorm:"not null" json:"overall_score"`
	PowerDynamicsScore       float64 `gorm:"not null" json:"power_dynamics_score"`
	LinguisticAuthorityScore float64 `gorm:"not null" json:"linguistic_authority_score"`
	VocalCommandScore        float64 `gorm:"not null" json:"vocal_command_score"`
	PersuasionInfluenceScore float64 `gorm:"not null" json:"persuasion_influence_score"`

	// Transcript facts
	Transcript      string  `gorm:"type:text;not null" json:"transcript"`
	WordCount       int     `gorm:"not null" json:"word_count"`
	DurationSeconds float64 `gorm:"not null" json:"duration_seconds"`

	// Power dynamics facts
	FillerWords          StringCountMap `gorm:"type:text" json:"filler_words"`
	FillerWordsTotal     int            `json:"filler_words_total"`
	FillerWordsPerMinute float64        `json:"filler_words_per_minute"`
	HedgingPhrases       StringCountMap `gorm:"type:text" json:"hedging_phrases"`
	HedgingTotal         int            `json:"hedging_total"`
	UpspeakIndicators    int            `json:"upspeak_indicators"`

	// Linguistic authority facts
	PassiveVoiceCount     int        `json:"passive_voice_count"`
	ActiveVoiceCount      int        `json:"active_voice_count"`
	PassiveVoiceRatio     float64    `json:"passive_voice_ratio"`
	AverageSentenceLength float64    `json:"average_sentence_length"`
	WordDiversityScore    float64    `json:"word_diversity_score"`
	JargonOveruseScore    float64    `json:"jargon_overuse_score"`
	JargonTerms           StringList `gorm:"type:text" json:"jargon_terms"`

	// Vocal command facts
	WordsPerMinute       float64 `json:"words_per_minute"`
	AveragePauseDuration float64 `json:"average_pause_duration"`
	PaceVariance         float64 `json:"pace_variance"`

	// Persuasion facts
	StoryCoherenceScore float64        `json:"story_coherence_score"`
	PersuasionKeywords  StringCountMap `gorm:"type:text" json:"persuasion_keywords"`

	CriticalMoments      CriticalMomentList `gorm:"type:text" json:"critical_moments"`
	CriticalMomentsCount int                `json:"critical_moments_count"`
	PatternsDetected     PatternSummaryMap  `gorm:"type:text" json:"patterns_detected"`

	// Optional feature payloads keyed by feature name
	Extensions ExtensionMap `gorm:"type:text" json:"extensions,omitempty"`
}

// TableName overrides the table name
func (AnalysisResult) TableName() string {
	return "analysis_results"
}
