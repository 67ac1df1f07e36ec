package models

import (
	"time"

	"gorm.io/gorm"
)

// TopPattern is one day-level aggregate of a recurring weak-pattern type.
// ImpactScore is the signed estimated score contribution (negative for
// weaknesses); Recommendation comes from a static advice table.
type TopPattern struct {
	PatternType    string  `json:"pattern_type"`
	Category       string  `json:"category"`
	Occurrences    int     `json:"occurrences"`
	ImpactScore    float64 `json:"impact_score"`
	Recommendation string  `json:"recommendation"`
}

// Report is the daily digest of all analyses for one user on one calendar
// date. Unique per (user_id, report_date); regenerating for the same set of
// analyses yields the same report aside from GeneratedAt.
type Report struct {
	gorm.Model
	UserID     string    `gorm:"uniqueIndex:idx_reports_user_date;not null" json:"user_id"`
	ReportDate time.Time `gorm:"uniqueIndex:idx_reports_user_date;not null" json:"report_date"`

	RecordingsAnalyzed int     `gorm:"not null" json:"recordings_analyzed"`
	TotalDuration      float64 `gorm:"not null" json:"total_duration"`

	OverallScore             float64 `gorm:"not null" json:"overall_score"`
	PowerDynamicsScore       float64 `gorm:"not null" json:"power_dynamics_score"`
	LinguisticAuthorityScore float64 `gorm:"not null" json:"linguistic_authority_score"`
	VocalCommandScore        float64 `gorm:"not null" json:"vocal_command_score"`
	PersuasionInfluenceScore float64 `gorm:"not null" json:"persuasion_influence_score"`

	TopPatterns            TopPatternList     `gorm:"type:text" json:"top_patterns"`
	CriticalMoments        CriticalMomentList `gorm:"type:text" json:"critical_moments"`
	ImprovementSuggestions StringList         `gorm:"type:text" json:"improvement_suggestions"`

	// Signed deltas versus prior reports; nil when no baseline exists
	ScoreChange24h *float64 `json:"score_change_24h"`
	ScoreChange7d  *float64 `json:"score_change_7d"`

	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`

	// Optional feature payloads keyed by feature name
	Extensions ExtensionMap `gorm:"type:text" json:"extensions,omitempty"`
}

// TableName overrides the table name
func (Report) TableName() string {
	return "reports"
}
