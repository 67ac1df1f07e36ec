package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON-mapped column types. Each implements driver.Valuer and sql.Scanner so
// GORM stores the value as a JSON blob in SQLite.

// StringCountMap maps a term or phrase to its occurrence count
type StringCountMap map[string]int

// Value implements driver.Valuer interface for StringCountMap
func (m StringCountMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for StringCountMap
func (m *StringCountMap) Scan(value interface{}) error {
	return scanJSON(value, m, func() { *m = make(StringCountMap) })
}

// Total returns the sum of all counts in the map
func (m StringCountMap) Total() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// StringList is a JSON-encoded list of strings
type StringList []string

// Value implements driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l, func() { *l = nil })
}

// CriticalMomentList is an ordered JSON-encoded list of critical moments
type CriticalMomentList []CriticalMoment

// Value implements driver.Valuer interface for CriticalMomentList
func (l CriticalMomentList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for CriticalMomentList
func (l *CriticalMomentList) Scan(value interface{}) error {
	return scanJSON(value, l, func() { *l = nil })
}

// PatternSummaryMap maps a pattern family to its per-recording summary
type PatternSummaryMap map[string]PatternSummary

// Value implements driver.Valuer interface for PatternSummaryMap
func (m PatternSummaryMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for PatternSummaryMap
func (m *PatternSummaryMap) Scan(value interface{}) error {
	return scanJSON(value, m, func() { *m = make(PatternSummaryMap) })
}

// TopPatternList is an ordered JSON-encoded list of day-level patterns
type TopPatternList []TopPattern

// Value implements driver.Valuer interface for TopPatternList
func (l TopPatternList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for TopPatternList
func (l *TopPatternList) Scan(value interface{}) error {
	return scanJSON(value, l, func() { *l = nil })
}

// Extension is one optional feature's payload attached to a core record
type Extension struct {
	Version string                 `json:"version"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// ExtensionMap carries optional feature payloads keyed by feature name,
// so premium features never require reshaping the core schema.
type ExtensionMap map[string]Extension

// Value implements driver.Valuer interface for ExtensionMap
func (m ExtensionMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for ExtensionMap
func (m *ExtensionMap) Scan(value interface{}) error {
	return scanJSON(value, m, func() { *m = make(ExtensionMap) })
}

// scanJSON decodes a JSON column value into target; reset is called for NULLs
func scanJSON(value interface{}, target interface{}, reset func()) error {
	if value == nil {
		reset()
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, target)
}
