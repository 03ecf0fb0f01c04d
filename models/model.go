package models

import "math"

// Status is the adherence outcome recorded for a medication on a given day.
type Status string

const (
	StatusTaken  Status = "taken"
	StatusMissed Status = "missed"
)

// Valid reports whether s is one of the accepted adherence statuses.
func (s Status) Valid() bool {
	return s == StatusTaken || s == StatusMissed
}

// Senior represents the care recipient whose schedule is tracked.
type Senior struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	EmergencyInfo string `json:"emergency_info"`
}

// DemoSenior is the fixed fallback profile served when the persistence
// store is unreachable or has no row for the requested id.
func DemoSenior() Senior {
	return Senior{
		ID:            1,
		Name:          "Senior User",
		EmergencyInfo: "Call 911 in case of emergency.",
	}
}

// Medication is one scheduled medication belonging to a senior.
// Rows are never hard-deleted; IsActive=false retires them.
type Medication struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Time      string `json:"time"` // HH:mm
	Frequency string `json:"frequency"`
	PillColor string `json:"pill_color"`
	SeniorID  int    `json:"senior_id"`
	IsActive  bool   `json:"is_active"`
}

// ReminderLog is one adherence record per medication per calendar date.
// The (MedicationID, TakenOn) pair is unique; later acknowledgments for
// the same day replace the earlier row.
type ReminderLog struct {
	ID           int    `json:"id,omitempty"`
	MedicationID int    `json:"medication_id"`
	Status       Status `json:"status"`
	TakenOn      string `json:"taken_on"` // server date, YYYY-MM-DD
	TakenAt      string `json:"taken_at"`
}

// ScheduleEntry annotates a medication with today's reminder log, if any.
type ScheduleEntry struct {
	Medication
	Log *ReminderLog `json:"log"`
}

// AdherenceSummary reports today's adherence for one senior.
type AdherenceSummary struct {
	Total      int     `json:"total"`
	Taken      int     `json:"taken"`
	Percentage float64 `json:"percentage"`
}

// NewAdherenceSummary computes the summary for the given counts. A senior
// with zero active medications is fully adherent by definition.
func NewAdherenceSummary(total, taken int) AdherenceSummary {
	pct := 100.0
	if total > 0 {
		pct = math.Round(float64(taken)/float64(total)*1000) / 10
	}
	return AdherenceSummary{Total: total, Taken: taken, Percentage: pct}
}

// ExtractedMedication is the structured result of a prescription scan.
type ExtractedMedication struct {
	Medicine  string `json:"medicine"`
	Dosage    string `json:"dosage"`
	Time      string `json:"time"`
	PillColor string `json:"pill_color"`
}
