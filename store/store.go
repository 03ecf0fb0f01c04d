package store

import (
	"errors"

	"github.com/UmaDevi016/senior-caregiver/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Store is the persistence boundary for seniors, medications and reminder
// logs. Two implementations exist: Supabase (remote-backed) and Memory
// (demo fallback); main picks one at startup.
type Store interface {
	GetSenior(id int) (*models.Senior, error)
	UpsertSenior(s models.Senior) (*models.Senior, error)

	// ListActiveMedications returns the senior's medications that have not
	// been soft-deleted. Order is not guaranteed.
	ListActiveMedications(seniorID int) ([]models.Medication, error)
	CreateMedication(m models.Medication) (*models.Medication, error)
	// DeactivateMedication soft-deletes by flipping is_active to false.
	// Deactivating an unknown or already-inactive id is not an error.
	DeactivateMedication(id int) error

	// LogsForDate returns every reminder log recorded for the given
	// calendar date (YYYY-MM-DD), across all medications.
	LogsForDate(day string) ([]models.ReminderLog, error)
	// CountTaken counts logs with status "taken" on the given date.
	CountTaken(day string) (int, error)
	// UpsertReminderLog writes-or-replaces the log row keyed by
	// (medication_id, taken_on) and returns the persisted row.
	UpsertReminderLog(l models.ReminderLog) (*models.ReminderLog, error)
}
