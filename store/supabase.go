package store

import (
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/UmaDevi016/senior-caregiver/models"
)

const (
	seniorsTable      = "seniors"
	medicationsTable  = "medications"
	reminderLogsTable = "reminder_logs"

	// reminder_logs carries a unique constraint on this pair; acknowledging
	// twice on the same date replaces the row instead of duplicating it.
	reminderConflictKey = "medication_id,taken_on"
)

// Supabase is the remote-backed Store. All tables live in a managed
// Supabase project reached over its REST API; the process itself holds
// no database connection.
type Supabase struct {
	client *supabase.Client
}

// NewSupabase connects to the Supabase project at url with the given
// anon key.
func NewSupabase(url, key string) (*Supabase, error) {
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &Supabase{client: client}, nil
}

func (s *Supabase) GetSenior(id int) (*models.Senior, error) {
	var rows []models.Senior
	_, err := s.client.From(seniorsTable).
		Select("*", "exact", false).
		Eq("id", strconv.Itoa(id)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch senior: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *Supabase) UpsertSenior(senior models.Senior) (*models.Senior, error) {
	var rows []models.Senior
	_, err := s.client.From(seniorsTable).
		Insert(senior, true, "id", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert senior: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *Supabase) ListActiveMedications(seniorID int) ([]models.Medication, error) {
	var meds []models.Medication
	_, err := s.client.From(medicationsTable).
		Select("*", "exact", false).
		Eq("senior_id", strconv.Itoa(seniorID)).
		Eq("is_active", "true").
		Order("time", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&meds)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return meds, nil
}

func (s *Supabase) CreateMedication(m models.Medication) (*models.Medication, error) {
	var rows []models.Medication
	_, err := s.client.From(medicationsTable).
		Insert(m, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *Supabase) DeactivateMedication(id int) error {
	_, _, err := s.client.From(medicationsTable).
		Update(map[string]interface{}{"is_active": false}, "", "").
		Eq("id", strconv.Itoa(id)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to deactivate medication: %w", err)
	}
	return nil
}

func (s *Supabase) LogsForDate(day string) ([]models.ReminderLog, error) {
	var logs []models.ReminderLog
	_, err := s.client.From(reminderLogsTable).
		Select("*", "exact", false).
		Eq("taken_on", day).
		ExecuteTo(&logs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminder logs: %w", err)
	}
	return logs, nil
}

func (s *Supabase) CountTaken(day string) (int, error) {
	var logs []models.ReminderLog
	_, err := s.client.From(reminderLogsTable).
		Select("id", "exact", false).
		Eq("taken_on", day).
		Eq("status", string(models.StatusTaken)).
		ExecuteTo(&logs)
	if err != nil {
		return 0, fmt.Errorf("failed to count taken logs: %w", err)
	}
	return len(logs), nil
}

func (s *Supabase) UpsertReminderLog(l models.ReminderLog) (*models.ReminderLog, error) {
	var rows []models.ReminderLog
	_, err := s.client.From(reminderLogsTable).
		Insert(l, true, reminderConflictKey, "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert reminder log: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
