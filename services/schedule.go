package services

import (
	"fmt"
	"time"

	"github.com/UmaDevi016/senior-caregiver/logger"
	"github.com/UmaDevi016/senior-caregiver/models"
	"github.com/UmaDevi016/senior-caregiver/store"
)

// ScheduleService combines medications and reminder logs into the daily
// schedule view and computes adherence.
type ScheduleService struct {
	store store.Store
	// now is swappable in tests
	now func() time.Time
}

func NewScheduleService(st store.Store) *ScheduleService {
	return &ScheduleService{
		store: st,
		now:   time.Now,
	}
}

func (s *ScheduleService) today() string {
	return s.now().Format("2006-01-02")
}

// TodaySchedule returns the senior's active medications, each annotated
// with today's reminder log when one exists. Store failures degrade to an
// empty schedule rather than an error.
func (s *ScheduleService) TodaySchedule(seniorID int) []models.ScheduleEntry {
	meds, err := s.store.ListActiveMedications(seniorID)
	if err != nil {
		logger.Error("Failed to fetch medications for schedule", "senior_id", seniorID, "error", err)
		return []models.ScheduleEntry{}
	}

	logs, err := s.store.LogsForDate(s.today())
	if err != nil {
		logger.Error("Failed to fetch reminder logs for schedule", "senior_id", seniorID, "error", err)
		return []models.ScheduleEntry{}
	}

	byMedication := make(map[int]models.ReminderLog, len(logs))
	for _, l := range logs {
		byMedication[l.MedicationID] = l
	}

	entries := make([]models.ScheduleEntry, 0, len(meds))
	for _, med := range meds {
		entry := models.ScheduleEntry{Medication: med}
		if l, ok := byMedication[med.ID]; ok {
			log := l
			entry.Log = &log
		}
		entries = append(entries, entry)
	}
	return entries
}

// Acknowledge records that a medication was taken or missed today. The
// date is always the server's current date; acknowledging the same
// medication twice on one day replaces the earlier log.
func (s *ScheduleService) Acknowledge(medicationID int, status models.Status) (*models.ReminderLog, error) {
	if status == "" {
		status = models.StatusTaken
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q: must be taken or missed", status)
	}

	log := models.ReminderLog{
		MedicationID: medicationID,
		Status:       status,
		TakenOn:      s.today(),
		TakenAt:      s.now().Format(time.RFC3339),
	}
	return s.store.UpsertReminderLog(log)
}

// AdherenceSummary reports today's adherence for the senior. A senior
// with zero active medications counts as fully adherent.
func (s *ScheduleService) AdherenceSummary(seniorID int) (models.AdherenceSummary, error) {
	meds, err := s.store.ListActiveMedications(seniorID)
	if err != nil {
		return models.AdherenceSummary{}, err
	}

	taken, err := s.store.CountTaken(s.today())
	if err != nil {
		return models.AdherenceSummary{}, err
	}

	return models.NewAdherenceSummary(len(meds), taken), nil
}
