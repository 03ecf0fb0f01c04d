package store

import (
	"sync"

	"github.com/UmaDevi016/senior-caregiver/models"
)

// Memory is the in-process Store used when no Supabase credentials are
// configured. It exists for demos and tests; nothing survives a restart.
type Memory struct {
	mu sync.Mutex

	seniors     map[int]models.Senior
	medications []models.Medication
	logs        []models.ReminderLog

	nextMedID int
	nextLogID int
}

// NewMemory returns a Memory store seeded with the demo senior so the
// client has something to show out of the box.
func NewMemory() *Memory {
	demo := models.DemoSenior()
	return &Memory{
		seniors:   map[int]models.Senior{demo.ID: demo},
		nextMedID: 1,
		nextLogID: 1,
	}
}

func (m *Memory) GetSenior(id int) (*models.Senior, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.seniors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *Memory) UpsertSenior(s models.Senior) (*models.Senior, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seniors[s.ID] = s
	return &s, nil
}

func (m *Memory) ListActiveMedications(seniorID int) ([]models.Medication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meds := []models.Medication{}
	for _, med := range m.medications {
		if med.SeniorID == seniorID && med.IsActive {
			meds = append(meds, med)
		}
	}
	return meds, nil
}

func (m *Memory) CreateMedication(med models.Medication) (*models.Medication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	med.ID = m.nextMedID
	m.nextMedID++
	m.medications = append(m.medications, med)
	return &med, nil
}

func (m *Memory) DeactivateMedication(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.medications {
		if m.medications[i].ID == id {
			m.medications[i].IsActive = false
		}
	}
	// Matching zero rows still succeeds, same as the remote update.
	return nil
}

func (m *Memory) LogsForDate(day string) ([]models.ReminderLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	logs := []models.ReminderLog{}
	for _, l := range m.logs {
		if l.TakenOn == day {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (m *Memory) CountTaken(day string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, l := range m.logs {
		if l.TakenOn == day && l.Status == models.StatusTaken {
			count++
		}
	}
	return count, nil
}

func (m *Memory) UpsertReminderLog(l models.ReminderLog) (*models.ReminderLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.logs {
		if m.logs[i].MedicationID == l.MedicationID && m.logs[i].TakenOn == l.TakenOn {
			l.ID = m.logs[i].ID
			m.logs[i] = l
			return &l, nil
		}
	}
	l.ID = m.nextLogID
	m.nextLogID++
	m.logs = append(m.logs, l)
	return &l, nil
}
