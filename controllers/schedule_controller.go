package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/UmaDevi016/senior-caregiver/logger"
	"github.com/UmaDevi016/senior-caregiver/models"
	"github.com/UmaDevi016/senior-caregiver/services"
)

type AcknowledgeRequest struct {
	MedicationID int           `json:"medication_id"`
	Status       models.Status `json:"status"`
}

type ScheduleController struct {
	Service *services.ScheduleService
}

func NewScheduleController(svc *services.ScheduleService) *ScheduleController {
	return &ScheduleController{Service: svc}
}

// TodaySchedule returns active medications annotated with today's logs.
// Always 200; failures show up as an empty schedule.
func (c *ScheduleController) TodaySchedule(w http.ResponseWriter, r *http.Request) {
	entries := c.Service.TodaySchedule(seniorIDFromQuery(r))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// Acknowledge records today's taken/missed outcome for a medication.
// Status defaults to taken; anything outside the closed set is rejected.
func (c *ScheduleController) Acknowledge(w http.ResponseWriter, r *http.Request) {
	var req AcknowledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.MedicationID <= 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "medication_id is required"})
		return
	}

	if req.Status != "" && !req.Status.Valid() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "status must be taken or missed"})
		return
	}

	log, err := c.Service.Acknowledge(req.MedicationID, req.Status)
	if err != nil {
		logger.Error("Failed to acknowledge medication", "medication_id", req.MedicationID, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Medication acknowledged", "medication_id", req.MedicationID, "status", log.Status)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(log)
}

// AdherenceSummary reports today's adherence counts. Store failures are
// masked with the all-zero summary; the vacuous 100% applies only when
// the store successfully reports zero active medications.
func (c *ScheduleController) AdherenceSummary(w http.ResponseWriter, r *http.Request) {
	seniorID := seniorIDFromQuery(r)

	summary, err := c.Service.AdherenceSummary(seniorID)
	if err != nil {
		logger.Error("Failed to compute adherence summary", "senior_id", seniorID, "error", err)
		summary = models.AdherenceSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
