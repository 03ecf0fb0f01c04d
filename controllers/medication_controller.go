package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/UmaDevi016/senior-caregiver/logger"
	"github.com/UmaDevi016/senior-caregiver/models"
	"github.com/UmaDevi016/senior-caregiver/store"
)

// seniorIDFromQuery reads the senior_id query param, defaulting to the
// demo senior when absent or malformed.
func seniorIDFromQuery(r *http.Request) int {
	if id, err := strconv.Atoi(r.URL.Query().Get("senior_id")); err == nil && id > 0 {
		return id
	}
	return 1
}

type CreateMedicationRequest struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Time      string `json:"time"`
	Frequency string `json:"frequency"`
	PillColor string `json:"pill_color"`
	SeniorID  int    `json:"senior_id"`
}

type MedicationController struct {
	Store store.Store
}

func NewMedicationController(st store.Store) *MedicationController {
	return &MedicationController{Store: st}
}

// List returns the senior's active medications. Store failures degrade
// to an empty list.
func (c *MedicationController) List(w http.ResponseWriter, r *http.Request) {
	seniorID := seniorIDFromQuery(r)

	meds, err := c.Store.ListActiveMedications(seniorID)
	if err != nil {
		logger.Error("Failed to list medications", "senior_id", seniorID, "error", err)
		meds = []models.Medication{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meds)
}

// Create registers a new medication. Name, dosage and time are required;
// new rows are always active.
func (c *MedicationController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Name == "" || req.Dosage == "" || req.Time == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "name, dosage and time are required"})
		return
	}

	if req.Frequency == "" {
		req.Frequency = "daily"
	}
	if req.PillColor == "" {
		req.PillColor = "white"
	}
	if req.SeniorID == 0 {
		req.SeniorID = 1
	}

	med, err := c.Store.CreateMedication(models.Medication{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Time:      req.Time,
		Frequency: req.Frequency,
		PillColor: req.PillColor,
		SeniorID:  req.SeniorID,
		IsActive:  true,
	})
	if err != nil {
		logger.Error("Failed to create medication", "name", req.Name, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Medication created", "medication_id", med.ID, "senior_id", med.SeniorID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(med)
}

// Delete soft-deletes a medication. Deleting an unknown or already
// inactive id still reports success; historical reminder logs stay.
func (c *MedicationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid medication ID"})
		return
	}

	if err := c.Store.DeactivateMedication(id); err != nil {
		logger.Error("Failed to deactivate medication", "medication_id", id, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Medication deactivated", "medication_id", id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}
