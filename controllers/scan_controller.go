package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/UmaDevi016/senior-caregiver/logger"
	"github.com/UmaDevi016/senior-caregiver/models"
)

// Extractor pulls a structured medication record out of a prescription
// image.
type Extractor interface {
	ExtractPrescription(image []byte) (*models.ExtractedMedication, error)
}

type ScanResponse struct {
	Status        string                      `json:"status"`
	ExtractedData *models.ExtractedMedication `json:"extracted_data,omitempty"`
	Message       string                      `json:"message,omitempty"`
}

type ScanController struct {
	// Extractor is nil when no language-model credential is configured;
	// scans then return the canned demo extraction.
	Extractor Extractor
}

func NewScanController(e Extractor) *ScanController {
	return &ScanController{Extractor: e}
}

// Scan accepts an uploaded prescription image and returns the extracted
// medication record. Extraction failures come back as a structured error
// result, not a protocol failure.
func (c *ScanController) Scan(w http.ResponseWriter, r *http.Request) {
	logger.Info("Received prescription scan request")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to parse form"})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Error retrieving file"})
		return
	}
	defer file.Close()

	if c.Extractor == nil {
		// Demo stub when no language-model credential is configured.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ScanResponse{
			Status: "success",
			ExtractedData: &models.ExtractedMedication{
				Medicine:  "Sample Med",
				Dosage:    "1 pill",
				Time:      "10:00",
				PillColor: "blue",
			},
		})
		return
	}

	contents, err := io.ReadAll(file)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to read file"})
		return
	}

	extracted, err := c.Extractor.ExtractPrescription(contents)
	if err != nil {
		logger.Error("Prescription extraction failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ScanResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	logger.Info("Prescription extracted", "medicine", extracted.Medicine)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScanResponse{
		Status:        "success",
		ExtractedData: extracted,
	})
}
