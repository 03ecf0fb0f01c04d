package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/UmaDevi016/senior-caregiver/logger"
	"github.com/UmaDevi016/senior-caregiver/services"
)

type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	TargetLang     string `json:"target_lang"`
	Provider       string `json:"provider"`
	Quality        string `json:"quality,omitempty"`
}

type TranslateController struct {
	Translator *services.Translator
}

func NewTranslateController(t *services.Translator) *TranslateController {
	return &TranslateController{Translator: t}
}

// Translate runs a health message through the simplify-then-translate
// pipeline. Provider failures never reach the caller; only empty input
// is rejected.
func (c *TranslateController) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return
	}

	text := strings.TrimSpace(req.Text)
	target := strings.TrimSpace(req.TargetLang)
	if text == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Text is required."})
		return
	}

	result := c.Translator.Translate(text, target)

	logger.Info("Translation completed", "target_lang", target, "provider", result.Provider)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TranslateResponse{
		TranslatedText: result.Text,
		TargetLang:     target,
		Provider:       result.Provider,
		Quality:        result.Quality,
	})
}
