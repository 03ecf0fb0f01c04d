package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/UmaDevi016/senior-caregiver/config"
	"github.com/UmaDevi016/senior-caregiver/controllers"
	"github.com/UmaDevi016/senior-caregiver/lingo"
	"github.com/UmaDevi016/senior-caregiver/llm"
	"github.com/UmaDevi016/senior-caregiver/logger"
	"github.com/UmaDevi016/senior-caregiver/routes"
	"github.com/UmaDevi016/senior-caregiver/services"
	"github.com/UmaDevi016/senior-caregiver/store"
)

func main() {
	// Initialize Structured Logger
	logger.Init()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg := config.Load()

	// Pick the store: Supabase when configured, in-memory demo otherwise
	var st store.Store
	if cfg.DemoMode() {
		logger.Warn("Supabase credentials missing, running in demo fallback mode")
		st = store.NewMemory()
	} else {
		supa, err := store.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			logger.Error("Failed to connect to Supabase", "error", err)
			return
		}
		st = supa
	}

	// Translation pipeline: simplify first, then lingo.dev, then the LLM
	var simplifier services.Simplifier
	var providers []services.Provider
	var extractor controllers.Extractor

	if cfg.HasLingo() {
		providers = append(providers, lingo.NewClient(cfg.LingoAPIKey, cfg.LingoProjectID))
	}
	if cfg.HasLLM() {
		client := llm.NewClient(cfg.OpenAIKey, cfg.LLMBaseURL, cfg.LLMModel)
		simplifier = client
		providers = append(providers, client)
		extractor = client
	} else {
		logger.Warn("OPENAI_API_KEY missing, simplify and scan run in pass-through mode")
	}

	translator := services.NewTranslator(simplifier, providers...)
	scheduleSvc := services.NewScheduleService(st)

	r := routes.SetupRouter(routes.Controllers{
		Translate:  controllers.NewTranslateController(translator),
		Senior:     controllers.NewSeniorController(st),
		Medication: controllers.NewMedicationController(st),
		Schedule:   controllers.NewScheduleController(scheduleSvc),
		Scan:       controllers.NewScanController(extractor),
	})

	logger.Info("Server starting", "port", cfg.Port, "demo_mode", cfg.DemoMode())
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
