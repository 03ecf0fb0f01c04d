package config

import "os"

// GetEnv returns the value of an environment variable, or the fallback
// when the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Config holds everything the server reads from the environment.
type Config struct {
	Port string

	SupabaseURL string
	SupabaseKey string

	OpenAIKey  string
	LLMBaseURL string
	LLMModel   string

	LingoAPIKey    string
	LingoProjectID string
}

// Load reads the full configuration from the environment. Call after
// godotenv has populated the process env.
func Load() *Config {
	return &Config{
		Port:           GetEnv("PORT", "8080"),
		SupabaseURL:    GetEnv("SUPABASE_URL", ""),
		SupabaseKey:    GetEnv("SUPABASE_ANON_KEY", ""),
		OpenAIKey:      GetEnv("OPENAI_API_KEY", ""),
		LLMBaseURL:     GetEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:       GetEnv("LLM_MODEL", "gpt-4o-mini"),
		LingoAPIKey:    GetEnv("LINGO_API_KEY", ""),
		LingoProjectID: GetEnv("LINGO_PROJECT_ID", ""),
	}
}

// DemoMode reports whether the server runs against the in-memory store
// because no persistence credentials are configured.
func (c *Config) DemoMode() bool {
	return c.SupabaseURL == "" || c.SupabaseKey == ""
}

// HasLLM reports whether a language-model credential is configured.
func (c *Config) HasLLM() bool {
	return c.OpenAIKey != ""
}

// HasLingo reports whether the dedicated translation provider is configured.
func (c *Config) HasLingo() bool {
	return c.LingoAPIKey != "" && c.LingoProjectID != ""
}
