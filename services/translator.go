package services

import (
	"github.com/UmaDevi016/senior-caregiver/logger"
)

// Simplifier rewrites a health message into senior-friendly wording.
type Simplifier interface {
	Simplify(text string) (string, error)
}

// Provider translates text into a target language. Providers are tried
// in order; the first usable result wins.
type Provider interface {
	Name() string
	Translate(text, target string) (string, error)
}

// ProviderNone tags results that passed through every provider untouched.
const ProviderNone = "none"

// TranslationResult is the outcome of the pipeline: the final text and
// the identity of the provider that produced it.
type TranslationResult struct {
	Text     string
	Provider string
	Quality  string
}

// Translator runs the two-stage simplify-then-translate pipeline.
// Simplification is always attempted first; translation providers are an
// ordered fallback chain. Every provider failure is masked, never
// surfaced to the caller.
type Translator struct {
	simplifier Simplifier
	providers  []Provider
}

// NewTranslator builds the pipeline. simplifier may be nil (no LLM
// credential); providers may be empty.
func NewTranslator(simplifier Simplifier, providers ...Provider) *Translator {
	return &Translator{simplifier: simplifier, providers: providers}
}

// Translate simplifies the message and renders it in the target
// language. When no provider succeeds, the (possibly simplified) text is
// returned tagged with "none".
func (t *Translator) Translate(text, target string) TranslationResult {
	simplified := text
	if t.simplifier != nil {
		if out, err := t.simplifier.Simplify(text); err == nil && out != "" {
			simplified = out
		} else if err != nil {
			logger.Warn("Simplification failed, passing text through", "error", err)
		}
	}

	for _, p := range t.providers {
		out, err := p.Translate(simplified, target)
		if err != nil || out == "" {
			logger.Warn("Translation provider failed, trying next", "provider", p.Name(), "error", err)
			continue
		}
		return TranslationResult{
			Text:     out,
			Provider: p.Name(),
			Quality:  "senior-simplified",
		}
	}

	return TranslationResult{
		Text:     simplified,
		Provider: ProviderNone,
	}
}
