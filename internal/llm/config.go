// Package llm provides the model configuration and client abstraction the
// AI parsing and template paths share.
package llm

// ModelTier represents the capability level requested for a call
type ModelTier string

const (
	// TierLite is for cheap structured tasks: template fill-in, short rewrites
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction: resume parsing
	TierStandard ModelTier = "standard"
	// TierAdvanced is reserved for multi-step reasoning tasks
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM backend
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only backend
const ProviderGemini Provider = "gemini"

// Config maps model tiers to concrete model names for one provider
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard and
// then lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return next
}
