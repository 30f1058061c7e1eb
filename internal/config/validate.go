package config

import (
	"fmt"
	"strings"
)

var knownTiers = map[string]bool{"free": true, "basic": true, "premium": true, "unlimited": true}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if err := c.Entitlement.validate(); err != nil {
		return fmt.Errorf("entitlement: %w", err)
	}

	if c.RateLimit.GeneratePerMinute < 0 {
		return fmt.Errorf("ratelimit.generate_per_minute must be >= 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}
	if c.RateLimit.GeneratePerMinute > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("ratelimit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	switch g.Provider {
	case ProviderAnthropic:
		if g.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", g.Provider)
		}
	case ProviderStub:
	default:
		return fmt.Errorf("unknown provider %q", g.Provider)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	return nil
}

func (e *EntitlementConfig) validate() error {
	if e.FreeLettersLimit < 0 {
		return fmt.Errorf("free_letters_limit must be >= 0 (got %d)", e.FreeLettersLimit)
	}

	tiers, err := ParseTiers(e.UnlimitedTiersRaw)
	if err != nil {
		return fmt.Errorf("unlimited_tiers: %w", err)
	}
	e.UnlimitedTiers = tiers

	return nil
}

// ParseTiers parses a comma-separated list of subscription tiers
// (e.g. "premium,unlimited"). An empty string returns a nil slice.
func ParseTiers(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	tiers := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !knownTiers[p] {
			return nil, fmt.Errorf("unknown tier %q", p)
		}
		tiers = append(tiers, p)
	}

	return tiers, nil
}
