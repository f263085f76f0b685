package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Every returned error wraps domain.ErrConfig.
func (c *Config) Validate() error {
	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("%w: ai: %w", domain.ErrConfig, err)
	}
	if err := c.Sheets.validate(); err != nil {
		return fmt.Errorf("%w: sheets: %w", domain.ErrConfig, err)
	}
	if err := c.Vocab.validate(); err != nil {
		return fmt.Errorf("%w: vocab: %w", domain.ErrConfig, err)
	}
	if err := c.Enrich.validate(); err != nil {
		return fmt.Errorf("%w: enrich: %w", domain.ErrConfig, err)
	}
	if strings.TrimSpace(c.Backup.Path) == "" {
		return fmt.Errorf("%w: backup: path must not be empty (BACKUP_FILE)", domain.ErrConfig)
	}
	return nil
}

func (a *AIConfig) validate() error {
	a.Provider = strings.ToLower(strings.TrimSpace(a.Provider))
	switch domain.AIProvider(a.Provider) {
	case domain.AIProviderGemini:
		if strings.TrimSpace(a.GeminiAPIKey) == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
		if strings.TrimSpace(a.GeminiModel) == "" {
			return fmt.Errorf("GEMINI_MODEL must not be empty")
		}
	case domain.AIProviderAnthropic:
		if strings.TrimSpace(a.AnthropicAPIKey) == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when AI_PROVIDER=anthropic")
		}
		if strings.TrimSpace(a.AnthropicModel) == "" {
			return fmt.Errorf("ANTHROPIC_MODEL must not be empty")
		}
	default:
		return fmt.Errorf("unknown provider %q (want gemini or anthropic)", a.Provider)
	}
	if a.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", a.Timeout)
	}
	return nil
}

func (s *SheetsConfig) validate() error {
	if strings.TrimSpace(s.CredentialsFile) == "" {
		return fmt.Errorf("credentials_file must not be empty")
	}
	if strings.TrimSpace(s.SpreadsheetName) == "" {
		return fmt.Errorf("spreadsheet_name must not be empty")
	}
	if s.RowHeight <= 0 {
		return fmt.Errorf("row_height must be > 0 (got %d)", s.RowHeight)
	}
	return nil
}

func (v *VocabConfig) validate() error {
	if v.Count < 0 {
		return fmt.Errorf("count must be >= 0 (got %d)", v.Count)
	}
	if v.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", v.MaxAttempts)
	}
	if v.ExcludeHintLimit < 0 {
		return fmt.Errorf("exclude_hint_limit must be >= 0 (got %d)", v.ExcludeHintLimit)
	}
	return nil
}

func (e *EnrichConfig) validate() error {
	if !domain.EnrichFailurePolicy(e.FailurePolicy).IsValid() {
		return fmt.Errorf("failure_policy %q is not one of skip, placeholder", e.FailurePolicy)
	}
	if !domain.VideoPromptPolicy(e.VideoPromptPolicy).IsValid() {
		return fmt.Errorf("video_prompt_policy %q is not one of retry_truncate, truncate, reject", e.VideoPromptPolicy)
	}
	return nil
}
