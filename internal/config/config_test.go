package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

// isolate moves the test into an empty working directory (no .env, no
// config.yaml) and clears CONFIG_PATH.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_PATH", "")
	return dir
}

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider:     "gemini",
			GeminiAPIKey: "test-key",
			GeminiModel:  "gemini-2.5-flash",
		},
		Sheets: SheetsConfig{
			CredentialsFile: "credentials.json",
			SpreadsheetName: "Daily Vocabulary",
			RowHeight:       50,
		},
		Vocab: VocabConfig{
			Count:            10,
			MaxAttempts:      1,
			ExcludeHintLimit: 200,
		},
		Enrich: EnrichConfig{
			FailurePolicy:     "skip",
			VideoPromptPolicy: "retry_truncate",
		},
		Backup: BackupConfig{Path: "backup_vocab.json"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

const validYAML = `
ai:
  provider: "gemini"
  gemini_api_key: "yaml-key"
  gemini_model: "gemini-2.5-pro"
  timeout: "45s"

sheets:
  credentials_file: "/secrets/sa.json"
  spreadsheet_name: "Suomen sanat"
  row_height: 60

vocab:
  count: 5
  max_attempts: 3
  exclude_hint_limit: 50

enrich:
  failure_policy: "placeholder"
  video_prompt_policy: "truncate"

backup:
  path: "/tmp/pending.json"

log:
  level: "debug"
  format: "json"
`

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AI.Provider != "gemini" {
		t.Errorf("ai.provider = %q, want gemini", cfg.AI.Provider)
	}
	if cfg.AI.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("ai.gemini_model = %q, want gemini-2.5-flash", cfg.AI.GeminiModel)
	}
	if cfg.Sheets.CredentialsFile != "credentials.json" {
		t.Errorf("sheets.credentials_file = %q, want credentials.json", cfg.Sheets.CredentialsFile)
	}
	if cfg.Sheets.SpreadsheetName != "Daily Vocabulary" {
		t.Errorf("sheets.spreadsheet_name = %q, want Daily Vocabulary", cfg.Sheets.SpreadsheetName)
	}
	if cfg.Sheets.RowHeight != 50 {
		t.Errorf("sheets.row_height = %d, want 50", cfg.Sheets.RowHeight)
	}
	if cfg.Vocab.Count != 10 {
		t.Errorf("vocab.count = %d, want 10", cfg.Vocab.Count)
	}
	if cfg.Vocab.MaxAttempts != 5 {
		t.Errorf("vocab.max_attempts = %d, want 5", cfg.Vocab.MaxAttempts)
	}
	if cfg.Enrich.FailurePolicy != "skip" {
		t.Errorf("enrich.failure_policy = %q, want skip", cfg.Enrich.FailurePolicy)
	}
	if cfg.Enrich.VideoPromptPolicy != "retry_truncate" {
		t.Errorf("enrich.video_prompt_policy = %q, want retry_truncate", cfg.Enrich.VideoPromptPolicy)
	}
	if cfg.Backup.Path != "backup_vocab.json" {
		t.Errorf("backup.path = %q, want backup_vocab.json", cfg.Backup.Path)
	}
	if cfg.AI.Timeout != 0 {
		t.Errorf("ai.timeout = %v, want 0", cfg.AI.Timeout)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := isolate(t)
	unsetEnv(t, "GEMINI_API_KEY")
	path := writeFile(t, dir, "config.yaml", validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AI.GeminiAPIKey != "yaml-key" {
		t.Errorf("ai.gemini_api_key = %q", cfg.AI.GeminiAPIKey)
	}
	if cfg.AI.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("ai.gemini_model = %q", cfg.AI.GeminiModel)
	}
	if cfg.AI.Timeout != 45*time.Second {
		t.Errorf("ai.timeout = %v, want 45s", cfg.AI.Timeout)
	}
	if cfg.Sheets.SpreadsheetName != "Suomen sanat" {
		t.Errorf("sheets.spreadsheet_name = %q", cfg.Sheets.SpreadsheetName)
	}
	if cfg.Sheets.RowHeight != 60 {
		t.Errorf("sheets.row_height = %d, want 60", cfg.Sheets.RowHeight)
	}
	if cfg.Vocab.Count != 5 || cfg.Vocab.MaxAttempts != 3 || cfg.Vocab.ExcludeHintLimit != 50 {
		t.Errorf("vocab = %+v", cfg.Vocab)
	}
	if cfg.Enrich.FailurePolicy != "placeholder" || cfg.Enrich.VideoPromptPolicy != "truncate" {
		t.Errorf("enrich = %+v", cfg.Enrich)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("VOCAB_COUNT", "7")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Vocab.Count != 7 {
		t.Errorf("vocab.count = %d, want 7 (ENV override)", cfg.Vocab.Count)
	}
	if cfg.AI.GeminiAPIKey != "env-key" {
		t.Errorf("ai.gemini_api_key = %q, want env-key (ENV override)", cfg.AI.GeminiAPIKey)
	}
}

func TestLoad_ConfigYAMLInWorkingDir(t *testing.T) {
	dir := isolate(t)
	unsetEnv(t, "GEMINI_API_KEY")
	unsetEnv(t, "SPREADSHEET_NAME")
	writeFile(t, dir, "config.yaml", validYAML)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI.GeminiAPIKey != "yaml-key" {
		t.Errorf("ai.gemini_api_key = %q, want yaml-key", cfg.AI.GeminiAPIKey)
	}
	if cfg.Sheets.SpreadsheetName != "Suomen sanat" {
		t.Errorf("sheets.spreadsheet_name = %q, want Suomen sanat", cfg.Sheets.SpreadsheetName)
	}
}

func TestLoad_EnvPathNotFound(t *testing.T) {
	isolate(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for missing CONFIG_PATH file")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	unsetEnv(t, "GEMINI_API_KEY")
	unsetEnv(t, "SPREADSHEET_NAME")
	writeFile(t, dir, ".env", "GEMINI_API_KEY=dotenv-key\nSPREADSHEET_NAME=From Dotenv\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AI.GeminiAPIKey != "dotenv-key" {
		t.Errorf("ai.gemini_api_key = %q, want dotenv-key", cfg.AI.GeminiAPIKey)
	}
	if cfg.Sheets.SpreadsheetName != "From Dotenv" {
		t.Errorf("sheets.spreadsheet_name = %q, want From Dotenv", cfg.Sheets.SpreadsheetName)
	}
}

func TestLoad_DotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("GEMINI_API_KEY", "process-key")
	writeFile(t, dir, ".env", "GEMINI_API_KEY=dotenv-key\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI.GeminiAPIKey != "process-key" {
		t.Errorf("ai.gemini_api_key = %q, want process-key", cfg.AI.GeminiAPIKey)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	isolate(t)
	unsetEnv(t, "GEMINI_API_KEY")

	_, err := Load("")
	if !errors.Is(err, domain.ErrConfig) {
		t.Fatalf("err = %v, want domain.ErrConfig", err)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)

	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", `{{{invalid yaml`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero count allowed", func(c *Config) { c.Vocab.Count = 0 }, false},
		{"negative count", func(c *Config) { c.Vocab.Count = -1 }, true},
		{"zero attempts", func(c *Config) { c.Vocab.MaxAttempts = 0 }, true},
		{"negative hint limit", func(c *Config) { c.Vocab.ExcludeHintLimit = -5 }, true},
		{"empty gemini key", func(c *Config) { c.AI.GeminiAPIKey = "  " }, true},
		{"unknown provider", func(c *Config) { c.AI.Provider = "openai" }, true},
		{"provider case-insensitive", func(c *Config) { c.AI.Provider = " Gemini " }, false},
		{"anthropic without key", func(c *Config) { c.AI.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) {
			c.AI.Provider = "anthropic"
			c.AI.AnthropicAPIKey = "sk-ant"
			c.AI.AnthropicModel = "claude-sonnet-4-5"
			c.AI.GeminiAPIKey = ""
		}, false},
		{"negative timeout", func(c *Config) { c.AI.Timeout = -time.Second }, true},
		{"empty credentials", func(c *Config) { c.Sheets.CredentialsFile = "" }, true},
		{"empty spreadsheet", func(c *Config) { c.Sheets.SpreadsheetName = "" }, true},
		{"zero row height", func(c *Config) { c.Sheets.RowHeight = 0 }, true},
		{"bad failure policy", func(c *Config) { c.Enrich.FailurePolicy = "drop" }, true},
		{"bad video policy", func(c *Config) { c.Enrich.VideoPromptPolicy = "cut" }, true},
		{"empty backup path", func(c *Config) { c.Backup.Path = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrConfig) {
					t.Fatalf("err = %v, want domain.ErrConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
