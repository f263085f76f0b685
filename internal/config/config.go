package config

import "time"

// Config is the root configuration of the daily vocabulary job.
type Config struct {
	AI     AIConfig     `yaml:"ai"`
	Sheets SheetsConfig `yaml:"sheets"`
	Vocab  VocabConfig  `yaml:"vocab"`
	Enrich EnrichConfig `yaml:"enrich"`
	Backup BackupConfig `yaml:"backup"`
	Log    LogConfig    `yaml:"log"`
}

// AIConfig selects and configures the generative-AI provider.
type AIConfig struct {
	Provider        string        `yaml:"provider"          env:"AI_PROVIDER"       env-default:"gemini"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"GEMINI_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"      env:"GEMINI_MODEL"      env-default:"gemini-2.5-flash"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"   env-default:"claude-sonnet-4-5"`
	Timeout         time.Duration `yaml:"timeout"           env:"AI_TIMEOUT"        env-default:"0s"`
}

// SheetsConfig holds the Google Sheets target.
type SheetsConfig struct {
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_SHEETS_CREDENTIALS_FILE" env-default:"credentials.json"`
	SpreadsheetName string `yaml:"spreadsheet_name" env:"SPREADSHEET_NAME"               env-default:"Daily Vocabulary"`
	RowHeight       int    `yaml:"row_height"       env:"SHEET_ROW_HEIGHT"               env-default:"50"`
}

// VocabConfig controls word generation.
type VocabConfig struct {
	Count            int  `yaml:"count"              env:"VOCAB_COUNT"             env-default:"10"`
	MaxAttempts      int  `yaml:"max_attempts"       env:"GENERATION_MAX_ATTEMPTS" env-default:"5"`
	ExcludeHintLimit int  `yaml:"exclude_hint_limit" env:"EXCLUDE_HINT_LIMIT"      env-default:"200"`
	DryRun           bool `yaml:"dry_run"            env:"DRY_RUN"                 env-default:"false"`
}

// EnrichConfig controls video prompt and caption generation.
type EnrichConfig struct {
	FailurePolicy     string `yaml:"failure_policy"      env:"ENRICH_FAILURE_POLICY" env-default:"skip"`
	VideoPromptPolicy string `yaml:"video_prompt_policy" env:"VIDEO_PROMPT_POLICY"   env-default:"retry_truncate"`
}

// BackupConfig holds the path of the pending-upload backup file.
type BackupConfig struct {
	Path string `yaml:"path" env:"BACKUP_FILE" env-default:"backup_vocab.json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
