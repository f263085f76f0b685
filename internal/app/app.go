package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/daily-vocab/internal/adapter/backupfile"
	"github.com/heartmarshall/daily-vocab/internal/adapter/gsheets"
	"github.com/heartmarshall/daily-vocab/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/daily-vocab/internal/adapter/provider/gemini"
	"github.com/heartmarshall/daily-vocab/internal/app/dailyvocab"
	"github.com/heartmarshall/daily-vocab/internal/config"
	"github.com/heartmarshall/daily-vocab/internal/domain"
	"github.com/heartmarshall/daily-vocab/internal/provider"
	"github.com/heartmarshall/daily-vocab/internal/service/enricher"
	"github.com/heartmarshall/daily-vocab/internal/service/generator"
	"github.com/heartmarshall/daily-vocab/internal/service/sheetwriter"
	"github.com/heartmarshall/daily-vocab/internal/service/wordstore"
)

// Run is the application entry point. It loads configuration from
// configPath (empty means CONFIG_PATH, then ./config.yaml), initializes
// the logger, connects the AI provider and the spreadsheet, and runs one
// daily job.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting daily vocabulary run",
		slog.String("version", BuildVersion()),
		slog.String("provider", cfg.AI.Provider),
		slog.String("spreadsheet", cfg.Sheets.SpreadsheetName),
		slog.Int("count", cfg.Vocab.Count),
		slog.Bool("dry_run", cfg.Vocab.DryRun),
	)

	llm, err := newLLM(ctx, cfg.AI, logger)
	if err != nil {
		return err
	}

	client, err := gsheets.Connect(ctx, cfg.Sheets.CredentialsFile, logger)
	if err != nil {
		return err
	}
	sheet, err := client.Open(ctx, cfg.Sheets.SpreadsheetName)
	if err != nil {
		return err
	}

	deps := dailyvocab.Deps{
		Words: wordstore.NewService(logger, sheet),
		Generator: generator.NewService(logger, llm, generator.Options{
			MaxAttempts:      cfg.Vocab.MaxAttempts,
			ExcludeHintLimit: cfg.Vocab.ExcludeHintLimit,
		}),
		Enricher: enricher.NewService(logger, llm, enricher.Options{
			VideoPromptPolicy: domain.VideoPromptPolicy(cfg.Enrich.VideoPromptPolicy),
			FailurePolicy:     domain.EnrichFailurePolicy(cfg.Enrich.FailurePolicy),
		}),
		Writer: sheetwriter.NewService(logger, sheet, cfg.Sheets.RowHeight),
		Backup: backupfile.NewStore(cfg.Backup.Path),
	}

	report, err := dailyvocab.Run(ctx, dailyvocab.Options{
		Count:  cfg.Vocab.Count,
		DryRun: cfg.Vocab.DryRun,
	}, deps, logger)
	if err != nil {
		logger.Error("daily vocabulary run failed",
			slog.String("error", err.Error()),
			slog.Any("report", report),
		)
		return err
	}

	logger.Info("daily vocabulary run completed", slog.Any("report", report))
	return nil
}

// newLLM builds the provider named in cfg, bounded by cfg.Timeout per call.
func newLLM(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (provider.LLM, error) {
	var (
		llm provider.LLM
		err error
	)
	switch domain.AIProvider(cfg.Provider) {
	case domain.AIProviderGemini:
		llm, err = gemini.NewProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	case domain.AIProviderAnthropic:
		llm = anthropic.NewProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger)
	default:
		return nil, fmt.Errorf("app: %w: unknown AI provider %q", domain.ErrConfig, cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("app: create %s provider: %w", cfg.Provider, err)
	}
	return provider.WithTimeout(llm, cfg.Timeout), nil
}
