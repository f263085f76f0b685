package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/daily-vocab/internal/config"
	"github.com/heartmarshall/daily-vocab/internal/domain"
)

func TestNewLLM(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     config.AIConfig
		wantErr error
	}{
		{"gemini", config.AIConfig{Provider: "gemini", GeminiAPIKey: "k", GeminiModel: "gemini-2.5-flash"}, nil},
		{"anthropic", config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "k", AnthropicModel: "claude-sonnet-4-5"}, nil},
		{"unknown", config.AIConfig{Provider: "openai"}, domain.ErrConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			llm, err := newLLM(context.Background(), tt.cfg, logger)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if llm == nil {
				t.Fatal("expected a provider")
			}
		})
	}
}
