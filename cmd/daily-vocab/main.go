// Command daily-vocab adds the day's Finnish vocabulary words to the
// Google Sheet. Each run generates new words with the configured AI
// provider, enriches them with a video prompt and a caption, and appends
// them. It is intended to be invoked once a day by an external scheduler.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/daily-vocab/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: CONFIG_PATH, then ./config.yaml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(app.BuildVersion())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		slog.Error("daily-vocab failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
