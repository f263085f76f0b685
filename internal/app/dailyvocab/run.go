// Package dailyvocab runs one daily vocabulary job: resume a pending upload
// or fetch known words, generate new ones, enrich them and append them to the sheet.
package dailyvocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-vocab/internal/domain"
	"github.com/heartmarshall/daily-vocab/internal/service/enricher"
	"github.com/heartmarshall/daily-vocab/internal/service/generator"
	"github.com/heartmarshall/daily-vocab/internal/service/sheetwriter"
	"github.com/heartmarshall/daily-vocab/pkg/ctxutil"
)

// WordStore returns the words already in the sheet.
type WordStore interface {
	FetchExistingWords(ctx context.Context) (*domain.WordSet, error)
}

// Generator produces new word drafts.
type Generator interface {
	Generate(ctx context.Context, count int, known *domain.WordSet) (generator.Result, error)
}

// Enricher adds the video prompt and caption to a draft.
type Enricher interface {
	Enrich(ctx context.Context, d domain.Draft) (enricher.Enrichment, error)
	Complete(ctx context.Context, d domain.Draft, e enricher.Enrichment, date time.Time) (domain.Record, bool)
}

// Writer appends records to the sheet and formats the data rows.
type Writer interface {
	AppendRecords(ctx context.Context, records []domain.Record) (sheetwriter.AppendResult, error)
	ApplyRowFormat(ctx context.Context) error
}

// Backup holds records between generation and a successful upload.
type Backup interface {
	Save(records []domain.Record) error
	Load() ([]domain.Record, error)
	Remove() error
}

// Deps are the components a run is built from.
type Deps struct {
	Words     WordStore
	Generator Generator
	Enricher  Enricher
	Writer    Writer
	Backup    Backup
}

// Options control a single run.
type Options struct {
	Count  int
	DryRun bool
	// Now stamps Date Added; defaults to time.Now.
	Now func() time.Time
}

// Report summarizes a run.
type Report struct {
	RunID          uuid.UUID
	Resumed        bool
	DryRun         bool
	Existing       int
	Requested      int
	Generated      int
	Duplicates     int
	ParseFailures  int
	FailedAttempts int
	EnrichFailures int
	Placeholders   int
	Skipped        int
	Invalid        int
	Written        int
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", r.RunID.String()),
		slog.Bool("resumed", r.Resumed),
		slog.Bool("dry_run", r.DryRun),
		slog.Int("existing", r.Existing),
		slog.Int("requested", r.Requested),
		slog.Int("generated", r.Generated),
		slog.Int("duplicates", r.Duplicates),
		slog.Int("parse_failures", r.ParseFailures),
		slog.Int("failed_attempts", r.FailedAttempts),
		slog.Int("enrich_failures", r.EnrichFailures),
		slog.Int("placeholders", r.Placeholders),
		slog.Int("skipped", r.Skipped),
		slog.Int("invalid", r.Invalid),
		slog.Int("written", r.Written),
	)
}

// Run executes one job. Every log line of the run carries its run ID.
//
// A non-empty backup left by a failed upload is appended first, minus the
// words the sheet already holds, and the run ends there. Otherwise new
// words are generated and enriched one by one, saved to the backup,
// appended, and the backup is removed. A failed append keeps the backup
// for the next run. A dry run never writes to the sheet or the backup.
func Run(ctx context.Context, opts Options, deps Deps, log *slog.Logger) (Report, error) {
	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	log = log.With("component", "dailyvocab")
	if opts.Now == nil {
		opts.Now = time.Now
	}

	rep := Report{RunID: runID, DryRun: opts.DryRun, Requested: opts.Count}

	resumed, err := resume(ctx, opts, deps, log, &rep)
	if err != nil || resumed {
		return rep, err
	}

	known, err := deps.Words.FetchExistingWords(ctx)
	if err != nil {
		return rep, fmt.Errorf("dailyvocab: fetch existing words: %w", err)
	}
	rep.Existing = known.Len()

	gen, err := deps.Generator.Generate(ctx, opts.Count, known)
	rep.Generated = len(gen.Drafts)
	rep.Duplicates = len(gen.Duplicates)
	rep.ParseFailures = gen.ParseFailures
	rep.FailedAttempts = gen.FailedAttempts
	if err != nil {
		return rep, fmt.Errorf("dailyvocab: generate: %w", err)
	}
	if len(gen.Drafts) == 0 {
		log.InfoContext(ctx, "no new words to write")
		return rep, nil
	}

	records, err := enrichAll(ctx, opts, deps, log, gen.Drafts, &rep)
	if err != nil {
		return rep, err
	}
	if len(records) == 0 {
		log.WarnContext(ctx, "every generated word was skipped")
		return rep, nil
	}

	if opts.DryRun {
		for _, r := range records {
			log.InfoContext(ctx, "dry run record",
				slog.String("word", r.FinnishWord),
				slog.String("translation", r.EnglishTranslation),
				slog.String("level", r.Level.String()),
				slog.Int("video_prompt_len", len([]rune(r.VideoPrompt))),
			)
		}
		return rep, nil
	}

	if err := deps.Backup.Save(records); err != nil {
		return rep, fmt.Errorf("dailyvocab: save backup: %w", err)
	}
	log.InfoContext(ctx, "backup saved", slog.Int("records", len(records)))

	return rep, upload(ctx, deps, log, records, &rep)
}

// resume uploads a backup left by a previous run. It reports whether the
// run is finished.
func resume(ctx context.Context, opts Options, deps Deps, log *slog.Logger, rep *Report) (bool, error) {
	pending, err := deps.Backup.Load()
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	case errors.Is(err, domain.ErrParse):
		log.WarnContext(ctx, "ignoring unreadable backup", slog.String("error", err.Error()))
		return false, nil
	case err != nil:
		return false, fmt.Errorf("dailyvocab: load backup: %w", err)
	}

	if len(pending) == 0 {
		if !opts.DryRun {
			if err := deps.Backup.Remove(); err != nil {
				return false, fmt.Errorf("dailyvocab: remove empty backup: %w", err)
			}
		}
		return false, nil
	}

	if opts.DryRun {
		log.InfoContext(ctx, "backup pending, not uploaded in dry run", slog.Int("records", len(pending)))
		return false, nil
	}

	log.InfoContext(ctx, "resuming upload from backup", slog.Int("records", len(pending)))
	rep.Resumed = true

	known, err := deps.Words.FetchExistingWords(ctx)
	if err != nil {
		return true, fmt.Errorf("dailyvocab: fetch existing words: %w", err)
	}
	rep.Existing = known.Len()

	records := dropKnown(ctx, log, pending, known, rep)
	if len(records) == 0 {
		log.InfoContext(ctx, "every backed up word is already in the sheet")
		if err := deps.Backup.Remove(); err != nil {
			return true, fmt.Errorf("dailyvocab: remove backup: %w", err)
		}
		return true, nil
	}
	return true, upload(ctx, deps, log, records, rep)
}

// dropKnown removes records whose word is in known or repeats an earlier
// record. A previous append may have been stored even though it reported
// an error.
func dropKnown(ctx context.Context, log *slog.Logger, records []domain.Record, known *domain.WordSet, rep *Report) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if err := known.Reserve(r.FinnishWord); errors.Is(err, domain.ErrDuplicate) {
			rep.Duplicates++
			log.WarnContext(ctx, "dropping backed up duplicate", slog.String("error", err.Error()))
			continue
		}
		out = append(out, r)
	}
	return out
}

// enrichAll enriches drafts in order. Only a done context aborts the loop.
func enrichAll(ctx context.Context, opts Options, deps Deps, log *slog.Logger, drafts []domain.Draft, rep *Report) ([]domain.Record, error) {
	date := opts.Now()
	records := make([]domain.Record, 0, len(drafts))

	for i, d := range drafts {
		log.InfoContext(ctx, "enriching word",
			slog.String("word", d.FinnishWord),
			slog.Int("index", i+1),
			slog.Int("total", len(drafts)),
		)

		e, err := deps.Enricher.Enrich(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("dailyvocab: enrich: %w", err)
		}
		rep.EnrichFailures += e.Failures()

		rec, ok := deps.Enricher.Complete(ctx, d, e, date)
		if !ok {
			rep.Skipped++
			continue
		}
		if !e.Complete() {
			rep.Placeholders += e.Failures()
		}
		records = append(records, rec)
	}
	return records, nil
}

// upload appends records and removes the backup. Row formatting runs last
// and its failure is only logged: the rows are already stored.
func upload(ctx context.Context, deps Deps, log *slog.Logger, records []domain.Record, rep *Report) error {
	res, err := deps.Writer.AppendRecords(ctx, records)
	rep.Written += res.Written
	rep.Invalid += res.Invalid
	if err != nil {
		return fmt.Errorf("dailyvocab: upload failed, backup kept for the next run: %w", err)
	}

	if err := deps.Backup.Remove(); err != nil {
		return fmt.Errorf("dailyvocab: remove backup after upload: %w", err)
	}

	if err := deps.Writer.ApplyRowFormat(ctx); err != nil {
		log.WarnContext(ctx, "row format not applied", slog.String("error", err.Error()))
	}
	return nil
}
