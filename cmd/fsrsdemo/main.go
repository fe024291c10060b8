// Command fsrsdemo schedules a single card through one review and prints
// the four candidate outcomes the Scheduling Engine produced, one per
// grade. It exists to exercise the engine end to end against real
// configuration and logging, the way a host application would — it does
// not persist anything, since persistence is a collaborator this module
// only specifies through interfaces.
//
// Flags:
//
//	--grade  the grade to additionally highlight in the summary line (1-4, default 3)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/scottlaurent/fsrs/internal/app"
	"github.com/scottlaurent/fsrs/internal/config"
	"github.com/scottlaurent/fsrs/internal/fsrs"
)

func main() {
	gradeFlag := flag.Int("grade", int(fsrs.Good), "grade to highlight in the summary (1=Again, 2=Hard, 3=Good, 4=Easy)")
	flag.Parse()

	grade := fsrs.Rating(*gradeFlag)
	if !grade.IsValid() {
		log.Fatalf("invalid -grade %d: must be 1-4", *gradeFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting fsrsdemo", slog.String("version", app.BuildVersion()))

	params := fsrs.Parameters{
		W:                cfg.SRS.ParsedWeights,
		RequestRetention: cfg.SRS.RequestRetention,
		MaximumInterval:  cfg.SRS.MaximumInterval,
	}
	engine, err := fsrs.NewEngine(params)
	if err != nil {
		logger.Error("build engine", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cardID := fsrs.UUIDGenerator{}.NewID()
	now := time.Now().UTC()
	card := fsrs.NewCard(now)

	logger.Info("scheduling card",
		slog.String("card_id", cardID),
		slog.Time("now", now),
	)

	record, err := engine.Schedule(card, now)
	if err != nil {
		logger.Error("schedule", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, g := range fsrs.Ratings {
		outcome := record[g]
		logger.Info("candidate outcome",
			slog.String("card_id", cardID),
			slog.String("grade", g.String()),
			slog.String("state", outcome.Card.State.String()),
			slog.Int("scheduled_days", outcome.Card.ScheduledDays),
			slog.Time("due", outcome.Card.Due),
			slog.Float64("stability", outcome.Card.Stability),
			slog.Float64("difficulty", outcome.Card.Difficulty),
		)
	}

	chosen := record[grade]
	logger.Info("chosen outcome",
		slog.String("card_id", cardID),
		slog.String("grade", grade.String()),
		slog.Time("due", chosen.Card.Due),
	)
}
