package core

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/clientes/internal/logging"
)

// Store persists validated rows. It replaces whatever the destination held
// and returns the number of rows written.
type Store interface {
	Persist(ctx context.Context, rows []Customer) (int64, error)
}

// ImporterOptions configures an Importer.
type ImporterOptions struct {
	// Encoding of the input file. Empty means UTF-8.
	Encoding string

	// OnPhase, if set, is called on every phase transition.
	OnPhase PhaseCallback

	// NewRunID overrides run ID generation. Defaults to a random UUID.
	NewRunID func() string
}

// Importer sequences parse, validate and persist for one file at a time.
// It holds no state between runs.
type Importer struct {
	store Store
	opts  ImporterOptions
}

// NewImporter creates an Importer writing to store.
func NewImporter(store Store, opts ImporterOptions) *Importer {
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}
	return &Importer{store: store, opts: opts}
}

// NoData reports whether err means a run stopped because a stage produced
// no rows, as opposed to a stage failing.
func NoData(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrNoValidRows)
}

// Import runs the pipeline on the file at path.
//
// Phases advance starting -> parsed -> validated -> persisted. Each step
// needs a nil error and at least one row; otherwise the run ends in
// PhaseFailed and the returned error says why. Stages with no rows return
// ErrEmptyInput or ErrNoValidRows (see NoData) and the store is not called.
// On success Report.Persisted is the count written by the store.
func (im *Importer) Import(ctx context.Context, path string) (Report, error) {
	start := time.Now()
	runID := im.opts.NewRunID()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithFields(ctx, "path", path)

	report := Report{RunID: runID, FilePath: path}
	im.advance(&report, PhaseStarting)
	logger.Info("import started")

	fail := func(err error) (Report, error) {
		report.Phase = PhaseFailed
		report.Error = err.Error()
		report.Duration = time.Since(start)
		im.notify(report)

		if NoData(err) {
			logger.Info("import finished without rows", "reason", err, "code", MapError(err).Code)
		} else {
			logger.Error("import failed", "stage", StageOf(err), "error", err, "code", MapError(err).Code)
		}
		return report, err
	}

	rows, err := ParseFile(ctx, path, im.opts.Encoding)
	if err != nil {
		return fail(err)
	}
	report.Parsed = len(rows)
	if len(rows) == 0 {
		return fail(stageErr(StageParse, ErrEmptyInput))
	}
	im.advance(&report, PhaseParsed)

	kept, stats, err := Validate(ctx, rows)
	if err != nil {
		return fail(err)
	}
	report.Dropped = stats.Dropped
	report.Valid = stats.Valid
	report.Invalid = stats.Invalid
	if len(kept) == 0 {
		return fail(stageErr(StageValidate, ErrNoValidRows))
	}
	im.advance(&report, PhaseValidated)

	n, err := im.store.Persist(ctx, kept)
	if err != nil {
		if StageOf(err) == "" {
			err = stageErr(StagePersist, err)
		}
		return fail(err)
	}
	report.Persisted = int(n)
	report.Duration = time.Since(start)
	im.advance(&report, PhasePersisted)

	logger.Info("import complete",
		"rows", report.Persisted,
		"dropped", report.Dropped,
		"duration", report.Duration,
	)
	return report, nil
}

func (im *Importer) advance(report *Report, phase ImportPhase) {
	report.Phase = phase
	im.notify(*report)
}

func (im *Importer) notify(report Report) {
	if im.opts.OnPhase != nil {
		im.opts.OnPhase(report.Phase, report)
	}
}
