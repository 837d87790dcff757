// Package pipeline orchestrates one upload batch end to end: classify each
// file, normalize its rows, aggregate the launch-monitor swings, pair the
// motion-capture frames, and score the session.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"swinglab/internal/aggregate"
	"swinglab/internal/classify"
	"swinglab/internal/config"
	"swinglab/internal/infrastructure"
	"swinglab/internal/kinetic"
	"swinglab/internal/mocap"
	"swinglab/internal/normalize"
	"swinglab/internal/scoring"
	"swinglab/internal/validation"
	"swinglab/pkg/contracts/domain"
)

const tracerName = "swing-pipeline"

// InputFile is one uploaded table, already read off disk or wire. The
// pipeline never touches the filesystem itself; the ingest package reads
// files into RawTables for callers that have paths.
type InputFile struct {
	Name  string
	Table domain.RawTable
}

// Batch is one upload: the files plus whatever caller-supplied context
// exists. Client identifies the submitter for rate limiting; it may be
// empty when no limiter is installed.
type Batch struct {
	Client     string
	Files      []InputFile
	Player     domain.PlayerContext
	Discipline *domain.DisciplineMetrics
}

// FileReport records what happened to one input file.
type FileReport struct {
	Name      string                 `json:"name"`
	Detection domain.DetectionResult `json:"detection"`
	Rows      int                    `json:"rows"`
	Swings    int                    `json:"swings,omitempty"`
	Frames    int                    `json:"frames,omitempty"`
	Dropped   int                    `json:"dropped,omitempty"`
	Warnings  []string               `json:"warnings,omitempty"`
}

// BatchResult is the full outcome of one batch run.
type BatchResult struct {
	BatchID string       `json:"batch_id"`
	Reports []FileReport `json:"reports"`

	Session *domain.SessionStats `json:"session,omitempty"`
	Scores  *domain.RebootScores `json:"scores,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Processor runs batches under a fixed configuration. Safe for concurrent
// use.
type Processor struct {
	cfg       *config.Config
	logger    *slog.Logger
	engine    *scoring.Engine
	projector *kinetic.Projector
	validator *validation.Validator
	limiter   *UploadLimiter
	tracer    trace.Tracer
}

// NewProcessor builds a Processor. The limiter is optional; pass nil to
// accept every batch.
func NewProcessor(cfg *config.Config, logger *slog.Logger, limiter *UploadLimiter) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:       cfg,
		logger:    logger,
		engine:    scoring.NewEngine(cfg.Scoring, logger),
		projector: kinetic.NewProjector(cfg.Kinetic),
		validator: validation.New(logger),
		limiter:   limiter,
		tracer:    otel.Tracer(tracerName),
	}
}

// fileOutcome is the per-file normalization result, held in a
// position-indexed slice so the concatenation order never depends on
// goroutine scheduling.
type fileOutcome struct {
	report FileReport
	swings []domain.SwingRecord
	ik     []domain.KinematicFrame
	me     []domain.EnergyFrame
	brand  domain.Brand
}

// ProcessBatch classifies and normalizes every file concurrently, then runs
// the sequential aggregate-match-score tail. Unknown files are reported and
// excluded; they never fail the batch.
func (p *Processor) ProcessBatch(ctx context.Context, batch Batch) (*BatchResult, error) {
	if p.limiter != nil && batch.Client != "" {
		if err := p.limiter.Allow(batch.Client); err != nil {
			return nil, fmt.Errorf("client %s: %w", batch.Client, err)
		}
	}

	if err := p.validator.Player(batch.Player); err != nil {
		return nil, err
	}
	if batch.Discipline != nil {
		if err := p.validator.Discipline(*batch.Discipline); err != nil {
			return nil, err
		}
	}

	batchID := uuid.NewString()
	ctx = infrastructure.WithTraceID(ctx, batchID)
	ctx, span := p.tracer.Start(ctx, "pipeline.process_batch",
		trace.WithAttributes(
			attribute.String("batch.id", batchID),
			attribute.Int("batch.files", len(batch.Files)),
		))
	defer span.End()

	logger := p.logger.With(slog.String("batch_id", batchID))
	logger.InfoContext(ctx, "processing batch", slog.Int("files", len(batch.Files)))

	outcomes := make([]fileOutcome, len(batch.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Pipeline.MaxConcurrency)
	for i, file := range batch.Files {
		g.Go(func() error {
			outcomes[i] = p.processFile(gctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &BatchResult{BatchID: batchID, Reports: make([]FileReport, len(outcomes))}

	var (
		swings  []domain.SwingRecord
		ik      []domain.KinematicFrame
		me      []domain.EnergyFrame
		dropped int
		brand   = domain.BrandGeneric
		sawLM   bool
	)
	for i, o := range outcomes {
		result.Reports[i] = o.report
		swings = append(swings, o.swings...)
		ik = append(ik, o.ik...)
		me = append(me, o.me...)
		dropped += o.report.Dropped
		if !sawLM && o.report.Detection.SchemaKind == domain.SchemaLaunchMonitor {
			brand, sawLM = o.brand, true
		}
	}

	var session *domain.SessionStats
	if sawLM {
		stats := aggregate.Aggregate(swings, brand, p.cfg.Aggregator)
		stats.DroppedRows = dropped
		session = &stats
	}

	match := mocap.Match(ik, me)
	result.Warnings = append(result.Warnings, match.Warnings...)

	scores := p.engine.Score(scoring.Input{
		Matched:    match.Swings,
		Session:    session,
		Discipline: batch.Discipline,
		Player:     batch.Player,
	})

	if energy := scoring.SummarizeEnergy(match.Swings); energy != nil {
		scores.KineticPotential = p.projector.Project(kinetic.EnergyMetrics{
			AvgBatEnergy:       energy.BatEnergy,
			AvgTotalBodyEnergy: energy.TotalBodyEnergy,
			TransferEfficiency: energy.TransferEfficiency,
			SwingCount:         energy.SwingCount,
		}, batch.Player)
	}

	result.Session = session
	result.Scores = scores

	logger.InfoContext(ctx, "batch complete",
		slog.Int("swings", len(swings)),
		slog.Int("matched_movements", len(match.Swings)),
		slog.Int("dropped_rows", dropped),
		slog.Bool("composite", scores.Composite != nil))

	return result, nil
}

// processFile classifies one file and normalizes it under its detected
// schema. Every failure mode becomes a report warning; a file never errors
// the batch.
func (p *Processor) processFile(ctx context.Context, file InputFile) fileOutcome {
	_, span := p.tracer.Start(ctx, "pipeline.process_file",
		trace.WithAttributes(attribute.String("file.name", file.Name)))
	defer span.End()

	det := classify.Classify(file.Table.Headers, file.Name)
	out := fileOutcome{
		report: FileReport{
			Name:      file.Name,
			Detection: det,
			Rows:      len(file.Table.Rows),
		},
		brand: det.Brand,
	}

	switch det.SchemaKind {
	case domain.SchemaLaunchMonitor:
		res, err := normalize.LaunchMonitor(file.Table, det, p.cfg.Normalizer)
		if err != nil {
			out.report.Warnings = append(out.report.Warnings, err.Error())
			return out
		}
		out.swings = res.Swings
		out.report.Swings = len(res.Swings)
		out.report.Dropped = res.Dropped

	case domain.SchemaKinematics:
		frames, err := normalize.KinematicFrames(file.Table, det)
		if err != nil {
			out.report.Warnings = append(out.report.Warnings, err.Error())
			return out
		}
		out.ik = frames
		out.report.Frames = len(frames)

	case domain.SchemaEnergyTransfer:
		frames, err := normalize.EnergyFrames(file.Table, det)
		if err != nil {
			out.report.Warnings = append(out.report.Warnings, err.Error())
			return out
		}
		out.me = frames
		out.report.Frames = len(frames)

	default:
		out.report.Warnings = append(out.report.Warnings,
			"file did not match any known export schema and was excluded")
	}

	return out
}
