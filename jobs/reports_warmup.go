package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/propfolio/propfolio/internal/reports"
)

// ReportsWarmupJob rebuilds the portfolio reports ahead of demand so
// the Redis cache is primed before anyone asks.
type ReportsWarmupJob struct {
	Reports *reports.Service
	Logger  *slog.Logger
	clock   func() time.Time
}

// NewReportsWarmupJob wires dependencies for the warmup handler.
func NewReportsWarmupJob(reportsSvc *reports.Service, logger *slog.Logger) *ReportsWarmupJob {
	return &ReportsWarmupJob{
		Reports: reportsSvc,
		Logger:  logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes reports warmup tasks.
func (j *ReportsWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Reports == nil {
		return errors.New("reports warmup: handler not configured")
	}
	var payload ReportsWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	month := j.now()
	if payload.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", payload.Month, time.UTC)
		if err != nil {
			return asynq.SkipRetry
		}
		month = parsed
	}

	logger := j.logger().With(
		slog.String("month", month.Format("2006-01")),
		slog.String("property_id", payload.PropertyID),
	)
	logger.Info("starting reports warmup")
	started := j.now()

	if _, err := j.Reports.RentRoll(ctx, reports.RentRollFilter{PropertyID: payload.PropertyID, Month: month}); err != nil {
		logger.Error("warm rent roll", slog.Any("error", err))
		return err
	}
	if _, err := j.Reports.OverdueRent(ctx, reports.OverdueFilter{PropertyID: payload.PropertyID}); err != nil {
		logger.Error("warm overdue rent", slog.Any("error", err))
		return err
	}
	if _, err := j.Reports.LeaseExpiry(ctx, reports.LeaseExpiryFilter{PropertyID: payload.PropertyID}); err != nil {
		logger.Error("warm lease expiry", slog.Any("error", err))
		return err
	}
	if _, err := j.Reports.RentCharges(ctx, reports.RentChargesFilter{PropertyID: payload.PropertyID, Month: month}); err != nil {
		logger.Error("warm rent charges", slog.Any("error", err))
		return err
	}

	logger.Info("reports warmup finished", slog.Duration("took", j.now().Sub(started)))
	return nil
}

func (j *ReportsWarmupJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}

func (j *ReportsWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
