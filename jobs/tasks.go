// Package jobs contains background task types and the Asynq worker
// runtime that executes them.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportsWarmup pre-builds the portfolio reports so the first
	// morning request hits a warm cache.
	TaskReportsWarmup = "reports:warmup"
)

// ReportsWarmupPayload narrows a warmup run. An empty month means the
// current month.
type ReportsWarmupPayload struct {
	Month      string `json:"month,omitempty"`
	PropertyID string `json:"propertyId,omitempty"`
}

// NewReportsWarmupTask constructs an Asynq task.
func NewReportsWarmupTask(payload ReportsWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportsWarmup, data), nil
}
