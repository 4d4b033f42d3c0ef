// Package history records one entry per csvclean run so that cleanups done
// over time can be audited. Recording is optional and never affects the
// outcome of the run it describes.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/csvclean/internal/core"
)

// Outcome values stored with each run.
const (
	OutcomeCleaned      = "cleaned"
	OutcomeHeaderOnly   = "header_only"
	OutcomeInputMissing = "input_missing"
	OutcomeFailed       = "failed"
)

// Run is a single history entry.
type Run struct {
	ID                uuid.UUID     `json:"id"`
	StartedAt         time.Time     `json:"startedAt"`
	Duration          time.Duration `json:"duration"`
	Input             string        `json:"input"`
	Output            string        `json:"output"`
	Column            string        `json:"column"`
	Deduplicate       bool          `json:"deduplicate"`
	Outcome           string        `json:"outcome"`
	Code              string        `json:"code,omitempty"`
	RowsRead          int           `json:"rowsRead"`
	RowsWritten       int           `json:"rowsWritten"`
	DuplicatesRemoved int           `json:"duplicatesRemoved"`
	Message           string        `json:"message"`
}

// Store persists runs.
type Store interface {
	Record(ctx context.Context, run Run) error
	Close()
}

// ErrInvalidRun is returned by stores for a run without an ID.
var ErrInvalidRun = errors.New("history: run has no id")

// NewRun describes a pipeline run that started at startedAt and ended with
// res and err. message is the status line shown to the user.
func NewRun(
	id uuid.UUID,
	startedAt time.Time,
	opts core.Options,
	res core.Result,
	err error,
	message string,
) Run {
	run := Run{
		ID:                id,
		StartedAt:         startedAt,
		Duration:          time.Since(startedAt),
		Input:             opts.Input,
		Output:            opts.Output,
		Column:            opts.Column,
		Deduplicate:       opts.Deduplicate,
		RowsRead:          res.RowsRead,
		RowsWritten:       res.RowsWritten,
		DuplicatesRemoved: res.DuplicatesRemoved,
		Message:           message,
	}

	switch {
	case err != nil:
		run.Outcome = OutcomeFailed
		run.Code = core.KindOf(err).Code()
	case res.Outcome == core.OutcomeHeaderOnly:
		run.Outcome = OutcomeHeaderOnly
	default:
		run.Outcome = OutcomeCleaned
	}
	return run
}
