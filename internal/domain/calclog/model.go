// Package calclog records calculation attempts for operational review.
// Logging is best-effort and never affects calculation outcomes.
package calclog

import (
	"time"

	"github.com/google/uuid"
)

// Outcome values stored on a Record.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeUnknownScore    = "unknown_score"
	OutcomeInternalError   = "internal_error"
)

type Record struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ScoreID    string    `db:"score_id" json:"score_id"`
	Outcome    string    `db:"outcome" json:"outcome"`
	StatusCode int       `db:"status_code" json:"status_code"`
	DurationMS int64     `db:"duration_ms" json:"duration_ms"`
	RequestID  string    `db:"request_id" json:"request_id"`
	ClientIP   string    `db:"client_ip" json:"client_ip"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
