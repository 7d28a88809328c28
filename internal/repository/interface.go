package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// StoreChecker は保存先ファイルの場所と書き込み可否を報告する
type StoreChecker interface {
	Ping(ctx context.Context) error
	Path() string
}

// Outcome tells callers what state the store was in when it was read.
type Outcome int

const (
	// OutcomeIntact means the stored content parsed as a JSON array.
	OutcomeIntact Outcome = iota
	// OutcomeReset means the stored content was unreadable and was treated
	// as an empty array. The next Append discards it.
	OutcomeReset
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIntact:
		return "intact"
	case OutcomeReset:
		return "corrupted-reset"
	default:
		return "unknown"
	}
}

// SubmissionRepository defines the persistence interface for contact-form
// submissions. Implementations return errors wrapping ErrStoreIO on I/O
// failure; parse failures are reported through Outcome instead.
type SubmissionRepository interface {
	// List returns every stored submission in insertion order.
	List(ctx context.Context) ([]model.Submission, Outcome, error)
	// Append adds sub at the end of the stored sequence.
	Append(ctx context.Context, sub model.Submission) (Outcome, error)
}
