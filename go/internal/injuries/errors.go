package injuries

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrValidation marks a report missing a required field. The row is
	// rejected and the run continues.
	ErrValidation = errors.New("invalid injury report")

	// ErrUnknownTeam marks a report referencing a team_id absent from the
	// team registry. The row is rejected and the run continues.
	ErrUnknownTeam = errors.New("unknown team reference")
)

const fkViolation = "23503"

// isRowRejection reports whether err rejects a single row rather than
// signalling store unavailability. Foreign-key violations count: they are
// the database restating ErrUnknownTeam.
func isRowRejection(err error) bool {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrUnknownTeam) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == fkViolation
}
