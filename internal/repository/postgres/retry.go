package postgres

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

const (
	txRetryAttempts = 3
	txRetryDelay    = 25 * time.Millisecond
)

// SQLSTATE codes for transient transaction aborts.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsRetryable reports whether err is a transient transaction abort that is
// safe to retry. Anything else (constraint violations, domain errors) must
// surface to the caller.
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeSerializationFailure, codeDeadlockDetected:
			return true
		}
	}
	return false
}
