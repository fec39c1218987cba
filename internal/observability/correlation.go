package observability

import (
	"github.com/google/uuid"
)

// GenerateCorrelationID creates a new unique correlation ID for requests that
// arrive without one.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
