package response

import (
	"time"

	"renova_contracts/pkg"
)

// Envelope is the uniform response wrapper. Every endpoint returns one, with
// either Data or Error/Errors populated.
type Envelope struct {
	Success   bool           `json:"success"`
	Data      any            `json:"data,omitempty"`
	Error     *pkg.HTTPError `json:"error,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	RequestID string         `json:"requestId"`
}

func Success(requestID string, data any) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

func Failure(requestID string, appErr *pkg.AppError) Envelope {
	httpErr := appErr.ToHTTPError()
	return Envelope{
		Success:   false,
		Error:     &httpErr,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// ValidationFailure lists every individual validation message, matching the
// shape integrators already consume for generation pre-check failures.
func ValidationFailure(requestID string, messages []string) Envelope {
	return Envelope{
		Success:   false,
		Errors:    messages,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}
