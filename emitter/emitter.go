package emitter

import (
	"fmt"

	"techbook-scraper/models"
)

// Emitter writes the aggregated records to their final destination
type Emitter interface {
	Emit(books []models.Book) error
}

// EmitError describes a failed submission to the POST endpoint
type EmitError struct {
	Endpoint   string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *EmitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("post %s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("post %s: %v", e.Endpoint, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }
