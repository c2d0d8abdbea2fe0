package grade

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// errors
	ErrAssignmentNotFound = errors.New("teaching assignment not found")
	ErrSheetNotFound      = errors.New("grade sheet not found")
	ErrStudentNotFound    = errors.New("student not found in grade sheet")
)

// FallbackSaveMessage is reported when the school API rejects a save without telling why.
const FallbackSaveMessage = "failed to save grade"

// BackendError is returned when the school API could not be reached or refused a request.
// Status is 0 for transport errors.
type BackendError struct {
	Status  int
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status == 0 {
		return fmt.Sprintf("school api: %s", msg)
	}
	return fmt.Sprintf("school api: %d %s", e.Status, msg)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Detail is the message to show the user, falling back to `fallback` if the server gave none.
func (e *BackendError) Detail(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// HTTPStatus is the status to answer our own caller with.
// Client errors are passed through; everything else becomes a 502.
func (e *BackendError) HTTPStatus() int {
	if e.Status >= http.StatusBadRequest && e.Status < http.StatusInternalServerError {
		return e.Status
	}
	return http.StatusBadGateway
}
