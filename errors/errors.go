package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN      = "unknown"
	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
)

// ApiError describes a failed dotdigital API call. Stage records where in
// the request lifecycle the failure happened, Type what kind of failure it
// was. Message carries the error description from the dotdigital response
// body when one was present.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	Message string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	switch {
	case e.Message != "":
		err = e.Message
	case e.SourceErr != nil:
		err = e.SourceErr.Error()
	default:
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to dotdigital failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Temporary reports whether the failure is worth retrying: transport-level
// errors and the HTTP statuses the service hands out under load. Anything
// else is a service-level rejection and retrying would only repeat it.
func (e *ApiError) Temporary() bool {
	if e.Type == TYPE_IO {
		return true
	}
	if e.Type != TYPE_HTTP_STATUS {
		return false
	}
	switch e.HttpStatusCode {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&ApiError{}), &ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}
