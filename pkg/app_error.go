// Package pkg holds the HTTP-facing error type shared by every handler.
package pkg

import (
	"fmt"
	"net/http"
)

// AppError is a domain failure translated for HTTP clients. Err stays
// server-side; it is never serialized.
type AppError struct {
	Code          string
	Message       string
	Err           error
	HTTPStatus    int
	CorrelationID string
}

// HTTPError is the JSON body written for every failed request.
type HTTPError struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCorrelationID returns a copy tagged with id.
func (e *AppError) WithCorrelationID(id string) *AppError {
	out := *e
	out.CorrelationID = id
	return &out
}

func (e *AppError) IsServerError() bool {
	return e.HTTPStatus >= http.StatusInternalServerError
}

// ToHTTPError renders the client body. Server errors carry only a generic
// message plus the correlation id for support lookups.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:          e.Code,
		Message:       e.Message,
		CorrelationID: e.CorrelationID,
	}
}
