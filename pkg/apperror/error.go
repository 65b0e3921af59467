package apperror

import "net/http"

// GenericSubmissionMessage is shown for every failed delivery, whatever the cause
const GenericSubmissionMessage = "There was an error sending your message. Please try again."

type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation carries per-field details back to the client
func Validation(details interface{}, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Please correct the highlighted fields.",
		Details: details,
		Err:     err,
	}
}

func BadGateway(err error) *AppError {
	return New(http.StatusBadGateway, GenericSubmissionMessage, err)
}

func Unavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}
