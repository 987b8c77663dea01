package generators

import "errors"

// ErrRetryable marks failures worth repeating unchanged, such as rate limits.
var ErrRetryable = errors.New("retryable")

type OpenAIError struct {
	Err     error
	Request ChatCompletionRequest
}

var _ error = OpenAIError{}

func (o OpenAIError) Error() string {
	return o.Err.Error()
}

func (o OpenAIError) Unwrap() error {
	return o.Err
}

type ErrorResponse struct {
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code           any    `json:"code,omitempty"`
	Message        string `json:"message,omitempty"`
	Type           string `json:"type,omitempty"`
	HTTPStatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}
