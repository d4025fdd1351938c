package gradio

import (
	"errors"
	"fmt"
)

var (
	// ErrStatus indicates the Gradio app answered with a non-2xx status.
	ErrStatus = errors.New("unexpected gradio status")
	// ErrEmptyResponse indicates a prediction returned no data.
	ErrEmptyResponse = errors.New("gradio returned no data")
	// ErrNotImage indicates a prediction output could not be read as an image.
	ErrNotImage = errors.New("gradio output is not an image")
	// ErrFileTooLarge indicates a file output exceeded the configured cap.
	ErrFileTooLarge = errors.New("gradio file output too large")
)

// StatusError carries the status code and a bounded excerpt of the response body.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrStatus, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}
