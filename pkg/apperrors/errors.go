package apperrors

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoImage indicates a scan request arrived without image bytes.
	ErrNoImage = errors.New("no image provided")
	// ErrNotRecognized indicates the recognizer found no culturally
	// significant object in the image. Expected negative result, not a failure.
	ErrNotRecognized = errors.New("item not recognized")
	// ErrRecognizerResponse indicates the recognizer replied with text that
	// could not be parsed into the expected shape.
	ErrRecognizerResponse = errors.New("recognizer response invalid")
	// ErrStorage indicates the vocabulary store could not complete an
	// operation. Callers may retry the request.
	ErrStorage = errors.New("storage unavailable")
)
