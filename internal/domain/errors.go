package domain

import "errors"

var (
	ErrNoDocuments            = errors.New("no documents selected")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrExtractorNotConfigured = errors.New("extractor API key is not configured")
	ErrExtractionInFlight     = errors.New("an extraction is already in flight")
	ErrEmptyModelResponse     = errors.New("model returned an empty response")
	ErrExtractionFailed       = errors.New("extraction failed")
)
