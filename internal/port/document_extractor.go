package port

import (
	"context"

	"tradedocs/internal/domain"
)

// EncodedPart is a file's content as base64 text paired with its MIME type,
// ready for inline transmission to a model API.
type EncodedPart struct {
	Slot     domain.SlotRole
	MIMEType string
	Data     string
}

// ExtractInput carries the assembled request for one extraction attempt.
// Parts are in canonical slot order with empty slots omitted.
type ExtractInput struct {
	Prompt string
	Parts  []EncodedPart
}

// ExtractOutput contains the raw text returned by a model provider.
type ExtractOutput struct {
	Text      string
	ModelUsed string
}

// DocumentExtractor abstracts a hosted generative-model endpoint that accepts
// an instruction plus inline document parts and returns free-form text.
type DocumentExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
