package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentRef describes one populated upload slot as received from the form.
type DocumentRef struct {
	Slot        SlotRole `json:"slot"`
	FileName    string   `json:"file_name"`
	ContentType string   `json:"content_type"`
	Size        int64    `json:"size"`
}

// ExtractionResult is the outcome of a single successful extraction attempt.
// The text is the model output verbatim; no local post-processing is applied.
type ExtractionResult struct {
	ID          uuid.UUID        `json:"id"`
	Text        string           `json:"text"`
	Model       string           `json:"model"`
	Provider    string           `json:"provider"`
	Documents   []DocumentRef    `json:"documents"`
	Status      ExtractionStatus `json:"status"`
	CompletedAt time.Time        `json:"completed_at"`
}
