package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tradedocs/internal/config"
	"tradedocs/internal/domain"
	"tradedocs/internal/extractor"
	"tradedocs/internal/port"
)

// SlotDocument is one populated upload slot as received from the form.
type SlotDocument struct {
	Slot   domain.SlotRole
	File   multipart.File
	Header *multipart.FileHeader
}

// ExtractionInput is the DTO for a single extraction attempt. Documents must
// be in canonical slot order; the handler collects them that way.
type ExtractionInput struct {
	Documents []SlotDocument
}

// ExtractionService defines the extraction orchestration contract.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractionInput) (*domain.ExtractionResult, error)
}

type extractionService struct {
	extractor port.DocumentExtractor
	cfg       *config.ExtractorConfig
	maxBytes  int64

	// inFlight enforces the single-extraction-at-a-time contract. The UI
	// disables the trigger while busy; this is the server-side backstop.
	inFlight sync.Mutex
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(ext port.DocumentExtractor, extractorCfg *config.ExtractorConfig, uploadCfg *config.UploadConfig) ExtractionService {
	return &extractionService{
		extractor: ext,
		cfg:       extractorCfg,
		maxBytes:  uploadCfg.MaxFileSizeMB * 1024 * 1024,
	}
}

func (s *extractionService) Extract(ctx context.Context, input ExtractionInput) (*domain.ExtractionResult, error) {
	if len(input.Documents) == 0 {
		return nil, domain.ErrNoDocuments
	}

	// A missing credential is a configuration error, detected before any
	// encoding or network I/O.
	if s.cfg.APIKey == "" {
		return nil, domain.ErrExtractorNotConfigured
	}

	if !s.inFlight.TryLock() {
		return nil, domain.ErrExtractionInFlight
	}
	defer s.inFlight.Unlock()

	attemptID := uuid.New()
	labels := make([]string, len(input.Documents))
	for i, doc := range input.Documents {
		labels[i] = doc.Slot.Label()
	}
	log.Printf("extractionService.Extract: attempt %s %s (%s)",
		attemptID, domain.ExtractionStatusEncoding, strings.Join(labels, ", "))

	parts, refs, err := s.encodeDocuments(input.Documents)
	if err != nil {
		log.Printf("extractionService.Extract: attempt %s %s: %v", attemptID, domain.ExtractionStatusFailed, err)
		return nil, err
	}

	prompt := extractor.BuildTradeDocumentPrompt(s.cfg.Fields, s.cfg.Sentinel)

	log.Printf("extractionService.Extract: attempt %s %s (provider=%s)",
		attemptID, domain.ExtractionStatusAwaiting, s.cfg.Provider)

	out, err := s.extractor.Extract(ctx, port.ExtractInput{Prompt: prompt, Parts: parts})
	if err != nil {
		log.Printf("extractionService.Extract: attempt %s %s: %v", attemptID, domain.ExtractionStatusFailed, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	// An empty successful response is treated as an error.
	if strings.TrimSpace(out.Text) == "" {
		log.Printf("extractionService.Extract: attempt %s %s: empty model response", attemptID, domain.ExtractionStatusFailed)
		return nil, domain.ErrEmptyModelResponse
	}

	log.Printf("extractionService.Extract: attempt %s %s (model=%s, %d chars)",
		attemptID, domain.ExtractionStatusSucceeded, out.ModelUsed, len(out.Text))

	return &domain.ExtractionResult{
		ID:          attemptID,
		Text:        out.Text,
		Model:       out.ModelUsed,
		Provider:    s.cfg.Provider,
		Documents:   refs,
		Status:      domain.ExtractionStatusSucceeded,
		CompletedAt: time.Now().UTC(),
	}, nil
}

// encodeDocuments base64-encodes each slot concurrently. Encoding order does
// not matter; results land in slot order because each goroutine writes to its
// own index.
func (s *extractionService) encodeDocuments(docs []SlotDocument) ([]port.EncodedPart, []domain.DocumentRef, error) {
	parts := make([]port.EncodedPart, len(docs))
	refs := make([]domain.DocumentRef, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			parts[i], refs[i], errs[i] = s.encodeDocument(docs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return parts, refs, nil
}

func (s *extractionService) encodeDocument(doc SlotDocument) (port.EncodedPart, domain.DocumentRef, error) {
	var part port.EncodedPart
	var ref domain.DocumentRef

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(doc.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return part, ref, fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedFileType, doc.Header.Filename, ext)
	}

	if s.maxBytes > 0 && doc.Header.Size > s.maxBytes {
		return part, ref, fmt.Errorf("%w: %s (%d bytes)", domain.ErrFileTooLarge, doc.Header.Filename, doc.Header.Size)
	}

	data, err := io.ReadAll(doc.File)
	if err != nil {
		return part, ref, fmt.Errorf("reading %s file: %w", doc.Slot, err)
	}

	// The model API needs a concrete MIME type per part; detect it from
	// content rather than trusting the browser-supplied header.
	detected := http.DetectContentType(data)
	if _, ok := domain.AllowedContentTypes[detected]; !ok {
		return part, ref, fmt.Errorf("%w: %s detected as %s", domain.ErrUnsupportedFileType, doc.Header.Filename, detected)
	}

	part = port.EncodedPart{
		Slot:     doc.Slot,
		MIMEType: detected,
		Data:     base64.StdEncoding.EncodeToString(data),
	}
	ref = domain.DocumentRef{
		Slot:        doc.Slot,
		FileName:    doc.Header.Filename,
		ContentType: detected,
		Size:        doc.Header.Size,
	}
	return part, ref, nil
}
