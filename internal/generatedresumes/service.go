package generatedresumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"ats-resume/internal/shared/storage/object"
	"ats-resume/internal/shared/telemetry"
)

const defaultTTL = time.Hour

// Service stores generated PDFs and serves them back by ID.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	TTL   time.Duration

	now func() time.Time
}

// NewService constructs a Service. A non-positive ttl falls back to one hour.
func NewService(repo Repo, store object.ObjectStore, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{Repo: repo, Store: store, TTL: ttl, now: time.Now}
}

// Save writes the PDF under a key scoped to the evaluation and indexes it.
func (s *Service) Save(ctx context.Context, evaluationID, fileName string, data []byte, pageCount int) (GeneratedResume, error) {
	if evaluationID == "" || fileName == "" || len(data) == 0 {
		return GeneratedResume{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Store == nil {
		return GeneratedResume{}, errors.New("missing dependencies")
	}

	storageKey := StorageKey(evaluationID, fileName)
	size, err := s.Store.SaveWithKey(ctx, storageKey, MimeTypePDF, bytes.NewReader(data))
	if err != nil {
		return GeneratedResume{}, fmt.Errorf("store generated resume: %w", err)
	}

	createdAt := s.now().UTC()
	resume := GeneratedResume{
		ID:           uuid.NewString(),
		EvaluationID: evaluationID,
		FileName:     fileName,
		StorageKey:   storageKey,
		MimeType:     MimeTypePDF,
		SizeBytes:    size,
		PageCount:    pageCount,
		CreatedAt:    createdAt,
		ExpiresAt:    createdAt.Add(s.TTL),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return GeneratedResume{}, err
	}

	telemetry.Info("generated_resume.saved", map[string]any{
		"generated_resume_id": resume.ID,
		"evaluation_id":       evaluationID,
		"storage_key":         storageKey,
		"size_bytes":          size,
		"pages":               pageCount,
	})
	return resume, nil
}

// Get returns a generated resume by ID.
func (s *Service) Get(ctx context.Context, generatedResumeID string) (GeneratedResume, error) {
	if generatedResumeID == "" {
		return GeneratedResume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, generatedResumeID)
}

// Open returns the generated resume and a reader over its PDF bytes.
// A blob missing from the store is reported as ErrNotFound.
func (s *Service) Open(ctx context.Context, generatedResumeID string) (GeneratedResume, io.ReadCloser, error) {
	resume, err := s.Get(ctx, generatedResumeID)
	if err != nil {
		return GeneratedResume{}, nil, err
	}
	reader, err := s.Store.Open(ctx, resume.StorageKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return GeneratedResume{}, nil, ErrNotFound
		}
		return GeneratedResume{}, nil, err
	}
	return resume, reader, nil
}
