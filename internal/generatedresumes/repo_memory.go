package generatedresumes

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores generated resumes in memory and is safe for concurrent use.
// Expired entries are dropped on read and pruned on every Create.
type MemoryRepo struct {
	mu   sync.Mutex
	byID map[string]GeneratedResume
	now  func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]GeneratedResume),
		now:  time.Now,
	}
}

// Create stores the generated resume.
func (r *MemoryRepo) Create(ctx context.Context, resume GeneratedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if resume.ID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneExpired()
	r.byID[resume.ID] = resume
	return nil
}

// GetByID returns a generated resume by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, generatedResumeID string) (GeneratedResume, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedResume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.byID[generatedResumeID]
	if !ok {
		return GeneratedResume{}, ErrNotFound
	}
	if r.expired(resume, r.now()) {
		delete(r.byID, generatedResumeID)
		return GeneratedResume{}, ErrNotFound
	}
	return resume, nil
}

// pruneExpired must be called with mu held.
func (r *MemoryRepo) pruneExpired() {
	now := r.now()
	for id, resume := range r.byID {
		if r.expired(resume, now) {
			delete(r.byID, id)
		}
	}
}

func (r *MemoryRepo) expired(resume GeneratedResume, now time.Time) bool {
	return !resume.ExpiresAt.IsZero() && !now.Before(resume.ExpiresAt)
}
