package generatedresumes

import "context"

// Repo indexes generated resumes until their ExpiresAt.
type Repo interface {
	Create(ctx context.Context, resume GeneratedResume) error
	GetByID(ctx context.Context, generatedResumeID string) (GeneratedResume, error)
}
