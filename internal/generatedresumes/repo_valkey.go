package generatedresumes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

const valkeyKeyPrefix = "generated-resume:"

// ValkeyRepo stores generated resumes in Valkey with a per-entry expiry.
type ValkeyRepo struct {
	client valkey.Client
	now    func() time.Time
}

// NewValkeyClient connects to address and verifies the connection.
func NewValkeyClient(ctx context.Context, address, password string) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{address},
		Password:    password,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create Valkey client: %w", err)
	}

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("unable to ping Valkey: %w", err)
	}
	return client, nil
}

// NewValkeyRepo constructs a ValkeyRepo on an open client.
func NewValkeyRepo(client valkey.Client) *ValkeyRepo {
	return &ValkeyRepo{client: client, now: time.Now}
}

// Create stores the generated resume until its ExpiresAt.
func (r *ValkeyRepo) Create(ctx context.Context, resume GeneratedResume) error {
	if resume.ID == "" {
		return ErrInvalidInput
	}
	payload, err := json.Marshal(resume)
	if err != nil {
		return err
	}

	cmd := r.client.B().Setex().
		Key(valkeyKey(resume.ID)).
		Seconds(ttlSeconds(resume.ExpiresAt, r.now())).
		Value(string(payload)).
		Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("unable to store generated resume (%s): %w", resume.ID, err)
	}
	return nil
}

// GetByID returns a generated resume by ID.
func (r *ValkeyRepo) GetByID(ctx context.Context, generatedResumeID string) (GeneratedResume, error) {
	cmd := r.client.B().Get().Key(valkeyKey(generatedResumeID)).Build()
	raw, err := r.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return GeneratedResume{}, ErrNotFound
		}
		return GeneratedResume{}, fmt.Errorf("unable to load generated resume (%s): %w", generatedResumeID, err)
	}

	var resume GeneratedResume
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		return GeneratedResume{}, fmt.Errorf("decode generated resume (%s): %w", generatedResumeID, err)
	}
	return resume, nil
}

func valkeyKey(id string) string {
	return valkeyKeyPrefix + id
}

// ttlSeconds rounds the remaining lifetime up to whole seconds, never below one.
func ttlSeconds(expiresAt, now time.Time) int64 {
	remaining := expiresAt.Sub(now)
	secs := int64(remaining / time.Second)
	if remaining%time.Second > 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return secs
}
