package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"ats-resume/internal/shared/storage/object"
)

func TestSaveWithKeyAndOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.SaveWithKey(ctx, "generated/eval-1/Jane Doe_generated_resume.pdf", "application/pdf", bytes.NewReader([]byte("%PDF-1.3")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n != 8 {
		t.Fatalf("expected 8 bytes written, got %d", n)
	}

	rc, err := store.Open(ctx, "generated/eval-1/Jane Doe_generated_resume.pdf")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != "%PDF-1.3" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestOpenMissingReturnsNotFound(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "generated/none.pdf")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"../escape.pdf", "/abs/path.pdf", ""} {
		if _, err := store.SaveWithKey(ctx, key, "application/pdf", bytes.NewReader(nil)); err == nil {
			t.Fatalf("expected error saving key %q", key)
		}
		if _, err := store.Open(ctx, key); err == nil {
			t.Fatalf("expected error opening key %q", key)
		}
	}
}
