package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"ats-resume/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "generated/id/file.pdf", want: "generated/id/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "generated/id/file.pdf", want: "root/generated/id/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "generated/id/file.pdf", want: "root/generated/id/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/generated/id/file.pdf", want: "root/generated/id/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "generated/id/file.pdf", want: "root/sub/generated/id/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeS3 struct {
	objects map[string][]byte
	lastPut *s3.PutObjectInput
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Key)] = body
	f.lastPut = params
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func TestSaveWithKeyUsesPrefixAndEncryption(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := newWithClient(fake, "bucket", "/resumes/", "")

	n, err := store.SaveWithKey(context.Background(), "generated/e1/out.pdf", "application/pdf", bytes.NewReader([]byte("pdf-bytes")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n != int64(len("pdf-bytes")) {
		t.Fatalf("unexpected size: %d", n)
	}
	if _, ok := fake.objects["resumes/generated/e1/out.pdf"]; !ok {
		t.Fatalf("object not stored under prefixed key: %v", fake.objects)
	}
	if fake.lastPut.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("unexpected sse: %s", fake.lastPut.ServerSideEncryption)
	}
	if aws.ToString(fake.lastPut.ContentType) != "application/pdf" {
		t.Fatalf("unexpected content type: %s", aws.ToString(fake.lastPut.ContentType))
	}

	rc, err := store.Open(context.Background(), "generated/e1/out.pdf")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "pdf-bytes" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestSaveWithKeyKMS(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := newWithClient(fake, "bucket", "", "kms-key")

	if _, err := store.SaveWithKey(context.Background(), "k.pdf", "application/pdf", bytes.NewReader(nil)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if fake.lastPut.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms {
		t.Fatalf("unexpected sse: %s", fake.lastPut.ServerSideEncryption)
	}
	if aws.ToString(fake.lastPut.SSEKMSKeyId) != "kms-key" {
		t.Fatalf("unexpected kms key: %s", aws.ToString(fake.lastPut.SSEKMSKeyId))
	}
}

func TestOpenMissingMapsToNotFound(t *testing.T) {
	store := newWithClient(&fakeS3{objects: map[string][]byte{}}, "bucket", "", "")
	_, err := store.Open(context.Background(), "missing.pdf")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveWithKeySendsInMemoryBodyWithLength(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := newWithClient(fake, "bucket", "", "")

	body := bytes.NewReader([]byte("%PDF-1.3 generated"))
	n, err := store.SaveWithKey(context.Background(), "generated/e1/out.pdf", "application/pdf", body)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n != int64(len("%PDF-1.3 generated")) {
		t.Fatalf("unexpected size: %d", n)
	}
	if fake.lastPut.Body != io.Reader(body) {
		t.Fatalf("expected the seekable body to be passed through, got %T", fake.lastPut.Body)
	}
	if aws.ToInt64(fake.lastPut.ContentLength) != n {
		t.Fatalf("unexpected content length: %v", fake.lastPut.ContentLength)
	}
}

func TestSaveWithKeyStreamsUnsizedBody(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := newWithClient(fake, "bucket", "", "")

	body := io.MultiReader(bytes.NewReader([]byte("part1-")), bytes.NewReader([]byte("part2")))
	n, err := store.SaveWithKey(context.Background(), "k.pdf", "application/pdf", body)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n != int64(len("part1-part2")) {
		t.Fatalf("unexpected size: %d", n)
	}
	if fake.lastPut.ContentLength != nil {
		t.Fatalf("expected no content length for a stream, got %d", aws.ToInt64(fake.lastPut.ContentLength))
	}
	if string(fake.objects["k.pdf"]) != "part1-part2" {
		t.Fatalf("unexpected stored body: %q", fake.objects["k.pdf"])
	}
}
