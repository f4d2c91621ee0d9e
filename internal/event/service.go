package event

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eventgallery/service/internal/storage"
)

// defaultExtension is used when an uploaded filename carries no suffix.
const defaultExtension = "jpg"

// Service contains the business logic for event image upload and deletion.
type Service struct {
	store   storage.Storage
	records Records
}

// NewService creates a new event Service.
func NewService(store storage.Storage, records Records) *Service {
	return &Service{store: store, records: records}
}

// Upload stores the image bytes under a freshly derived object key, then
// records a catalog row. The row insert is best-effort: the blob is already
// stored and publicly retrievable, so an insert failure is logged and the
// upload still succeeds. Returns the public URL of the stored object.
func (s *Service) Upload(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	key := objectKey(originalName, time.Now())

	err := s.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return "", fmt.Errorf("store object %q: %w", key, err)
	}

	url := s.store.PublicURL(key)

	if err := s.records.Insert(ctx, key, url); err != nil {
		log.Printf("event: catalog insert for %q failed, blob kept: %v", key, err)
	}

	return url, nil
}

// Delete removes the object named by the final path segment of imageURL,
// then the matching catalog row. An empty imageURL skips storage entirely
// and is not an error. The row delete is best-effort, mirroring the
// upload-side insert policy.
func (s *Service) Delete(ctx context.Context, imageURL string) error {
	if imageURL == "" {
		return nil
	}

	key := keyFromURL(imageURL)
	if key == "" {
		return nil
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}

	if err := s.records.DeleteByFileName(ctx, key); err != nil {
		log.Printf("event: catalog delete for %q failed: %v", key, err)
	}

	return nil
}

// List returns the catalog rows, newest first.
func (s *Service) List(ctx context.Context) ([]Image, error) {
	return s.records.List(ctx)
}

// objectKey derives the storage key for an upload: "event-<unixMillis>.<ext>",
// ext taken from the last dot-segment of the original filename, or "jpg" when
// the name has no suffix. Uniqueness rests on millisecond timestamps.
func objectKey(originalName string, now time.Time) string {
	ext := defaultExtension
	if i := strings.LastIndex(originalName, "."); i >= 0 && i < len(originalName)-1 {
		ext = originalName[i+1:]
	}
	return fmt.Sprintf("event-%d.%s", now.UnixMilli(), ext)
}

// keyFromURL extracts the object key as the final path segment of the URL.
func keyFromURL(imageURL string) string {
	parts := strings.Split(imageURL, "/")
	return parts[len(parts)-1]
}
