// Package event manages event images: the blob in object storage and the
// matching catalog row in the event_images table.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Image is a catalog row describing an uploaded event image.
type Image struct {
	ID        int64     `json:"id"`
	FileName  string    `json:"fileName"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// Records is the catalog side of the gateway: insert and delete metadata
// rows keyed by object file name. Implemented by Repository; faked in tests.
type Records interface {
	Insert(ctx context.Context, fileName, url string) error
	DeleteByFileName(ctx context.Context, fileName string) error
	List(ctx context.Context) ([]Image, error)
}

// Repository handles all event_images database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert stores a catalog row for an uploaded image.
func (r *Repository) Insert(ctx context.Context, fileName, url string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO event_images (file_name, url) VALUES ($1, $2)`,
		fileName, url,
	)
	if err != nil {
		return fmt.Errorf("insert event image: %w", err)
	}
	return nil
}

// DeleteByFileName removes the catalog row for the given object file name.
// Deleting a name with no row is not an error.
func (r *Repository) DeleteByFileName(ctx context.Context, fileName string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM event_images WHERE file_name = $1`,
		fileName,
	)
	if err != nil {
		return fmt.Errorf("delete event image %q: %w", fileName, err)
	}
	return nil
}

// List returns all catalog rows, newest first.
func (r *Repository) List(ctx context.Context) ([]Image, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, file_name, url, created_at
		 FROM event_images ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list event images: %w", err)
	}
	defer rows.Close()

	images := []Image{}
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.FileName, &img.URL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list event images: %w", err)
	}
	return images, nil
}
