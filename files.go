package solvent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
)

// File is an uploaded document, typically KYC evidence.
type File struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// FilesService uploads and fetches documents.
type FilesService struct {
	api *api.Client
}

// Upload sends a document as multipart form data under a single "file" field.
func (s *FilesService) Upload(ctx context.Context, filename string, file io.Reader) (*File, error) {
	var out File
	if err := s.api.Upload(ctx, "/files", filename, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches file metadata by id.
func (s *FilesService) Get(ctx context.Context, id string) (*File, error) {
	var out File
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/files/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
