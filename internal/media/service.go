package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/inkwellpress/publisher-backend/internal/pkg/storage"
)

const (
	thumbMaxWidth  = 480
	thumbMaxHeight = 320
)

// Upload is the result of storing a cover image: the public URLs of the
// original and its thumbnail.
type Upload struct {
	ImageURL     string
	ThumbnailURL string
}

type Service interface {
	// SaveImage stores the image and a generated thumbnail under fresh
	// uuid names and returns their public URLs. ext must include the
	// leading dot (".jpg").
	SaveImage(ctx context.Context, content io.Reader, ext string) (*Upload, error)
}

type service struct {
	store     storage.Storage
	processor *storage.ImageProcessor
	publicURL string
}

// NewService creates a media Service. publicURL is the base path under
// which the storage directory is served (e.g. "/uploads").
func NewService(store storage.Storage, processor *storage.ImageProcessor, publicURL string) Service {
	return &service{
		store:     store,
		processor: processor,
		publicURL: publicURL,
	}
}

func (s *service) SaveImage(ctx context.Context, content io.Reader, ext string) (*Upload, error) {
	// Buffer the upload once: it is read twice (original + thumbnail).
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	id := uuid.NewString()
	originalPath := path.Join("images", id+ext)
	thumbPath := path.Join("images", id+"_thumb.jpg")

	thumb, err := s.processor.GenerateThumbnail(bytes.NewReader(data), thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, originalPath, bytes.NewReader(data)); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, thumbPath, thumb); err != nil {
		// Keep the tree consistent if the second write fails.
		_ = s.store.Delete(ctx, originalPath)
		return nil, err
	}

	return &Upload{
		ImageURL:     path.Join(s.publicURL, originalPath),
		ThumbnailURL: path.Join(s.publicURL, thumbPath),
	}, nil
}
