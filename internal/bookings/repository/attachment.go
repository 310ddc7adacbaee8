package repository

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"

	bookingserrors "pskbooking/internal/bookings/errors"
	"pskbooking/pkg/config"
	"pskbooking/pkg/logger"
	"pskbooking/pkg/model"
	"pskbooking/pkg/sanitizer"
)

// The booking form accepts reference material only: images and PDFs.
var (
	allowedExtensions = map[string]bool{
		"jpeg": true,
		"jpg":  true,
		"png":  true,
		"gif":  true,
		"pdf":  true,
	}
	allowedMimeTypes = map[string]bool{
		"image/jpeg":      true,
		"image/jpg":       true,
		"image/png":       true,
		"image/gif":       true,
		"application/pdf": true,
	}
)

// AttachmentStore writes uploaded files to blob storage and returns their
// metadata. CheckPolicy must pass before anything touches the disk.
type AttachmentStore interface {
	CheckPolicy(files []*multipart.FileHeader) error
	Store(ctx context.Context, files []*multipart.FileHeader) ([]model.Attachment, error)
}

type diskAttachmentStore struct {
	dir      string
	maxSize  int64
	maxFiles int
	log      *logger.Logger
}

func NewDiskAttachmentStore(cfg *config.Config) (AttachmentStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory %q: %w", cfg.UploadDir, err)
	}
	return &diskAttachmentStore{
		dir:      cfg.UploadDir,
		maxSize:  cfg.MaxUploadSize,
		maxFiles: cfg.MaxUploadFiles,
		log:      cfg.Log,
	}, nil
}

// CheckPolicy rejects the whole upload set before any file is written: too
// many files, a file over the size cap, or an extension/MIME outside the
// allowed set all fail the request.
func (s *diskAttachmentStore) CheckPolicy(files []*multipart.FileHeader) error {
	if len(files) > s.maxFiles {
		return bookingserrors.ErrTooManyFiles
	}

	for _, fh := range files {
		if fh.Size > s.maxSize {
			return bookingserrors.ErrFileTooLarge
		}
		if !allowedExtensions[sanitizer.Extension(fh.Filename)] {
			return bookingserrors.ErrDisallowedType
		}
		declared := fh.Header.Get("Content-Type")
		if declared == "" {
			// No declared type: sniff the content and hold it to the same
			// allow list, so an undeclared part cannot smuggle anything past
			// the filter on its extension alone.
			if !sniffAllowed(fh) {
				return bookingserrors.ErrDisallowedType
			}
		} else if !allowedMimeTypes[declared] {
			return bookingserrors.ErrDisallowedType
		}
	}

	return nil
}

func sniffAllowed(fh *multipart.FileHeader) bool {
	f, err := fh.Open()
	if err != nil {
		return false
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return false
	}
	for allowed := range allowedMimeTypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

func (s *diskAttachmentStore) Store(ctx context.Context, files []*multipart.FileHeader) ([]model.Attachment, error) {
	if err := s.CheckPolicy(files); err != nil {
		return nil, err
	}

	attachments := make([]model.Attachment, 0, len(files))
	for _, fh := range files {
		att, err := s.storeOne(fh)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}

	return attachments, nil
}

func (s *diskAttachmentStore) storeOne(fh *multipart.FileHeader) (model.Attachment, error) {
	src, err := fh.Open()
	if err != nil {
		return model.Attachment{}, fmt.Errorf("opening upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	original := sanitizer.Filename(fh.Filename)
	storedName := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), original)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return model.Attachment{}, fmt.Errorf("creating upload file %q: %w", storedName, err)
	}

	written, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		os.Remove(path)
		return model.Attachment{}, fmt.Errorf("writing upload file %q: %w", storedName, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return model.Attachment{}, fmt.Errorf("closing upload file %q: %w", storedName, err)
	}

	s.log.Debug("Attachment stored", "stored_name", storedName, "size", written)

	return model.Attachment{
		OriginalName: original,
		StoredName:   storedName,
		StoragePath:  path,
		SizeBytes:    written,
		MimeType:     s.mimeType(fh, path),
	}, nil
}

// mimeType prefers the declared Content-Type and falls back to content
// sniffing when the client sent none; either way CheckPolicy has already held
// the value to the allowed set.
func (s *diskAttachmentStore) mimeType(fh *multipart.FileHeader, path string) string {
	if declared := fh.Header.Get("Content-Type"); declared != "" {
		return declared
	}
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	return detected.String()
}
