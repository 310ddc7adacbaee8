package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bookingserrors "pskbooking/internal/bookings/errors"
	"pskbooking/pkg/config"
	"pskbooking/pkg/logger"
	"pskbooking/pkg/model"
)

// RecordStore persists one booking record per id. There are no update or
// delete operations: a record is written once and only ever read back.
type RecordStore interface {
	Save(ctx context.Context, booking *model.Booking) error
	Load(ctx context.Context, id string) (*model.Booking, error)
}

// fileRecordStore keeps one JSON document per booking under a records
// directory. The one-file-per-id layout is the concurrency model: distinct
// ids never contend, and O_EXCL makes same-id creation atomic.
type fileRecordStore struct {
	dir string
	log *logger.Logger
}

func NewFileRecordStore(cfg *config.Config) (RecordStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating records directory %q: %w", cfg.DataDir, err)
	}
	return &fileRecordStore{
		dir: cfg.DataDir,
		log: cfg.Log,
	}, nil
}

func (s *fileRecordStore) Save(ctx context.Context, booking *model.Booking) error {
	if booking.ID == "" {
		return fmt.Errorf("booking has no id")
	}

	path, err := s.recordPath(booking.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(booking, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding booking %s: %w", booking.ID, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return bookingserrors.ErrAlreadyExists
		}
		return fmt.Errorf("creating record file for %s: %w", booking.ID, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing record file for %s: %w", booking.ID, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing record file for %s: %w", booking.ID, err)
	}

	s.log.Debug("Booking record persisted", "id", booking.ID, "path", path)
	return nil
}

func (s *fileRecordStore) Load(ctx context.Context, id string) (*model.Booking, error) {
	path, err := s.recordPath(id)
	if err != nil {
		// A malformed id cannot name a record.
		return nil, bookingserrors.ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("reading record file for %s: %w", id, err)
	}

	var booking model.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, fmt.Errorf("decoding record file for %s: %w", id, err)
	}

	return &booking, nil
}

// recordPath maps an id to its file, refusing ids that would escape the
// records directory.
func (s *fileRecordStore) recordPath(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid record id %q", id)
	}
	return filepath.Join(s.dir, id+".json"), nil
}
