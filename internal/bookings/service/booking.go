package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	bookingserrors "pskbooking/internal/bookings/errors"
	"pskbooking/internal/bookings/repository"
	"pskbooking/internal/bookings/validator"
	"pskbooking/pkg/config"
	apperrors "pskbooking/pkg/errors"
	"pskbooking/pkg/model"
	"pskbooking/pkg/token"
)

// Notifier delivers the booking emails. Both sends are best-effort: Submit
// logs failures and never lets them fail the request.
type Notifier interface {
	NotifyOwner(ctx context.Context, booking *model.Booking, viewURL string) error
	NotifyCustomer(ctx context.Context, booking *model.Booking) error
}

type BookingService interface {
	Submit(ctx context.Context, booking *model.Booking, files []*multipart.FileHeader) (*model.SubmissionResult, error)
	GetForView(ctx context.Context, id, viewToken string) (*model.Booking, error)
}

type bookingService struct {
	records     repository.RecordStore
	attachments repository.AttachmentStore
	validator   *validator.BookingValidator
	notifier    Notifier // nil when mail is not configured
	cfg         *config.Config
}

func NewBookingService(
	records repository.RecordStore,
	attachments repository.AttachmentStore,
	validator *validator.BookingValidator,
	notifier Notifier,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		records:     records,
		attachments: attachments,
		validator:   validator,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// Submit runs the whole booking pipeline: validate, store uploads,
// materialize the record, persist it, mint the view token and fire the
// notifications. Nothing is persisted when validation or the upload policy
// fails.
func (s *bookingService) Submit(ctx context.Context, booking *model.Booking, files []*multipart.FileHeader) (*model.SubmissionResult, error) {
	s.applyDefaults(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, validationError(err)
	}

	// Policy runs over the whole set before any file is written.
	if err := s.attachments.CheckPolicy(files); err != nil {
		s.cfg.Log.Warn("Upload policy rejected submission", "file_count", len(files), "error", err)
		return nil, uploadError(err)
	}

	attachments, err := s.attachments.Store(ctx, files)
	if err != nil {
		if isPolicyError(err) {
			return nil, uploadError(err)
		}
		s.cfg.Log.Error("Failed to store attachments", "error", err)
		return nil, apperrors.Internal("Failed to process booking", err)
	}

	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now().UTC()
	booking.Status = model.StatusPending
	booking.Files = attachments

	if err := s.records.Save(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to persist booking", "id", booking.ID, "error", err)
		return nil, apperrors.Internal("Failed to process booking", err)
	}

	viewURL := s.buildViewURL(booking.ID)
	s.notify(ctx, booking, viewURL)

	s.cfg.Log.Info("Booking submitted successfully",
		"id", booking.ID,
		"event_type", booking.EventType,
		"date", booking.Date,
		"attachments", len(booking.Files),
	)

	return &model.SubmissionResult{
		Success: true,
		ID:      booking.ID,
		Message: "Booking submitted successfully",
		ViewURL: viewURL,
	}, nil
}

// GetForView authorizes and loads one record for the gated HTML view. Token
// verification runs before the record lookup, so a caller with a bad token
// gets the same 403 whether or not the record exists.
func (s *bookingService) GetForView(ctx context.Context, id, viewToken string) (*model.Booking, error) {
	if viewToken == "" {
		return nil, apperrors.Forbidden("Access denied - token required")
	}
	if !token.Verify(id, viewToken, s.cfg.ViewSecret) {
		return nil, apperrors.Forbidden("Access denied - invalid token")
	}

	booking, err := s.records.Load(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Submission", id)
		}
		s.cfg.Log.Error("Failed to load booking", "id", id, "error", err)
		return nil, apperrors.Internal("Error loading submission", err)
	}

	return booking, nil
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.Status == "" {
		b.Status = model.StatusPending
	}
}

func (s *bookingService) buildViewURL(id string) string {
	tok := token.Mint(id, s.cfg.ViewSecret)
	base := strings.TrimRight(s.cfg.BaseURL, "/")
	return fmt.Sprintf("%s/submission/%s?token=%s", base, id, url.QueryEscape(tok))
}

// notify sends the owner alert first, then the customer confirmation. Each is
// independently best-effort; a failure in one does not stop the other.
func (s *bookingService) notify(ctx context.Context, booking *model.Booking, viewURL string) {
	if s.notifier == nil {
		s.cfg.Log.Info("Email not configured; submission saved but no notification sent",
			"id", booking.ID,
			"view_url", viewURL,
		)
		return
	}

	if err := s.notifier.NotifyOwner(ctx, booking, viewURL); err != nil {
		s.cfg.Log.Error("Owner notification failed", "id", booking.ID, "error", err)
	} else {
		s.cfg.Log.Info("Owner notification sent", "id", booking.ID)
	}

	if err := s.notifier.NotifyCustomer(ctx, booking); err != nil {
		s.cfg.Log.Error("Customer confirmation failed", "id", booking.ID, "email", booking.Email, "error", err)
	}
}

func validationError(err error) error {
	details := map[string]any{"error": err.Error()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details["fields"] = verrs.Fields()
	}
	return apperrors.Validation("Missing required fields", details)
}

func isPolicyError(err error) bool {
	return errors.Is(err, bookingserrors.ErrTooManyFiles) ||
		errors.Is(err, bookingserrors.ErrFileTooLarge) ||
		errors.Is(err, bookingserrors.ErrDisallowedType)
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, bookingserrors.ErrTooManyFiles):
		return apperrors.InvalidInput("Too many files attached")
	case errors.Is(err, bookingserrors.ErrFileTooLarge):
		return apperrors.InvalidInput("Attached file exceeds the size limit")
	case errors.Is(err, bookingserrors.ErrDisallowedType):
		return apperrors.InvalidInput("Only images and PDFs are allowed")
	default:
		return apperrors.Internal("Failed to process booking", err)
	}
}
