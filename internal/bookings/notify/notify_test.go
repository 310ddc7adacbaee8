package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pskbooking/pkg/logger"
	"pskbooking/pkg/mail"
	"pskbooking/pkg/model"
)

type capturingSender struct {
	messages []mail.Message
	err      error
}

func (s *capturingSender) Send(_ context.Context, msg mail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msg)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func sampleBooking() *model.Booking {
	return &model.Booking{
		ID:        "7c9f2b1e-0d4a-4f6c-8e3b-2a1d5c7e9f0b",
		Date:      "2025-06-01",
		TimeSlot:  "5:00 PM",
		EventType: "Wedding",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Location:  "Hyde Park",
		Details:   "Outdoor ceremony, indoor reception",
		CreatedAt: time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC),
		Status:    model.StatusPending,
		Files: []model.Attachment{{
			OriginalName: "moodboard.pdf",
			StoredName:   "1748700000000-42-moodboard.pdf",
			SizeBytes:    3 * 1024,
			MimeType:     "application/pdf",
		}},
	}
}

func TestNotifyOwner(t *testing.T) {
	sender := &capturingSender{}
	d := NewDispatcher(sender, "booking@psycotikcrew.com", testLogger())

	const viewURL = "http://localhost:8080/submission/abc?token=xyz"
	if err := d.NotifyOwner(context.Background(), sampleBooking(), viewURL); err != nil {
		t.Fatalf("NotifyOwner: %v", err)
	}

	if len(sender.messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(sender.messages))
	}
	msg := sender.messages[0]

	if msg.To != "booking@psycotikcrew.com" {
		t.Errorf("To = %q, want the owner address", msg.To)
	}
	if want := "New Booking: Wedding - Jane Doe (2025-06-01)"; msg.Subject != want {
		t.Errorf("Subject = %q, want %q", msg.Subject, want)
	}

	for _, fragment := range []string{
		"Wedding", "Jane Doe", "jane@example.com", "555-0100", "Hyde Park",
		"Outdoor ceremony, indoor reception",
		"moodboard.pdf (3.00 KB)",
		viewURL,
	} {
		if !strings.Contains(msg.HTMLBody, fragment) {
			t.Errorf("owner HTML body missing %q", fragment)
		}
	}
	if !strings.Contains(msg.TextBody, viewURL) {
		t.Error("owner text body missing the view url")
	}
}

func TestNotifyOwnerNoAttachments(t *testing.T) {
	sender := &capturingSender{}
	d := NewDispatcher(sender, "owner@example.com", testLogger())

	booking := sampleBooking()
	booking.Files = nil

	if err := d.NotifyOwner(context.Background(), booking, "http://x/y"); err != nil {
		t.Fatalf("NotifyOwner: %v", err)
	}
	if !strings.Contains(sender.messages[0].HTMLBody, "No attachments") {
		t.Error("owner HTML body missing the no-attachments marker")
	}
}

func TestNotifyOwnerEscapesHTML(t *testing.T) {
	sender := &capturingSender{}
	d := NewDispatcher(sender, "owner@example.com", testLogger())

	booking := sampleBooking()
	booking.Details = `<script>alert("x")</script>`

	if err := d.NotifyOwner(context.Background(), booking, "http://x/y"); err != nil {
		t.Fatalf("NotifyOwner: %v", err)
	}
	if strings.Contains(sender.messages[0].HTMLBody, "<script>") {
		t.Error("owner HTML body contains unescaped markup")
	}
}

func TestNotifyCustomer(t *testing.T) {
	sender := &capturingSender{}
	d := NewDispatcher(sender, "owner@example.com", testLogger())

	booking := sampleBooking()
	if err := d.NotifyCustomer(context.Background(), booking); err != nil {
		t.Fatalf("NotifyCustomer: %v", err)
	}

	msg := sender.messages[0]
	if msg.To != "jane@example.com" {
		t.Errorf("To = %q, want the customer address", msg.To)
	}
	if want := "Booking Request Received - Wedding"; msg.Subject != want {
		t.Errorf("Subject = %q, want %q", msg.Subject, want)
	}
	for _, fragment := range []string{"Jane Doe", "Wedding", "2025-06-01", "5:00 PM", booking.ID, "24-48 hours"} {
		if !strings.Contains(msg.HTMLBody, fragment) {
			t.Errorf("customer HTML body missing %q", fragment)
		}
	}
	if !strings.Contains(msg.TextBody, booking.ID) {
		t.Error("customer text body missing the booking reference")
	}
}

func TestSendFailureIsReturned(t *testing.T) {
	sender := &capturingSender{err: errors.New("connection refused")}
	d := NewDispatcher(sender, "owner@example.com", testLogger())

	if err := d.NotifyOwner(context.Background(), sampleBooking(), "http://x/y"); err == nil {
		t.Error("NotifyOwner swallowed the transport error")
	}
	if err := d.NotifyCustomer(context.Background(), sampleBooking()); err == nil {
		t.Error("NotifyCustomer swallowed the transport error")
	}
}
