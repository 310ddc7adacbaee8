package model

import "time"

// Booking status values. Only StatusPending is ever written by this service;
// the remaining values exist for records managed out of band.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

// Booking is one persisted booking request. A record is immutable after
// creation: the id is assigned exactly once by the service and there is no
// update or delete path.
type Booking struct {
	ID        string       `json:"id"`
	Date      string       `json:"date" validate:"required"`
	TimeSlot  string       `json:"timeSlot" validate:"required"`
	EventType string       `json:"eventType" validate:"required"`
	Name      string       `json:"name" validate:"required"`
	Email     string       `json:"email" validate:"required"`
	Phone     string       `json:"phone" validate:"required"`
	Location  string       `json:"location" validate:"required"`
	Details   string       `json:"details"`
	Files     []Attachment `json:"files"`
	CreatedAt time.Time    `json:"createdAt"`
	Status    string       `json:"status" validate:"omitempty,oneof=pending confirmed declined completed"`
}

// Attachment describes one uploaded file owned by its parent booking. The
// stored name is globally unique (millisecond timestamp + random suffix).
type Attachment struct {
	OriginalName string `json:"originalname"`
	StoredName   string `json:"filename"`
	StoragePath  string `json:"path"`
	SizeBytes    int64  `json:"size"`
	MimeType     string `json:"mimetype"`
}

// SubmissionResult is the successful response of the booking endpoint.
type SubmissionResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
	ViewURL string `json:"viewUrl"`
}
