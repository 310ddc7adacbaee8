// Package notify builds and dispatches the booking notification emails: an
// alert to the site owner and an acknowledgement to the customer. Delivery is
// best-effort by contract; callers log failures and move on.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"pskbooking/pkg/logger"
	"pskbooking/pkg/mail"
	"pskbooking/pkg/model"
)

type Dispatcher struct {
	sender mail.Sender
	owner  string
	log    *logger.Logger
}

func NewDispatcher(sender mail.Sender, ownerEmail string, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		owner:  ownerEmail,
		log:    log,
	}
}

// NotifyOwner emails a full summary of the submission, including the gated
// view link, to the configured owner address.
func (d *Dispatcher) NotifyOwner(ctx context.Context, booking *model.Booking, viewURL string) error {
	html, err := renderTemplate(ownerTemplate, ownerData{
		Booking:  booking,
		ViewURL:  viewURL,
		FileList: attachmentList(booking.Files),
	})
	if err != nil {
		return fmt.Errorf("rendering owner notification: %w", err)
	}

	text := fmt.Sprintf(
		"New booking request from %s\n\nEvent: %s\nDate: %s\nTime: %s\nLocation: %s\n\nView: %s",
		booking.Name, booking.EventType, booking.Date, booking.TimeSlot, booking.Location, viewURL,
	)

	return d.sender.Send(ctx, mail.Message{
		To:       d.owner,
		Subject:  fmt.Sprintf("New Booking: %s - %s (%s)", booking.EventType, booking.Name, booking.Date),
		HTMLBody: html,
		TextBody: text,
	})
}

// NotifyCustomer emails an acknowledgement with the booking reference and the
// expected response time to the submitter's own address.
func (d *Dispatcher) NotifyCustomer(ctx context.Context, booking *model.Booking) error {
	html, err := renderTemplate(customerTemplate, customerData{Booking: booking})
	if err != nil {
		return fmt.Errorf("rendering customer confirmation: %w", err)
	}

	text := fmt.Sprintf(
		"Thank you for your booking request!\n\nWe've received your request for %s on %s at %s.\nBooking Reference: %s\n\nWe'll contact you within 24-48 hours.",
		booking.EventType, booking.Date, booking.TimeSlot, booking.ID,
	)

	return d.sender.Send(ctx, mail.Message{
		To:       booking.Email,
		Subject:  fmt.Sprintf("Booking Request Received - %s", booking.EventType),
		HTMLBody: html,
		TextBody: text,
	})
}

func attachmentList(files []model.Attachment) string {
	if len(files) == 0 {
		return "No attachments"
	}
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, fmt.Sprintf("- %s (%.2f KB)", f.OriginalName, float64(f.SizeBytes)/1024))
	}
	return strings.Join(lines, "\n")
}

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type ownerData struct {
	Booking  *model.Booking
	ViewURL  string
	FileList string
}

type customerData struct {
	Booking *model.Booking
}

var ownerTemplate = template.Must(template.New("owner").Parse(`<h2>New Booking Request</h2>
<p><strong>Booking ID:</strong> {{.Booking.ID}}</p>

<h3>Event Details</h3>
<ul>
  <li><strong>Event Type:</strong> {{.Booking.EventType}}</li>
  <li><strong>Date:</strong> {{.Booking.Date}}</li>
  <li><strong>Time:</strong> {{.Booking.TimeSlot}}</li>
  <li><strong>Location:</strong> {{.Booking.Location}}</li>
</ul>

<h3>Client Information</h3>
<ul>
  <li><strong>Name:</strong> {{.Booking.Name}}</li>
  <li><strong>Email:</strong> {{.Booking.Email}}</li>
  <li><strong>Phone:</strong> {{.Booking.Phone}}</li>
</ul>

<h3>Additional Details</h3>
<p>{{if .Booking.Details}}{{.Booking.Details}}{{else}}No additional details provided{{end}}</p>

<h3>Attachments</h3>
<pre>{{.FileList}}</pre>

<p><a href="{{.ViewURL}}">View Full Submission</a></p>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`<h2>Thank you for your booking request!</h2>
<p>Hi {{.Booking.Name}},</p>
<p>We've received your booking request for <strong>{{.Booking.EventType}}</strong> on <strong>{{.Booking.Date}}</strong> at <strong>{{.Booking.TimeSlot}}</strong>.</p>
<p>Our team will review your request and contact you within 24-48 hours to discuss details and provide a customized quote.</p>

<h3>Your Booking Details</h3>
<ul>
  <li><strong>Event Type:</strong> {{.Booking.EventType}}</li>
  <li><strong>Date:</strong> {{.Booking.Date}}</li>
  <li><strong>Time:</strong> {{.Booking.TimeSlot}}</li>
  <li><strong>Location:</strong> {{.Booking.Location}}</li>
  <li><strong>Booking Reference:</strong> {{.Booking.ID}}</li>
</ul>

<p>If you have any questions, feel free to contact us at booking@psycotikcrew.com or call +44 123 456 7890.</p>

<p>Best regards,<br>Psycotik Crew Team</p>
`))
