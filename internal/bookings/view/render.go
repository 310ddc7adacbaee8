// Package view renders the token-gated HTML page for one booking record. The
// document is self-contained: inline styles, no scripts, attachment links
// pointing at the public uploads path.
package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"pskbooking/pkg/model"
)

// Render writes the submission page for booking to w.
func Render(w io.Writer, booking *model.Booking) error {
	return pageTemplate.Execute(w, booking)
}

var pageTemplate = template.Must(template.New("submission").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"kb": func(size int64) string {
		return fmt.Sprintf("%.2f", float64(size)/1024)
	},
	"localTime": func(t time.Time) string {
		return t.Local().Format("1/2/2006, 3:04:05 PM")
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Booking Submission - {{.ID}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
      max-width: 800px;
      margin: 50px auto;
      padding: 20px;
      background: #f5f5f5;
    }
    .container {
      background: white;
      padding: 30px;
      border-radius: 8px;
      box-shadow: 0 2px 10px rgba(0,0,0,0.1);
    }
    h1 { color: #333; margin-top: 0; }
    h2 { color: #555; border-bottom: 2px solid #4CAF50; padding-bottom: 10px; }
    .info-grid {
      display: grid;
      grid-template-columns: 150px 1fr;
      gap: 10px;
      margin: 20px 0;
    }
    .label { font-weight: bold; color: #666; }
    .value { color: #333; }
    .status {
      display: inline-block;
      padding: 5px 15px;
      border-radius: 20px;
      background: #FFC107;
      color: white;
      font-weight: bold;
    }
    .files {
      list-style: none;
      padding: 0;
    }
    .files li {
      padding: 10px;
      margin: 5px 0;
      background: #f9f9f9;
      border-left: 3px solid #4CAF50;
    }
    .files a {
      color: #4CAF50;
      text-decoration: none;
    }
    .files a:hover {
      text-decoration: underline;
    }
  </style>
</head>
<body>
  <div class="container">
    <h1>Booking Submission</h1>
    <p><strong>ID:</strong> {{.ID}}</p>
    <p><strong>Status:</strong> <span class="status">{{upper .Status}}</span></p>
    <p><strong>Submitted:</strong> {{localTime .CreatedAt}}</p>

    <h2>Event Details</h2>
    <div class="info-grid">
      <div class="label">Event Type:</div>
      <div class="value">{{.EventType}}</div>

      <div class="label">Date:</div>
      <div class="value">{{.Date}}</div>

      <div class="label">Time:</div>
      <div class="value">{{.TimeSlot}}</div>

      <div class="label">Location:</div>
      <div class="value">{{.Location}}</div>
    </div>

    <h2>Client Information</h2>
    <div class="info-grid">
      <div class="label">Name:</div>
      <div class="value">{{.Name}}</div>

      <div class="label">Email:</div>
      <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>

      <div class="label">Phone:</div>
      <div class="value"><a href="tel:{{.Phone}}">{{.Phone}}</a></div>
    </div>

    <h2>Additional Details</h2>
    <p>{{if .Details}}{{.Details}}{{else}}<em>No additional details provided</em>{{end}}</p>

    <h2>Attachments</h2>
    {{if .Files}}
    <ul class="files">
      {{range .Files}}
      <li>
        <a href="/uploads/{{.StoredName}}" target="_blank">{{.OriginalName}}</a>
        <br><small>{{kb .SizeBytes}} KB - {{.MimeType}}</small>
      </li>
      {{end}}
    </ul>
    {{else}}<p><em>No files attached</em></p>{{end}}
  </div>
</body>
</html>
`))
