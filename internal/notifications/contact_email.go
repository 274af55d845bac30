package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"portfolio-backend/internal/contact"
)

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New {{.FormType}} form submission</h3>
  <p><strong>Name:</strong> {{.FullName}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
  {{if .Website}}<p><strong>Website:</strong> {{.Website}}</p>{{end}}
  {{if .CompanyStage}}<p><strong>Company stage:</strong> {{.CompanyStage}}</p>{{end}}
  {{if .Deadline}}<p><strong>Deadline:</strong> {{.Deadline}}</p>{{end}}
  {{if .Budget}}<p><strong>Budget:</strong> {{.Budget}}</p>{{end}}
  {{if .ReferralSources}}<p><strong>Heard about us via:</strong> {{join .ReferralSources ", "}}</p>{{end}}
  <p><strong>ID:</strong> {{.ID}}</p>
  {{if .Message}}<p><strong>Message:</strong><br/>{{.Message}}</p>{{end}}
</body>
</html>`

var contactNotificationTmpl = template.Must(template.New("contact_notification").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(contactNotificationTemplate))

func buildContactNotificationHTML(sub contact.Submission) (string, error) {
	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContactMailer sends new submission notifications to the site owner.
type ContactMailer struct {
	client  *BrevoClient
	toEmail string
}

// NewContactMailer returns nil when either the client or the owner address is
// missing, so callers can treat a nil mailer as "notifications disabled".
func NewContactMailer(client *BrevoClient, toEmail string) *ContactMailer {
	if client == nil || strings.TrimSpace(toEmail) == "" {
		return nil
	}
	return &ContactMailer{client: client, toEmail: strings.TrimSpace(toEmail)}
}

func (m *ContactMailer) SendContactNotification(ctx context.Context, sub contact.Submission) (string, error) {
	if m == nil {
		return "", errors.New("contact mailer is nil")
	}
	subject := fmt.Sprintf("New %s submission from %s", sub.FormType, sub.FullName)
	htmlBody, err := buildContactNotificationHTML(sub)
	if err != nil {
		return "", err
	}
	return m.client.Send(ctx, Email{ToEmail: m.toEmail, Subject: subject, HTML: htmlBody})
}
