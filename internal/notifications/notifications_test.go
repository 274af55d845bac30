package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrevoClientRequiresCredentials(t *testing.T) {
	assert.Nil(t, NewBrevoClient("", "owner@example.com", "", false))
	assert.Nil(t, NewBrevoClient("key", " ", "", false))

	c := NewBrevoClient("key", "owner@example.com", "", false)
	require.NotNil(t, c)
	assert.Equal(t, "owner@example.com", c.senderName)
}

func TestNewContactMailerRequiresRecipient(t *testing.T) {
	c := NewBrevoClient("key", "noreply@example.com", "Site", false)
	assert.Nil(t, NewContactMailer(c, ""))
	assert.Nil(t, NewContactMailer(nil, "owner@example.com"))
	assert.NotNil(t, NewContactMailer(c, "owner@example.com"))
}

func TestSendContactNotification(t *testing.T) {
	var got brevoSendRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@smtp>"}`))
	}))
	defer srv.Close()

	client := NewBrevoClient("secret", "noreply@example.com", "Site", true, WithEndpoint(srv.URL))
	mailer := NewContactMailer(client, "owner@example.com")

	id, err := mailer.SendContactNotification(context.Background(), contact.Submission{
		ID:              "65f0",
		FullName:        "Jane <Doe>",
		Email:           "jane@example.com",
		FormType:        contact.FormTypeProject,
		ReferralSources: []string{"Google", "Friend"},
		Message:         "Need a site",
	})
	require.NoError(t, err)
	assert.Equal(t, "<abc@smtp>", id)
	assert.Equal(t, "secret", apiKey)

	require.Len(t, got.To, 1)
	assert.Equal(t, "owner@example.com", got.To[0].Email)
	assert.Equal(t, "New project submission from Jane <Doe>", got.Subject)
	assert.Equal(t, "drop", got.Headers["X-Sib-Sandbox"])
	assert.Contains(t, got.HtmlContent, "Jane &lt;Doe&gt;")
	assert.Contains(t, got.HtmlContent, "Google, Friend")
}

func TestSendHTMLReportsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewBrevoClient("bad", "noreply@example.com", "Site", false, WithEndpoint(srv.URL))

	_, err := client.Send(context.Background(), Email{ToEmail: "owner@example.com", Subject: "subject", HTML: "<p>hi</p>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")

	_, err = client.Send(context.Background(), Email{Subject: "subject", HTML: "<p>hi</p>"})
	assert.EqualError(t, err, "missing recipient email")
}
