package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubject(t *testing.T) {
	t.Run("flattens newlines", func(t *testing.T) {
		got := contactSubject("Ada", "line one\r\nline two\nline three")
		assert.Equal(t, "Contact from Ada: line one line two line three", got)
	})

	t.Run("caps the message preview at 50 characters", func(t *testing.T) {
		got := contactSubject("Ada", strings.Repeat("m", 200))
		assert.Equal(t, "Contact from Ada: "+strings.Repeat("m", 50), got)
	})
}

func TestContactBody(t *testing.T) {
	got := contactBody("Ada <script>", "ada@example.com", "hello\nworld & co")
	assert.Contains(t, got, "Ada &lt;script&gt;")
	assert.Contains(t, got, "hello<br>world &amp; co")
	assert.NotContains(t, got, "<script>")
}

func TestResendMailerSendContact(t *testing.T) {
	t.Run("unconfigured mailer reports not-configured", func(t *testing.T) {
		m := NewResendMailer("", "", nil)
		assert.False(t, m.Configured())

		err := m.SendContact(context.Background(), "Ada", "ada@example.com", "hi")
		assert.True(t, errs.IsEmailNotConfigured(err))
	})

	t.Run("posts the payload with bearer auth and reply-to", func(t *testing.T) {
		var got resendEmailRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(resendEmailResponse{ID: "email-1"})
		}))
		defer srv.Close()

		m := NewResendMailer("test-key", "Site <site@example.com>", []string{"owner@example.com"})
		m.endpoint = srv.URL

		err := m.SendContact(context.Background(), "Ada", "ada@example.com", "hello")
		require.NoError(t, err)
		assert.Equal(t, []string{"owner@example.com"}, got.To)
		assert.Equal(t, "ada@example.com", got.ReplyTo)
		assert.Equal(t, "Contact from Ada: hello", got.Subject)
	})

	t.Run("non-200 surfaces the Resend message as a delivery error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(resendErrorResponse{Message: "invalid from address"})
		}))
		defer srv.Close()

		m := NewResendMailer("test-key", "bad", []string{"owner@example.com"})
		m.endpoint = srv.URL

		err := m.SendContact(context.Background(), "Ada", "ada@example.com", "hello")
		require.Error(t, err)
		assert.True(t, errs.IsEmailDelivery(err))
		assert.Contains(t, err.Error(), "invalid from address")
	})

	t.Run("unreachable endpoint is a delivery error", func(t *testing.T) {
		m := NewResendMailer("test-key", "Site <site@example.com>", []string{"owner@example.com"})
		m.endpoint = "http://127.0.0.1:1"

		err := m.SendContact(context.Background(), "Ada", "ada@example.com", "hello")
		require.Error(t, err)
		assert.True(t, errs.IsEmailDelivery(err))
	})
}
