package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/clubmap/internal/config"
	"github.com/dangerclosesec/clubmap/internal/email"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	Authorization string
	Subject       string `json:"subject"`
	From          struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"from"`
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

type fakeSendgrid struct {
	mu     sync.Mutex
	status int
	sent   []sentMail
}

func (f *fakeSendgrid) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/v3/mail/send" {
		http.NotFound(w, r)
		return
	}
	var m sentMail
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m.Authorization = r.Header.Get("Authorization")

	f.mu.Lock()
	f.sent = append(f.sent, m)
	f.mu.Unlock()
	w.WriteHeader(f.status)
}

func newSendgridService(t *testing.T, status int) (*email.Service, *fakeSendgrid) {
	t.Helper()
	fake := &fakeSendgrid{status: status}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	svc, err := email.NewEmailService(config.EmailConfig{
		Provider: "sendgrid",
		From:     "noreply@clubmap.test",
		FromName: "Club Map",
		Sendgrid: config.SendgridConfig{APIKey: "SG.test", Host: srv.URL},
	})
	require.NoError(t, err)
	return svc, fake
}

func reviewed(status model.SubmissionStatus, typ model.SubmissionType) *model.Submission {
	sub := model.NewSubmission(typ, "someone@example.com", model.ClubData{Name: "Pixel & Co", School: "X High"}, time.Now())
	sub.Status = status
	return sub
}

func content(m sentMail, typ string) string {
	for _, c := range m.Content {
		if c.Type == typ {
			return c.Value
		}
	}
	return ""
}

func TestNewEmailService(t *testing.T) {
	t.Run("no provider disables notifications", func(t *testing.T) {
		svc, err := email.NewEmailService(config.EmailConfig{})
		require.NoError(t, err)
		assert.False(t, svc.Enabled())
		assert.NoError(t, svc.NotifyDecision(context.Background(), reviewed(model.StatusApproved, model.SubmissionNew)))
	})

	tests := []struct {
		name string
		cfg  config.EmailConfig
	}{
		{"unknown provider", config.EmailConfig{Provider: "carrier-pigeon", From: "a@b.c"}},
		{"sendgrid without key", config.EmailConfig{Provider: "sendgrid", From: "a@b.c"}},
		{"smtp without host", config.EmailConfig{Provider: "smtp", From: "a@b.c"}},
		{"missing sender", config.EmailConfig{Provider: "sendgrid", Sendgrid: config.SendgridConfig{APIKey: "k"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := email.NewEmailService(tt.cfg)
			assert.Error(t, err)
		})
	}

	t.Run("templates load", func(t *testing.T) {
		svc, _ := newSendgridService(t, http.StatusAccepted)
		assert.Contains(t, svc.Templates, "submission_approved")
		assert.Contains(t, svc.Templates, "submission_rejected")
	})
}

func TestNotifyDecision(t *testing.T) {
	ctx := context.Background()

	t.Run("approved listing", func(t *testing.T) {
		svc, fake := newSendgridService(t, http.StatusAccepted)
		require.NoError(t, svc.NotifyDecision(ctx, reviewed(model.StatusApproved, model.SubmissionNew)))

		require.Len(t, fake.sent, 1)
		m := fake.sent[0]
		assert.Equal(t, "Bearer SG.test", m.Authorization)
		assert.Equal(t, "Pixel & Co is now in the club directory", m.Subject)
		assert.Equal(t, "noreply@clubmap.test", m.From.Email)
		assert.Equal(t, "Club Map", m.From.Name)
		require.Len(t, m.Personalizations, 1)
		assert.Equal(t, "someone@example.com", m.Personalizations[0].To[0].Email)
		assert.Contains(t, content(m, "text/plain"), "Pixel & Co (X High) has been reviewed and is now listed")
		assert.Contains(t, content(m, "text/html"), "<strong>Pixel &amp; Co</strong>")
	})

	t.Run("approved edit", func(t *testing.T) {
		svc, fake := newSendgridService(t, http.StatusAccepted)
		require.NoError(t, svc.NotifyDecision(ctx, reviewed(model.StatusApproved, model.SubmissionEdit)))

		require.Len(t, fake.sent, 1)
		assert.Contains(t, content(fake.sent[0], "text/plain"), "Your changes to Pixel & Co")
	})

	t.Run("rejection carries the reason", func(t *testing.T) {
		svc, fake := newSendgridService(t, http.StatusAccepted)
		sub := reviewed(model.StatusRejected, model.SubmissionNew)
		reason := "duplicate listing"
		sub.RejectionReason = &reason
		require.NoError(t, svc.NotifyDecision(ctx, sub))

		require.Len(t, fake.sent, 1)
		assert.Equal(t, "Your submission for Pixel & Co was not accepted", fake.sent[0].Subject)
		assert.Contains(t, content(fake.sent[0], "text/plain"), "Reviewer note: duplicate listing")
	})

	t.Run("pending sends nothing", func(t *testing.T) {
		svc, fake := newSendgridService(t, http.StatusAccepted)
		require.NoError(t, svc.NotifyDecision(ctx, reviewed(model.StatusPending, model.SubmissionNew)))
		assert.Empty(t, fake.sent)
	})

	t.Run("provider failure is returned", func(t *testing.T) {
		svc, _ := newSendgridService(t, http.StatusUnauthorized)
		err := svc.NotifyDecision(ctx, reviewed(model.StatusApproved, model.SubmissionNew))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
