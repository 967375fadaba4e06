package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samasante/backend/pkg/config"
	apperrors "github.com/samasante/backend/pkg/errors"
)

func TestHTTPSMSSender_Send(t *testing.T) {
	var received SMSMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"msg-1","status":"queued"}`))
	}))
	defer server.Close()

	sender := &HTTPSMSSender{
		apiToken:   "token",
		senderID:   "SamaSante",
		httpClient: server.Client(),
		baseURL:    server.URL,
	}

	err := sender.Send(context.Background(), "+221338891515", "Emergency alert")
	require.NoError(t, err)
	assert.Equal(t, SMSMessage{From: "SamaSante", To: "+221338891515", Body: "Emergency alert"}, received)
}

func TestHTTPSMSSender_GatewayErrorIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"carrier down"}`))
	}))
	defer server.Close()

	sender := &HTTPSMSSender{apiToken: "token", httpClient: server.Client(), baseURL: server.URL}

	err := sender.Send(context.Background(), "+221338891515", "hello")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstream))
	assert.ErrorContains(t, err, "carrier down")
}

func TestHTTPSMSSender_RejectsEmptyRecipient(t *testing.T) {
	sender := &HTTPSMSSender{apiToken: "token", httpClient: http.DefaultClient, baseURL: "http://127.0.0.1:0"}
	err := sender.Send(context.Background(), "  ", "hello")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestNewHTTPSMSSender_RequiresCredentials(t *testing.T) {
	_, err := NewHTTPSMSSender(&config.SMSConfig{APIURL: "https://sms.example"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfigurationAbsent))

	sender, err := NewHTTPSMSSender(&config.SMSConfig{APIURL: "https://sms.example/", APIToken: "t"})
	require.NoError(t, err)
	assert.Equal(t, "https://sms.example", sender.baseURL)
}

func TestLogSMSSender(t *testing.T) {
	sender := NewLogSMSSender()
	assert.NoError(t, sender.Send(context.Background(), "+221338891515", "hello"))
	assert.Error(t, sender.Send(context.Background(), "", "hello"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*********1515", maskPhone("+221338891515"))
	assert.Equal(t, "123", maskPhone("123"))
}

func TestLogSMSSender_DoesNotLogBody(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	message := "Alerte SamaSante: fièvre forte, convulsions. Contact: +221771234567"
	sender := NewLogSMSSender()
	require.NoError(t, sender.Send(context.Background(), "+221338891515", message))

	out := buf.String()
	assert.Contains(t, out, "*********1515")
	assert.Contains(t, out, `"body_length":`)
	assert.NotContains(t, out, "+221771234567")
	assert.NotContains(t, out, "convulsions")
	assert.NotContains(t, out, "+221338891515")
}
