package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/observability"
	"github.com/samasante/backend/pkg/config"
	apperrors "github.com/samasante/backend/pkg/errors"
)

// HTTPSMSSender sends text messages through a bearer-token REST SMS gateway
type HTTPSMSSender struct {
	apiToken   string
	senderID   string
	httpClient *http.Client
	baseURL    string
}

// NewHTTPSMSSender creates a new SMS gateway sender
func NewHTTPSMSSender(cfg *config.SMSConfig) (*HTTPSMSSender, error) {
	if cfg == nil || strings.TrimSpace(cfg.APIURL) == "" || strings.TrimSpace(cfg.APIToken) == "" {
		return nil, apperrors.NewConfigurationAbsentError("SMS_API_URL and SMS_API_TOKEN must be set")
	}

	return &HTTPSMSSender{
		apiToken: cfg.APIToken,
		senderID: cfg.SenderID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimSuffix(cfg.APIURL, "/"),
	}, nil
}

// SMSMessage is the gateway request body
type SMSMessage struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// SMSResponse is the gateway acknowledgement
type SMSResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Send posts one message to the gateway
func (s *HTTPSMSSender) Send(ctx context.Context, phoneNumber, message string) error {
	to := strings.TrimSpace(phoneNumber)
	if to == "" {
		return apperrors.NewValidationError("recipient phone number is required")
	}

	jsonData, err := json.Marshal(SMSMessage{From: s.senderID, To: to, Body: message})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/messages", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("failed to send sms", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return apperrors.NewUpstreamError("failed to read sms gateway response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewUpstreamError(
			"sms gateway rejected message",
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		)
	}

	var smsResp SMSResponse
	if len(body) > 0 && json.Unmarshal(body, &smsResp) == nil && smsResp.ID != "" {
		observability.LoggerFromContext(ctx).Debug().Str("message_id", smsResp.ID).Str("to", maskPhone(to)).Msg("SMS accepted by gateway")
	}
	return nil
}

// LogSMSSender writes messages to the log instead of sending them. Used in
// development when no gateway is configured.
type LogSMSSender struct{}

// NewLogSMSSender creates a logging sender
func NewLogSMSSender() providers.SMSSender {
	return &LogSMSSender{}
}

// Send logs the masked recipient and message size and always succeeds. The
// body carries the reporter's phone and symptoms so it is never logged.
func (s *LogSMSSender) Send(ctx context.Context, phoneNumber, message string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return apperrors.NewValidationError("recipient phone number is required")
	}
	log.Info().Str("to", maskPhone(phoneNumber)).Int("body_length", len(message)).Msg("SMS (log sender)")
	return nil
}

// maskPhone keeps the last four digits
func maskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
